package main

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/minikomi/pitchset/internal/pitchset"
)

type pitchView struct {
	Index   int
	Value   int
	Name    string
	Octave  int
	Spelled bool
	Hz      float64
}

type setView struct {
	Pattern   string
	Kind      string
	Intervals []int
	Names     []string
	Pitches   []pitchView
	Key       string
}

func newTemplate(text string) (*template.Template, error) {
	tmpl, err := template.New("pitchset").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse format %q: %w", text, err)
	}
	return tmpl, nil
}

func newSetView(s *pitchset.Set, ascii bool, key string) setView {
	p := s.Pattern()
	ret := setView{
		Pattern:   p.Name,
		Kind:      p.Kind.String(),
		Intervals: p.Intervals,
		Key:       key,
	}
	for i, pitch := range s.All() {
		name := pitch.Name().Value()
		v := pitchView{
			Index:   i,
			Value:   pitch.Value(),
			Name:    name.String(),
			Octave:  pitch.SpelledOctave(),
			Spelled: !pitch.Preferred().Empty(),
			Hz:      pitch.Hz(),
		}
		full := pitch.String()
		if ascii {
			v.Name = name.ASCII()
			full = pitch.ASCII()
		}
		ret.Pitches = append(ret.Pitches, v)
		ret.Names = append(ret.Names, full)
	}
	return ret
}

func render(tmpl *template.Template, view setView) (string, error) {
	var b bytes.Buffer
	if err := tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("could not execute format: %w", err)
	}
	return b.String(), nil
}
