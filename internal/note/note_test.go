package note_test

import (
	"errors"
	"testing"

	"github.com/minikomi/pitchset/internal/note"
)

func TestLetterNameNextWraps(t *testing.T) {
	l := note.LetterC
	want := "DEFGABC"
	for i, r := range want {
		l = l.Next()
		if l.String() != string(r) {
			t.Fatalf("step %d: got %v, expected %c", i, l, r)
		}
	}
}

func TestClassNames(t *testing.T) {
	tests := []struct {
		class note.PitchClass
		want  []string
	}{
		{note.C, []string{"C", "B♯", "D𝄫"}},
		{note.CSharp, []string{"C♯", "D♭", "B𝄪"}},
		{note.E, []string{"E", "F♭", "D𝄪"}},
		{note.GSharp, []string{"G♯", "A♭"}},
		{note.B, []string{"B", "C♭", "A𝄪"}},
	}
	for _, tt := range tests {
		names := tt.class.Names()
		if len(names) != len(tt.want) {
			t.Fatalf("class %d: got %v, expected %v", tt.class, names, tt.want)
		}
		for i, n := range names {
			if n.String() != tt.want[i] {
				t.Errorf("class %d name %d: got %v, expected %v", tt.class, i, n, tt.want[i])
			}
			if n.Class() != tt.class {
				t.Errorf("%v spells class %d, expected %d", n, n.Class(), tt.class)
			}
		}
	}
}

func TestClassNamed(t *testing.T) {
	if got := note.FSharp.Named(note.LetterG); !got.Equals(note.Name{note.LetterG, note.Flat}) {
		t.Errorf("F#/G: got %v, expected G♭", got)
	}
	if got := note.GSharp.Named(note.LetterF); !got.Empty() {
		t.Errorf("G#/F: got %v, expected no name", got)
	}
}

func TestClassOfNegative(t *testing.T) {
	if c := note.ClassOf(-1); c != note.B {
		t.Errorf("ClassOf(-1) = %d, expected B", c)
	}
	if c := note.ClassOf(-12); c != note.C {
		t.Errorf("ClassOf(-12) = %d, expected C", c)
	}
}

func TestOptionalNameValuePanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	note.NoName().Value()
}

func TestPitchName(t *testing.T) {
	p := note.NewPitch(61)
	if !p.Preferred().Empty() {
		t.Fatalf("new pitch has preferred name %v", p.Preferred())
	}
	if got := p.String(); got != "C♯4" {
		t.Errorf("got %v, expected C♯4", got)
	}
	q := note.NewNamedPitch(61, note.SomeName(note.Name{note.LetterD, note.Flat}))
	if got := q.ASCII(); got != "Db4" {
		t.Errorf("got %v, expected Db4", got)
	}
	r := note.NewNamedPitch(60, note.SomeName(note.Name{note.LetterB, note.Sharp}))
	if r.Octave() != 4 || r.SpelledOctave() != 3 {
		t.Errorf("B#3: octave %d spelled %d", r.Octave(), r.SpelledOctave())
	}
}

func TestPitchKey(t *testing.T) {
	if _, ok := note.NewPitch(128).Key(); ok {
		t.Error("128 should not be a MIDI key")
	}
	if k, ok := note.NewPitch(0).Key(); !ok || k != 0 {
		t.Errorf("got %v %v, expected 0 true", k, ok)
	}
}

func TestPitchHz(t *testing.T) {
	if hz := note.NewPitch(69).Hz(); hz != 440 {
		t.Errorf("A4 = %v Hz", hz)
	}
	if hz := note.NewPitch(81).Hz(); hz != 880 {
		t.Errorf("A5 = %v Hz", hz)
	}
}

func TestParsePitch(t *testing.T) {
	tests := []struct {
		in    string
		value int
		name  string
	}{
		{"C4", 60, "C"},
		{"c#4", 61, "C♯"},
		{"Db4", 61, "D♭"},
		{"B♭3", 58, "B♭"},
		{"Cb4", 59, "C♭"},
		{"B#3", 60, "B♯"},
		{"F##2", 43, "F𝄪"},
		{"C-1", 0, "C"},
		{"A0", 21, "A"},
	}
	for _, tt := range tests {
		p, err := note.ParsePitch(tt.in)
		if err != nil {
			t.Fatalf("ParsePitch(%q): %v", tt.in, err)
		}
		if p.Value() != tt.value {
			t.Errorf("ParsePitch(%q) value %d, expected %d", tt.in, p.Value(), tt.value)
		}
		if got := p.Preferred().String(); got != tt.name {
			t.Errorf("ParsePitch(%q) name %v, expected %v", tt.in, got, tt.name)
		}
	}
}

func TestParsePitchNumber(t *testing.T) {
	p, err := note.ParsePitch("64")
	if err != nil {
		t.Fatal(err)
	}
	if p.Value() != 64 || !p.Preferred().Empty() {
		t.Errorf("got %d %v", p.Value(), p.Preferred())
	}
}

func TestParsePitchErrors(t *testing.T) {
	for _, in := range []string{"", "H4", "C", "C#x"} {
		if _, err := note.ParsePitch(in); !errors.Is(err, note.ErrSyntax) {
			t.Errorf("ParsePitch(%q): got %v, expected ErrSyntax", in, err)
		}
	}
}
