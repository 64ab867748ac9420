// Package pitchset generates ascending pitch sequences from a scale or chord
// pattern and spells every generated pitch with a letter name that fits the
// pattern.
package pitchset

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/minikomi/pitchset/internal/note"
	"github.com/minikomi/pitchset/internal/pattern"
)

var (
	ErrInvalidCount    = errors.New("pitch set length must be at least 1")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// diatonicLength is the scale length at which every step advances exactly one
// letter.
const diatonicLength = 7

// Set is an ordered, fixed-length sequence of pitches. It is never modified
// after New returns and is safe for concurrent reads.
type Set struct {
	pattern pattern.Pattern
	pitches []note.Pitch
}

// New builds a Set of count pitches starting at first. Element 0 is first,
// unchanged; each following element is the previous value advanced by the
// pattern and carries the spelling chosen for it.
func New(p pattern.Pattern, first note.Pitch, count int) (*Set, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	intervals := make([]int, len(p.Intervals))
	copy(intervals, p.Intervals)
	p.Intervals = intervals

	l := p.Len()
	pitches := make([]note.Pitch, 1, count)
	pitches[0] = first
	for i := 1; i < count; i++ {
		prev := pitches[i-1]
		delta := p.Step(i)
		value := prev.Value() + delta
		var name note.OptionalName
		switch {
		case p.Kind == pattern.Scale:
			if l == diatonicLength {
				name = spell(prev, value, 1)
			}
		case i < l:
			name = spell(prev, value, letterSteps(delta))
		default:
			name = pitches[i-l].Preferred()
		}
		pitches = append(pitches, note.NewNamedPitch(value, name))
	}
	return &Set{pattern: p, pitches: pitches}, nil
}

// letterSteps maps a chord step to the number of letters it spans: seconds
// move one letter, thirds two. Other intervals have no preferred letter.
func letterSteps(delta int) int {
	switch delta {
	case 1, 2:
		return 1
	case 3, 4:
		return 2
	}
	return 0
}

// spell picks the spelling of value whose letter is steps letters above the
// letter of prev. Any missing link leaves the pitch unspelled.
func spell(prev note.Pitch, value int, steps int) note.OptionalName {
	if steps == 0 {
		return note.NoName()
	}
	prevName, ok := prev.Name().Unpack()
	if !ok {
		return note.NoName()
	}
	letter := prevName.Letter
	for ; steps > 0; steps-- {
		letter = letter.Next()
	}
	return note.ClassOf(value).Named(letter)
}

func (s *Set) Len() int {
	return len(s.pitches)
}

// Pattern returns the pattern the set was generated from.
func (s *Set) Pattern() pattern.Pattern {
	ret := s.pattern
	ret.Intervals = make([]int, len(s.pattern.Intervals))
	copy(ret.Intervals, s.pattern.Intervals)
	return ret
}

// At returns the pitch at index i. Indices outside [0, Len()) are an error.
func (s *Set) At(i int) (note.Pitch, error) {
	if i < 0 || i >= len(s.pitches) {
		return note.Pitch{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.pitches))
	}
	return s.pitches[i], nil
}

// Pitches returns a copy of all pitches in order.
func (s *Set) Pitches() []note.Pitch {
	ret := make([]note.Pitch, len(s.pitches))
	copy(ret, s.pitches)
	return ret
}

func (s *Set) Values() []int {
	ret := make([]int, len(s.pitches))
	for i, p := range s.pitches {
		ret[i] = p.Value()
	}
	return ret
}

// All yields the index and pitch of every element in order.
func (s *Set) All() iter.Seq2[int, note.Pitch] {
	return func(yield func(int, note.Pitch) bool) {
		for i, p := range s.pitches {
			if !yield(i, p) {
				return
			}
		}
	}
}

func (s *Set) String() string {
	parts := make([]string, len(s.pitches))
	for i, p := range s.pitches {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
