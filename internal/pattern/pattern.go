package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells how the intervals of a Pattern are read.
type Kind int

const (
	// Scale intervals are steps from one degree to the next.
	Scale Kind = iota
	// Chord intervals are offsets from the chord root, re-based every
	// octave.
	Chord
)

var (
	ErrEmpty         = errors.New("pattern has no intervals")
	ErrInvalidStep   = errors.New("scale step must be positive")
	ErrInvalidOffset = errors.New("chord offsets must be within an octave and non-decreasing")
	ErrUnknown       = errors.New("unknown pattern")
)

// Pattern is a cyclic sequence of semitone intervals describing a scale or a
// chord.
type Pattern struct {
	Name      string
	Kind      Kind
	Intervals []int
}

func (k Kind) String() string {
	switch k {
	case Scale:
		return "scale"
	case Chord:
		return "chord"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (p Pattern) Len() int {
	return len(p.Intervals)
}

// Validate reports whether the pattern can drive a pitch sequence.
func (p Pattern) Validate() error {
	if len(p.Intervals) == 0 {
		return fmt.Errorf("%s %q: %w", p.Kind, p.Name, ErrEmpty)
	}
	switch p.Kind {
	case Scale:
		for i, v := range p.Intervals {
			if v <= 0 {
				return fmt.Errorf("%s %q: interval %d is %d: %w", p.Kind, p.Name, i, v, ErrInvalidStep)
			}
		}
	case Chord:
		for i, v := range p.Intervals {
			if v < 0 || v >= 12 || (i > 0 && v < p.Intervals[i-1]) {
				return fmt.Errorf("%s %q: interval %d is %d: %w", p.Kind, p.Name, i, v, ErrInvalidOffset)
			}
		}
	default:
		return fmt.Errorf("pattern %q: invalid kind %d", p.Name, int(p.Kind))
	}
	return nil
}

// Step returns the number of semitones between element i-1 and element i of
// a sequence generated from the pattern, for i >= 1.
func (p Pattern) Step(i int) int {
	l := len(p.Intervals)
	if p.Kind == Scale {
		return p.Intervals[(i-1)%l]
	}
	a, b := p.Intervals[(i-1)%l], p.Intervals[i%l]
	if b >= a {
		return b - a
	}
	return b - a + 12
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s %s %v", p.Kind, p.Name, p.Intervals)
}

// ParseIntervals parses a comma or space separated list of semitone counts,
// e.g. "2,2,1,2,2,2,1".
func ParseIntervals(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	ret := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("could not parse interval %q: %w", f, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
