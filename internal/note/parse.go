package note

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrSyntax = errors.New("invalid pitch syntax")

var accidentalTokens = []struct {
	token string
	acc   Accidental
}{
	{"𝄪", DoubleSharp},
	{"𝄫", DoubleFlat},
	{"##", DoubleSharp},
	{"bb", DoubleFlat},
	{"x", DoubleSharp},
	{"♯", Sharp},
	{"♭", Flat},
	{"#", Sharp},
	{"b", Flat},
}

// ParseName parses a spelling such as "F#", "Gb" or "E♭" without octave.
func ParseName(s string) (Name, error) {
	n, rest, err := parseName(strings.TrimSpace(s))
	if err != nil {
		return Name{}, err
	}
	if rest != "" {
		return Name{}, fmt.Errorf("%w: trailing %q in %q", ErrSyntax, rest, s)
	}
	return n, nil
}

// ParsePitch parses scientific pitch notation such as "C4", "F#3", "Db-1" or
// "B♭5". The spelling written is kept as the preferred name; a plain number
// is accepted as a MIDI value without a preferred name.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return NewPitch(v), nil
	}
	n, rest, err := parseName(s)
	if err != nil {
		return Pitch{}, err
	}
	oct, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: unrecognized octave in %q", ErrSyntax, s)
	}
	value := (oct+1)*octave + n.Letter.Semitone() + int(n.Accidental)
	return NewNamedPitch(value, SomeName(n)), nil
}

func parseName(s string) (Name, string, error) {
	if s == "" {
		return Name{}, "", fmt.Errorf("%w: empty", ErrSyntax)
	}
	r, size := utf8.DecodeRuneInString(s)
	letter, err := ParseLetterName(r)
	if err != nil {
		return Name{}, "", err
	}
	rest := s[size:]
	acc := Natural
	for _, t := range accidentalTokens {
		if strings.HasPrefix(rest, t.token) {
			acc = t.acc
			rest = rest[len(t.token):]
			break
		}
	}
	return Name{letter, acc}, rest, nil
}
