package note

import "golang.org/x/exp/slices"

// PitchClass is one of the twelve octave-equivalent pitch classes, C = 0.
type PitchClass uint8

const (
	C = PitchClass(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const octave = 12

var classNames [octave][]Name

func init() {
	// every letter with up to two accidentals, ordered natural, sharp, flat,
	// double sharp, double flat
	for _, acc := range []Accidental{Natural, Sharp, Flat, DoubleSharp, DoubleFlat} {
		for l := LetterC; l <= LetterB; l++ {
			n := Name{l, acc}
			classNames[n.Class()] = append(classNames[n.Class()], n)
		}
	}
}

// ClassOf returns the pitch class of an arbitrary pitch value. Negative values
// wrap the same way as positive ones.
func ClassOf(value int) PitchClass {
	return PitchClass(posMod(value, octave))
}

// Names returns the valid spellings of the class, most common first. The
// returned slice must not be modified.
func (c PitchClass) Names() []Name {
	return classNames[c%octave]
}

// Named returns the spelling of the class that uses the given letter, if the
// class has one.
func (c PitchClass) Named(letter LetterName) OptionalName {
	names := c.Names()
	i := slices.IndexFunc(names, func(n Name) bool { return n.Letter == letter })
	if i < 0 {
		return NoName()
	}
	return SomeName(names[i])
}

// Default is the first candidate spelling.
func (c PitchClass) Default() Name {
	return c.Names()[0]
}

func (c PitchClass) String() string {
	return c.Default().String()
}

func posMod(a, b int) int {
	return (a%b + b) % b
}
