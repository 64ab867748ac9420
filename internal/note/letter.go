package note

import "fmt"

// LetterName is one of the seven note letters, in alphabetical order starting
// from C.
type LetterName uint8

const (
	LetterC = LetterName(iota)
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
)

const numLetters = 7

var letterRunes = [numLetters]rune{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

var letterSemitones = [numLetters]int{0, 2, 4, 5, 7, 9, 11}

// Next returns the following letter, wrapping from B back to C.
func (l LetterName) Next() LetterName {
	return (l + 1) % numLetters
}

// Semitone is the pitch class of the unaltered letter.
func (l LetterName) Semitone() int {
	return letterSemitones[l%numLetters]
}

func (l LetterName) String() string {
	return string(letterRunes[l%numLetters])
}

func ParseLetterName(r rune) (LetterName, error) {
	switch r {
	case 'C', 'c':
		return LetterC, nil
	case 'D', 'd':
		return LetterD, nil
	case 'E', 'e':
		return LetterE, nil
	case 'F', 'f':
		return LetterF, nil
	case 'G', 'g':
		return LetterG, nil
	case 'A', 'a':
		return LetterA, nil
	case 'B', 'b':
		return LetterB, nil
	}
	return 0, fmt.Errorf("%w: unrecognized letter %q", ErrSyntax, r)
}
