package note

// Accidental is the semitone offset a spelling applies to its letter.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	}
	return ""
}

// ASCII is the accidental written with b and #.
func (a Accidental) ASCII() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	}
	return ""
}

// Name is one enharmonic spelling of a pitch class: a letter plus an
// accidental.
type Name struct {
	Letter     LetterName
	Accidental Accidental
}

// Class returns the pitch class the name spells.
func (n Name) Class() PitchClass {
	return ClassOf(n.Letter.Semitone() + int(n.Accidental))
}

func (n Name) String() string {
	return n.Letter.String() + n.Accidental.String()
}

func (n Name) ASCII() string {
	return n.Letter.String() + n.Accidental.ASCII()
}

type (
	// OptionalName is a Name that may be missing. The zero value is empty.
	OptionalName struct {
		value  Name
		exists bool
	}
)

func SomeName(n Name) OptionalName {
	return OptionalName{value: n, exists: true}
}

func NoName() OptionalName {
	return OptionalName{}
}

func (o OptionalName) Unpack() (Name, bool) {
	return o.value, o.exists
}

func (o OptionalName) Value() Name {
	if !o.exists {
		panic("Access value of empty OptionalName")
	}
	return o.value
}

func (o OptionalName) Empty() bool {
	return !o.exists
}

func (o OptionalName) Equals(n Name) bool {
	return o.exists && o.value == n
}

func (o OptionalName) String() string {
	if !o.exists {
		return "-"
	}
	return o.value.String()
}
