package note

import (
	"fmt"
	"math"
)

// Pitch is a MIDI-like note number together with an optional preferred
// spelling. Pitch values are immutable; a spelling is fixed when the pitch is
// created.
type Pitch struct {
	value     int
	preferred OptionalName
}

func NewPitch(value int) Pitch {
	return Pitch{value: value}
}

// NewNamedPitch returns a pitch carrying a preferred spelling. An empty name
// is the same as NewPitch.
func NewNamedPitch(value int, name OptionalName) Pitch {
	return Pitch{value: value, preferred: name}
}

func (p Pitch) Value() int {
	return p.value
}

func (p Pitch) Class() PitchClass {
	return ClassOf(p.value)
}

// Octave follows the MIDI convention where 60 is C4.
func (p Pitch) Octave() int {
	return (p.value-posMod(p.value, octave))/octave - 1
}

// Preferred returns the spelling chosen for this pitch, if any.
func (p Pitch) Preferred() OptionalName {
	return p.preferred
}

// Name returns the preferred spelling, falling back to the default spelling
// of the pitch class.
func (p Pitch) Name() OptionalName {
	if !p.preferred.Empty() {
		return p.preferred
	}
	return SomeName(p.Class().Default())
}

// SpelledOctave is the octave of the written note. It differs from Octave
// when the spelling crosses the C boundary, e.g. B♯3 is MIDI 60.
func (p Pitch) SpelledOctave() int {
	n := p.Name().Value()
	return (p.value-n.Letter.Semitone()-int(n.Accidental))/octave - 1
}

// Key returns the MIDI key number, if the pitch is within 0..127.
func (p Pitch) Key() (uint8, bool) {
	if p.value < 0 || p.value > 127 {
		return 0, false
	}
	return uint8(p.value), true
}

// Hz returns the equal-tempered frequency with A4 = 440 Hz.
func (p Pitch) Hz() float64 {
	return math.Pow(2, float64(p.value-69)/12) * 440
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name().Value(), p.SpelledOctave())
}

// ASCII is like String but writes accidentals with b and #.
func (p Pitch) ASCII() string {
	return fmt.Sprintf("%s%d", p.Name().Value().ASCII(), p.SpelledOctave())
}
