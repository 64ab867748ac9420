package pitchset

import "github.com/minikomi/pitchset/internal/note"

// Iterator walks a Set once from the start. Reset rewinds it.
type Iterator struct {
	set   *Set
	index int
}

func (s *Set) Iterator() *Iterator {
	return &Iterator{set: s}
}

// Next returns the next pitch, or false once every pitch has been returned.
func (it *Iterator) Next() (note.Pitch, bool) {
	if it.index >= len(it.set.pitches) {
		return note.Pitch{}, false
	}
	p := it.set.pitches[it.index]
	it.index++
	return p, true
}

func (it *Iterator) Reset() {
	it.index = 0
}
