package main

import (
	"bytes"
	"testing"

	"github.com/minikomi/pitchset/internal/note"
	"github.com/minikomi/pitchset/internal/pattern"
	"github.com/minikomi/pitchset/internal/pitchset"
)

func TestWriteSet(t *testing.T) {
	set, err := pitchset.New(pattern.Pattern{Kind: pattern.Chord, Intervals: []int{0, 4, 7}}, note.NewPitch(48), 4)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := NewWriter(&b, 2).WriteSet(set, 64); err != nil {
		t.Fatalf("WriteSet failed: %v", err)
	}
	data := b.Bytes()
	if len(data) != 4*6 {
		t.Fatalf("wrote %d bytes, expected %d", len(data), 4*6)
	}
	for i, key := range []byte{48, 52, 55, 60} {
		on := data[i*6 : i*6+3]
		if on[0] != 0x92 || on[1] != key || on[2] != 64 {
			t.Errorf("message %d: % x", i, on)
		}
	}
}

func TestWriteSetOutOfRange(t *testing.T) {
	set, err := pitchset.New(pattern.Pattern{Kind: pattern.Scale, Intervals: []int{12}}, note.NewPitch(120), 3)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := NewWriter(&b, 0).WriteSet(set, 90); err == nil {
		t.Fatal("expected error for pitch above 127")
	}
}

func TestWriterConsolidation(t *testing.T) {
	var b bytes.Buffer
	wr := NewWriter(&b, 0)
	if err := wr.NoteOff(60); err == nil {
		t.Error("note-off of a silent key should fail")
	}
	if err := wr.NoteOn(60, 90); err != nil {
		t.Fatal(err)
	}
	if err := wr.NoteOn(60, 90); err == nil {
		t.Error("second note-on of a running key should fail")
	}
	if err := wr.NoteOff(60); err != nil {
		t.Error(err)
	}
}
