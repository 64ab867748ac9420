package main

import (
	"fmt"
	"io"

	"github.com/gomidi/connect"
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"

	"github.com/minikomi/pitchset/internal/pitchset"
)

type midiWriter struct {
	wr              midi.Writer
	ch              channel.Channel
	noteState       [16][128]bool
	noConsolidation bool
}

// Writer renders pitch sets as MIDI channel messages, refusing note-ons for
// keys already sounding and note-offs for silent keys.
type Writer struct {
	*midiWriter
}

func NewWriter(dest io.Writer, ch uint8, options ...midiwriter.Option) *Writer {
	options = append(
		[]midiwriter.Option{
			midiwriter.NoRunningStatus(),
		}, options...)

	wr := midiwriter.New(dest, options...)
	return &Writer{&midiWriter{wr: wr, ch: channel.Channel(ch % 16)}}
}

type outWriter struct {
	out connect.Out
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

func writeTo(out connect.Out, ch uint8) *Writer {
	return NewWriter(&outWriter{out}, ch)
}

// WriteSet writes a note-on and note-off for every pitch of the set, in
// order. Pitches outside the MIDI key range are an error.
func (w *midiWriter) WriteSet(s *pitchset.Set, velocity uint8) error {
	for i, p := range s.All() {
		key, ok := p.Key()
		if !ok {
			return fmt.Errorf("pitch %d (%v, value %d) is outside the MIDI key range", i, p, p.Value())
		}
		if err := w.NoteOn(key, velocity); err != nil {
			return err
		}
		if err := w.NoteOff(key); err != nil {
			return err
		}
	}
	return nil
}

func (w *midiWriter) NoteOn(key, velocity uint8) error {
	return w.Write(w.ch.NoteOn(key, velocity))
}

func (w *midiWriter) NoteOff(key uint8) error {
	return w.Write(w.ch.NoteOff(key))
}

func (w *midiWriter) Write(msg midi.Message) error {
	if w.noConsolidation {
		return w.wr.Write(msg)
	}
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note already running.", msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
		w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	case channel.NoteOffVelocity:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	}
	return w.wr.Write(msg)
}

func printPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}

func printInPorts(w io.Writer, ports []connect.In) {
	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ports {
		printPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}

func printOutPorts(w io.Writer, ports []connect.Out) {
	fmt.Fprintf(w, "MIDI OUT Ports\n")
	for _, port := range ports {
		printPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}
