package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gomidi/connect"
	driver "github.com/minikomi/rtmididrv"

	"github.com/minikomi/pitchset/internal/logging"
	"github.com/minikomi/pitchset/internal/note"
	"github.com/minikomi/pitchset/internal/pattern"
	"github.com/minikomi/pitchset/internal/pitchset"
	"github.com/minikomi/pitchset/internal/tonal"
)

func run(args []string, prefs Preferences, stdout io.Writer, log logging.Logger) int {
	flags := flag.NewFlagSet("pitchset", flag.ContinueOnError)
	flags.SetOutput(stdout)
	var sel selection
	flags.StringVar(&sel.scale, "scale", "", "Name of the scale to generate, see -names.")
	flags.StringVar(&sel.chord, "chord", "", "Name of the chord to arpeggiate, see -names.")
	flags.StringVar(&sel.intervals, "intervals", "", "Comma separated semitone steps, e.g. 2,2,1,2,2,2,1.")
	flags.BoolVar(&sel.chordForm, "chord-form", false, "Read -intervals as chord offsets from the root instead of scale steps.")
	flags.StringVar(&sel.catalog, "catalog", prefs.Catalog, "YAML file with extra scales and chords.")
	from := flags.String("from", prefs.From, "Starting pitch, e.g. C4, F#3, Bb2 or a MIDI number.")
	count := flags.Int("n", prefs.Count, "Number of pitches to generate.")
	format := flags.String("format", prefs.Format, "Output template; sprig functions are available.")
	ascii := flags.Bool("ascii", prefs.ASCII, "Write accidentals as b and #.")
	showKey := flags.Bool("key", false, "Estimate the key of the generated pitches.")
	names := flags.Bool("names", false, "List the scale and chord names of the catalog.")
	output := flags.String("o", "", "Write the pitches as raw MIDI note messages to this file.")
	port := flags.Int("port", -1, "Send the pitches as MIDI note messages to this output port.")
	list := flags.Bool("list", false, "List MIDI ports.")
	velocity := flags.Int("velocity", prefs.Velocity, "MIDI note-on velocity.")
	ch := flags.Int("channel", prefs.Channel, "MIDI channel, 0..15.")
	verbose := flags.Bool("v", false, "Log debug information.")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *verbose {
		log.SetLevel(logging.DebugLevel)
	}
	if prefs.YmlError != nil {
		log.Warn("ignoring custom preferences", logging.Fields{"error": prefs.YmlError})
	}
	prefs.Velocity, prefs.Channel = *velocity, *ch
	if err := prefs.Validate(); err != nil {
		log.Error(err, "invalid MIDI settings")
		return 2
	}

	if *list {
		return listPorts(stdout, log)
	}

	catalog, err := loadCatalog(sel.catalog)
	if err != nil {
		log.Error(err, "could not load catalog")
		return 1
	}
	if *names {
		for _, kind := range []pattern.Kind{pattern.Scale, pattern.Chord} {
			for _, name := range catalog.Names(kind) {
				fmt.Fprintf(stdout, "%s\t%s\n", kind, name)
			}
		}
		return 0
	}

	p, err := sel.pattern(catalog)
	if err != nil {
		log.Error(err, "could not select pattern")
		return 2
	}
	first, err := note.ParsePitch(*from)
	if err != nil {
		log.Error(err, "could not parse starting pitch")
		return 2
	}
	log.Debug("generating", logging.Fields{"pattern": p, "from": first, "count": *count})
	set, err := pitchset.New(p, first, *count)
	if err != nil {
		log.Error(err, "could not generate pitches")
		return 2
	}

	var key string
	if *showKey {
		k, err := tonal.EstimateKey(tonal.Profile(set.Pitches()))
		if err != nil {
			log.Error(err, "could not estimate key")
			return 1
		}
		log.Debug("estimated key", logging.Fields{"key": k, "score": k.Score})
		key = k.String()
	}

	tmpl, err := newTemplate(*format)
	if err != nil {
		log.Error(err, "invalid format")
		return 2
	}
	text, err := render(tmpl, newSetView(set, *ascii, key))
	if err != nil {
		log.Error(err, "could not format pitches")
		return 1
	}
	fmt.Fprintln(stdout, text)

	if *output != "" {
		if err := writeFile(*output, set, prefs); err != nil {
			log.Error(err, "could not write MIDI file", logging.Fields{"file": *output})
			return 1
		}
		log.Debug("wrote MIDI messages", logging.Fields{"file": *output})
	}
	if *port >= 0 {
		if err := sendToPort(*port, set, prefs, log); err != nil {
			log.Error(err, "could not send to MIDI port", logging.Fields{"port": *port})
			return 1
		}
	}
	return 0
}

func writeFile(filename string, set *pitchset.Set, prefs Preferences) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	wr := NewWriter(f, uint8(prefs.Channel))
	if err := wr.WriteSet(set, uint8(prefs.Velocity)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func listPorts(stdout io.Writer, log logging.Logger) int {
	drv, err := driver.New()
	if err != nil {
		log.Error(err, "could not open MIDI driver")
		return 1
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		log.Error(err, "could not list MIDI in ports")
		return 1
	}
	outs, err := drv.Outs()
	if err != nil {
		log.Error(err, "could not list MIDI out ports")
		return 1
	}
	printInPorts(stdout, ins)
	printOutPorts(stdout, outs)
	return 0
}

func sendToPort(number int, set *pitchset.Set, prefs Preferences, log logging.Logger) error {
	drv, err := driver.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	outs, err := drv.Outs()
	if err != nil {
		return err
	}
	var out connect.Out
	for _, o := range outs {
		if o.Number() == number {
			out = o
		}
	}
	if out == nil {
		return fmt.Errorf("no MIDI out port %d", number)
	}
	if err := out.Open(); err != nil {
		return err
	}
	defer out.Close()
	log.Info("sending", logging.Fields{"port": out.String(), "pitches": set.Len()})
	return writeTo(out, uint8(prefs.Channel)).WriteSet(set, uint8(prefs.Velocity))
}

func main() {
	os.Exit(run(os.Args[1:], MakePreferences(), os.Stdout, logging.NewDefaultLogger()))
}
