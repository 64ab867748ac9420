package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/minikomi/pitchset/internal/pattern"
)

var errNoPattern = errors.New("one of -scale, -chord or -intervals is required")

type selection struct {
	scale     string
	chord     string
	intervals string
	chordForm bool
	catalog   string
}

// loadCatalog returns the built-in catalog, extended by the file if one is
// given.
func loadCatalog(file string) (*pattern.Catalog, error) {
	c := pattern.DefaultCatalog()
	if file == "" {
		return c, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	custom, err := pattern.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	c.Merge(custom)
	return c, nil
}

func (s selection) pattern(c *pattern.Catalog) (pattern.Pattern, error) {
	given := 0
	for _, v := range []string{s.scale, s.chord, s.intervals} {
		if v != "" {
			given++
		}
	}
	switch {
	case given == 0:
		return pattern.Pattern{}, errNoPattern
	case given > 1:
		return pattern.Pattern{}, errors.New("-scale, -chord and -intervals are mutually exclusive")
	case s.scale != "":
		return c.Lookup(pattern.Scale, s.scale)
	case s.chord != "":
		return c.Lookup(pattern.Chord, s.chord)
	}
	intervals, err := pattern.ParseIntervals(s.intervals)
	if err != nil {
		return pattern.Pattern{}, err
	}
	p := pattern.Pattern{Name: s.intervals, Kind: pattern.Scale, Intervals: intervals}
	if s.chordForm {
		p.Kind = pattern.Chord
	}
	return p, p.Validate()
}
