package pattern

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog holds named scale and chord patterns.
type Catalog struct {
	Scales map[string][]int `yaml:",omitempty"`
	Chords map[string][]int `yaml:",omitempty"`
}

//go:embed catalog.yml
var defaultCatalogYaml []byte

// DefaultCatalog returns the built-in scales and chords.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultCatalogYaml))
	if err != nil {
		panic(fmt.Errorf("failed to load default catalog: %w", err))
	}
	return c
}

// LoadCatalog decodes a catalog document. Unknown fields and invalid patterns
// are errors.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}
	for _, kind := range []Kind{Scale, Chord} {
		for name, intervals := range c.table(kind) {
			if err := (Pattern{Name: name, Kind: kind, Intervals: intervals}).Validate(); err != nil {
				return nil, err
			}
		}
	}
	return &c, nil
}

// Merge adds the patterns of other to c, replacing patterns with the same
// name.
func (c *Catalog) Merge(other *Catalog) {
	if c.Scales == nil {
		c.Scales = map[string][]int{}
	}
	if c.Chords == nil {
		c.Chords = map[string][]int{}
	}
	for name, intervals := range other.Scales {
		c.Scales[name] = intervals
	}
	for name, intervals := range other.Chords {
		c.Chords[name] = intervals
	}
}

// Lookup returns the named pattern of the given kind.
func (c *Catalog) Lookup(kind Kind, name string) (Pattern, error) {
	intervals, ok := c.table(kind)[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s %q", ErrUnknown, kind, name)
	}
	ret := make([]int, len(intervals))
	copy(ret, intervals)
	return Pattern{Name: name, Kind: kind, Intervals: ret}, nil
}

// Names lists the pattern names of a kind in alphabetical order.
func (c *Catalog) Names(kind Kind) []string {
	table := c.table(kind)
	ret := make([]string, 0, len(table))
	for name := range table {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Marshal encodes the catalog in the same format LoadCatalog reads.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Catalog) table(kind Kind) map[string][]int {
	if kind == Chord {
		return c.Chords
	}
	return c.Scales
}
