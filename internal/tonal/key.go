// Package tonal fits pitch collections to major and minor keys.
package tonal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/minikomi/pitchset/internal/note"
)

// Mode of a key.
type Mode int

const (
	Major Mode = iota
	Minor
)

var ErrNoPitches = errors.New("no pitches to analyze")

// Key is the best fitting key together with its correlation score.
type Key struct {
	Tonic note.PitchClass
	Mode  Mode
	Score float64
}

// Krumhansl-Schmuckler key profiles, indexed by semitones above the tonic.
var profiles = [2][12]float64{
	Major: {6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
	Minor: {6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
}

var tonicNames = [2][12]string{
	Major: {"C", "D♭", "D", "E♭", "E", "F", "F♯", "G", "A♭", "A", "B♭", "B"},
	Minor: {"C", "C♯", "D", "E♭", "E", "F", "F♯", "G", "G♯", "A", "B♭", "B"},
}

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s", tonicNames[k.Mode][k.Tonic%12], k.Mode)
}

// Profile returns the pitch-class distribution of the pitches, summing to 1.
// An empty input gives an all-zero profile.
func Profile(pitches []note.Pitch) []float64 {
	ret := make([]float64, 12)
	for _, p := range pitches {
		ret[p.Class()]++
	}
	if sum := floats.Sum(ret); sum > 0 {
		floats.Scale(1/sum, ret)
	}
	return ret
}

// EstimateKey correlates the profile with every rotation of the major and
// minor key profiles and returns the best match.
func EstimateKey(profile []float64) (Key, error) {
	if len(profile) != 12 {
		return Key{}, fmt.Errorf("profile has %d bins, expected 12", len(profile))
	}
	if floats.Sum(profile) == 0 {
		return Key{}, ErrNoPitches
	}
	best := Key{Score: math.Inf(-1)}
	rotated := make([]float64, 12)
	for _, mode := range []Mode{Major, Minor} {
		for tonic := 0; tonic < 12; tonic++ {
			for i := range rotated {
				rotated[i] = profiles[mode][(i-tonic+12)%12]
			}
			score := stat.Correlation(profile, rotated, nil)
			if math.IsNaN(score) {
				continue
			}
			if score > best.Score {
				best = Key{Tonic: note.PitchClass(tonic), Mode: mode, Score: score}
			}
		}
	}
	if math.IsInf(best.Score, -1) {
		return Key{}, ErrNoPitches
	}
	return best, nil
}
