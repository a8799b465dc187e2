package tab

import (
	"fmt"
	"strconv"
)

// DefaultTuningSeparator splits the tuning prefix from the fret columns.
const DefaultTuningSeparator = "|"

// MaxStrings is the largest number of string lines a block may have.
const MaxStrings = 6

// Config holds the conversion options for one run. It is read-only for
// the duration of a conversion and threaded into every component as a
// parameter; nothing in the pipeline keeps ambient state.
type Config struct {
	TuningSeparator string
	Transpose       int  // semitones, may be negative
	Flats           bool // spell accidentals as flats (sharps otherwise)
	OmitOctaves     bool
	OmitTechniques  bool
	ChordAnalysis   bool

	// RestMarkers lists extra characters treated as filler on tab
	// lines, in addition to dash, dot, whitespace, and the separator.
	RestMarkers string

	// StringTunings overrides the default tuning per string index
	// (1..6, thinnest first). Ignored when OmitOctaves is set.
	StringTunings map[int]StringTuning

	// BaseTunings replaces the standard default tuning, thinnest string
	// first (tuning presets). Overrides still apply on top. Nil means
	// standard tuning.
	BaseTunings []StringTuning
}

// DefaultConfig returns the configuration for a plain conversion:
// standard tuning, sharps, octaves and techniques written.
func DefaultConfig() Config {
	return Config{TuningSeparator: DefaultTuningSeparator}
}

func (c Config) separator() string {
	if c.TuningSeparator == "" {
		return DefaultTuningSeparator
	}
	return c.TuningSeparator
}

// Validate reports configuration that cannot produce a meaningful run.
func (c Config) Validate() error {
	for idx := range c.StringTunings {
		if idx < 1 || idx > MaxStrings {
			return fmt.Errorf("%w: tuning override for string %d (valid range 1-%d)",
				ErrMalformedConfig, idx, MaxStrings)
		}
	}
	if len(c.BaseTunings) > MaxStrings {
		return fmt.Errorf("%w: base tuning has %d strings (at most %d)",
			ErrMalformedConfig, len(c.BaseTunings), MaxStrings)
	}
	return nil
}

// keyTranspose maps a transposing-instrument key to the semitone shift
// from concert pitch.
var keyTranspose = map[string]int{
	"Bb": 2,
	"Eb": 9,
	"F":  7,
	"A":  3,
}

// ParseTranspose accepts a signed semitone count or a transposing
// instrument key (Bb, Eb, F, A) and returns the semitone shift. The
// core resolver itself only works with integers; this helper is for
// the CLI/API layers that accept either form.
func ParseTranspose(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, ok := keyTranspose[s]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: transpose %q is neither a semitone count nor a known instrument key", ErrMalformedConfig, s)
	}
	return n, nil
}
