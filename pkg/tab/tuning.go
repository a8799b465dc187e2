package tab

import (
	"fmt"
	"strconv"
	"strings"
)

// naturalPitch maps the seven natural note letters to pitch classes.
var naturalPitch = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// sharpNames and flatNames spell the twelve pitch classes under the two
// accidental conventions.
var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// StandardTuning is the default guitar tuning, thinnest string first.
var StandardTuning = [MaxStrings]StringTuning{
	{PitchClass: 4, Octave: 4},  // E4
	{PitchClass: 11, Octave: 3}, // B3
	{PitchClass: 7, Octave: 3},  // G3
	{PitchClass: 2, Octave: 3},  // D3
	{PitchClass: 9, Octave: 3},  // A3
	{PitchClass: 4, Octave: 2},  // E2
}

// NoteName spells a pitch class under the chosen accidental convention.
func NoteName(pitchClass int, flats bool) string {
	if flats {
		return flatNames[pitchClass]
	}
	return sharpNames[pitchClass]
}

// ParsePitchClass parses a note name without octave ("E", "f#", "Bb").
func ParsePitchClass(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty note name", ErrInvalidTuningLetter)
	}
	letter := name[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	pc, ok := naturalPitch[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTuningLetter, name)
	}
	switch name[1:] {
	case "":
	case "#":
		pc = (pc + 1) % 12
	case "b", "B":
		pc = (pc + 11) % 12
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTuningLetter, name)
	}
	return pc, nil
}

// ParseStringTuning parses a tuning name with octave ("E4", "F#2",
// "Bb3"). A name without digits gets octave 0.
func ParseStringTuning(name string) (StringTuning, error) {
	i := strings.IndexFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		pc, err := ParsePitchClass(name)
		if err != nil {
			return StringTuning{}, err
		}
		return StringTuning{PitchClass: pc}, nil
	}
	pc, err := ParsePitchClass(name[:i])
	if err != nil {
		return StringTuning{}, err
	}
	oct, err := strconv.Atoi(name[i:])
	if err != nil {
		return StringTuning{}, fmt.Errorf("%w: %q", ErrInvalidTuningLetter, name)
	}
	return StringTuning{PitchClass: pc, Octave: oct}, nil
}

// SplitTabLine splits a raw line at the first occurrence of the tuning
// separator. ok is false when the separator never occurs, which is what
// marks a line as pass-through text rather than tab.
func SplitTabLine(line string, cfg Config) (prefix, content string, ok bool) {
	sep := cfg.separator()
	i := strings.Index(line, sep)
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), line[i+len(sep):], true
}

// IsTabLine reports whether line reads as one string of a tab block:
// the text before the separator parses as a note name, or the line
// starts with the separator outright (tab without tuning letters).
func IsTabLine(line string, cfg Config) bool {
	prefix, _, ok := SplitTabLine(line, cfg)
	if !ok {
		return false
	}
	if prefix == "" {
		return strings.HasPrefix(line, cfg.separator())
	}
	_, err := ParsePitchClass(prefix)
	return err == nil
}

// ResolveTuning produces the open-string pitch for one tab line.
// stringIndex counts from 1 at the top of the block. In omit-octaves
// mode the pitch class comes from the line's own prefix and configured
// overrides are ignored; otherwise the prefix is ignored in favor of
// the override, the base tuning, or the standard default.
func ResolveTuning(prefix string, stringIndex int, cfg Config) (StringTuning, error) {
	if stringIndex < 1 || stringIndex > MaxStrings {
		return StringTuning{}, fmt.Errorf("%w: string %d out of range 1-%d",
			ErrMalformedConfig, stringIndex, MaxStrings)
	}
	base := StandardTuning[stringIndex-1]
	if cfg.BaseTunings != nil {
		if stringIndex > len(cfg.BaseTunings) {
			return StringTuning{}, fmt.Errorf("%w: base tuning defines %d strings but block has a string %d",
				ErrMalformedConfig, len(cfg.BaseTunings), stringIndex)
		}
		base = cfg.BaseTunings[stringIndex-1]
	}
	if cfg.OmitOctaves {
		if prefix == "" {
			return StringTuning{PitchClass: base.PitchClass}, nil
		}
		pc, err := ParsePitchClass(prefix)
		if err != nil {
			return StringTuning{}, err
		}
		return StringTuning{PitchClass: pc}, nil
	}
	if t, ok := cfg.StringTunings[stringIndex]; ok {
		return t, nil
	}
	return base, nil
}
