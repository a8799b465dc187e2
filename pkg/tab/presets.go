package tab

import "strings"

// Preset is a named instrument tuning selectable from the CLI, TUI, and
// API. Tunings run thinnest string first, matching block line order.
type Preset struct {
	Name        string
	Description string
	Tunings     []StringTuning
}

var presets = []Preset{
	{
		Name:        "standard",
		Description: "Standard guitar (E4 B3 G3 D3 A3 E2)",
		Tunings:     StandardTuning[:],
	},
	{
		Name:        "drop-d",
		Description: "Drop D guitar (E4 B3 G3 D3 A3 D2)",
		Tunings: []StringTuning{
			{PitchClass: 4, Octave: 4}, {PitchClass: 11, Octave: 3}, {PitchClass: 7, Octave: 3},
			{PitchClass: 2, Octave: 3}, {PitchClass: 9, Octave: 3}, {PitchClass: 2, Octave: 2},
		},
	},
	{
		Name:        "dadgad",
		Description: "DADGAD guitar (D4 A3 G3 D3 A2 D2)",
		Tunings: []StringTuning{
			{PitchClass: 2, Octave: 4}, {PitchClass: 9, Octave: 3}, {PitchClass: 7, Octave: 3},
			{PitchClass: 2, Octave: 3}, {PitchClass: 9, Octave: 2}, {PitchClass: 2, Octave: 2},
		},
	},
	{
		Name:        "open-g",
		Description: "Open G guitar (D4 B3 G3 D3 G2 D2)",
		Tunings: []StringTuning{
			{PitchClass: 2, Octave: 4}, {PitchClass: 11, Octave: 3}, {PitchClass: 7, Octave: 3},
			{PitchClass: 2, Octave: 3}, {PitchClass: 7, Octave: 2}, {PitchClass: 2, Octave: 2},
		},
	},
	{
		Name:        "ukulele",
		Description: "Soprano ukulele, reentrant (A4 E4 C4 G4)",
		Tunings: []StringTuning{
			{PitchClass: 9, Octave: 4}, {PitchClass: 4, Octave: 4},
			{PitchClass: 0, Octave: 4}, {PitchClass: 7, Octave: 4},
		},
	},
	{
		Name:        "bass",
		Description: "4-string bass (G2 D2 A1 E1)",
		Tunings: []StringTuning{
			{PitchClass: 7, Octave: 2}, {PitchClass: 2, Octave: 2},
			{PitchClass: 9, Octave: 1}, {PitchClass: 4, Octave: 1},
		},
	},
}

// Presets returns the built-in tuning presets.
func Presets() []Preset {
	return presets
}

// LookupPreset finds a preset by name, case-insensitive.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Describe spells the preset's tunings as note names with octaves.
func (p Preset) Describe() string {
	names := make([]string, 0, len(p.Tunings))
	for _, t := range p.Tunings {
		names = append(names, FormatNote(ResolvedNote{
			PitchClass: t.PitchClass,
			Octave:     t.Octave,
			HasOctave:  true,
		}, Config{}))
	}
	return strings.Join(names, " ")
}
