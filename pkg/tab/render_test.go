package tab

import "testing"

func TestFormatNote(t *testing.T) {
	flats := DefaultConfig()
	flats.Flats = true

	tests := []struct {
		name     string
		note     ResolvedNote
		cfg      Config
		expected string
	}{
		{"natural", ResolvedNote{PitchClass: 7, Octave: 4, HasOctave: true}, DefaultConfig(), "G4"},
		{"sharp spelling", ResolvedNote{PitchClass: 6, Octave: 4, HasOctave: true}, DefaultConfig(), "F#4"},
		{"flat spelling", ResolvedNote{PitchClass: 6, Octave: 4, HasOctave: true}, flats, "Gb4"},
		{"no octave", ResolvedNote{PitchClass: 4}, DefaultConfig(), "E"},
		{"negative octave", ResolvedNote{PitchClass: 11, Octave: -1, HasOctave: true}, DefaultConfig(), "B-1"},
		{"technique suffix", ResolvedNote{PitchClass: 9, Octave: 4, HasOctave: true,
			Techniques: []string{"h"}}, DefaultConfig(), "A4h"},
		{"several techniques", ResolvedNote{PitchClass: 9, Octave: 4, HasOctave: true,
			Techniques: []string{"h", "b"}}, DefaultConfig(), "A4hb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNote(tt.note, tt.cfg); got != tt.expected {
				t.Errorf("FormatNote = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderLine(t *testing.T) {
	cfg := DefaultConfig()
	events := []ResolvedEvent{
		{Column: 2, Notes: []ResolvedNote{{PitchClass: 7, Octave: 4, HasOctave: true}}},
		{Column: 6, Notes: []ResolvedNote{
			{PitchClass: 4, Octave: 4, HasOctave: true},
			{PitchClass: 11, Octave: 3, HasOctave: true},
		}},
	}

	if got, want := RenderLine(events, cfg), "G4 [E4 B3]"; got != want {
		t.Errorf("RenderLine = %q, want %q", got, want)
	}
}

func TestRenderLineEmpty(t *testing.T) {
	if got := RenderLine(nil, DefaultConfig()); got != "" {
		t.Errorf("RenderLine(nil) = %q, want empty", got)
	}
}
