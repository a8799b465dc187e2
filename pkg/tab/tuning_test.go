package tab

import (
	"errors"
	"testing"
)

func TestParsePitchClass(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"C", 0},
		{"E", 4},
		{"e", 4},
		{"B", 11},
		{"F#", 6},
		{"f#", 6},
		{"Bb", 10},
		{"bb", 10},
		{"EB", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParsePitchClass(tt.name)
			if err != nil {
				t.Fatalf("ParsePitchClass(%q) error: %v", tt.name, err)
			}
			if pc != tt.expected {
				t.Errorf("ParsePitchClass(%q) = %d, want %d", tt.name, pc, tt.expected)
			}
		})
	}
}

func TestParsePitchClassInvalid(t *testing.T) {
	for _, name := range []string{"", "H", "X#", "C##", "1"} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParsePitchClass(name); !errors.Is(err, ErrInvalidTuningLetter) {
				t.Errorf("ParsePitchClass(%q) error = %v, want ErrInvalidTuningLetter", name, err)
			}
		})
	}
}

func TestParseStringTuning(t *testing.T) {
	tests := []struct {
		name     string
		expected StringTuning
	}{
		{"E4", StringTuning{PitchClass: 4, Octave: 4}},
		{"B3", StringTuning{PitchClass: 11, Octave: 3}},
		{"F#2", StringTuning{PitchClass: 6, Octave: 2}},
		{"Bb3", StringTuning{PitchClass: 10, Octave: 3}},
		{"D2", StringTuning{PitchClass: 2, Octave: 2}},
		{"E", StringTuning{PitchClass: 4, Octave: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseStringTuning(tt.name)
			if err != nil {
				t.Fatalf("ParseStringTuning(%q) error: %v", tt.name, err)
			}
			if st != tt.expected {
				t.Errorf("ParseStringTuning(%q) = %+v, want %+v", tt.name, st, tt.expected)
			}
		})
	}

	if _, err := ParseStringTuning("H4"); !errors.Is(err, ErrInvalidTuningLetter) {
		t.Errorf("ParseStringTuning(\"H4\") error = %v, want ErrInvalidTuningLetter", err)
	}
}

func TestIsTabLine(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		line     string
		expected bool
	}{
		{"e|--3--5--|", true},
		{"B|-0-|", true},
		{"d|--2--|", true},
		{"Bb|----|", true},
		{"|---0---|", true},
		{"Chorus:", false},
		{"x|---|", false},
		{" |---|", false},
		{"e---3---", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsTabLine(tt.line, cfg); got != tt.expected {
				t.Errorf("IsTabLine(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestIsTabLineCustomSeparator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TuningSeparator = ":"
	if !IsTabLine("e:--3--", cfg) {
		t.Error("expected tab line with custom separator")
	}
	if IsTabLine("e|--3--|", cfg) {
		t.Error("default separator should not match with custom separator configured")
	}
}

func TestResolveTuningDefaults(t *testing.T) {
	cfg := DefaultConfig()
	for i, want := range StandardTuning {
		got, err := ResolveTuning("e", i+1, cfg)
		if err != nil {
			t.Fatalf("string %d: %v", i+1, err)
		}
		if got != want {
			t.Errorf("string %d = %+v, want %+v", i+1, got, want)
		}
	}
}

func TestResolveTuningOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StringTunings = map[int]StringTuning{6: {PitchClass: 2, Octave: 2}}

	got, err := ResolveTuning("E", 6, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if (got != StringTuning{PitchClass: 2, Octave: 2}) {
		t.Errorf("override ignored: got %+v", got)
	}
}

func TestResolveTuningOmitOctaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OmitOctaves = true
	// overrides must be ignored in this mode
	cfg.StringTunings = map[int]StringTuning{1: {PitchClass: 0, Octave: 5}}

	got, err := ResolveTuning("d", 1, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if (got != StringTuning{PitchClass: 2}) {
		t.Errorf("got %+v, want pitch class D with no octave", got)
	}

	// untuned line falls back to the default letter for the string
	got, err = ResolveTuning("", 1, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got.PitchClass != 4 {
		t.Errorf("empty prefix pitch class = %d, want 4 (E)", got.PitchClass)
	}

	if _, err := ResolveTuning("H", 1, cfg); !errors.Is(err, ErrInvalidTuningLetter) {
		t.Errorf("error = %v, want ErrInvalidTuningLetter", err)
	}
}

func TestResolveTuningBasePreset(t *testing.T) {
	uke, ok := LookupPreset("ukulele")
	if !ok {
		t.Fatal("ukulele preset missing")
	}
	cfg := DefaultConfig()
	cfg.BaseTunings = uke.Tunings

	got, err := ResolveTuning("a", 1, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if (got != StringTuning{PitchClass: 9, Octave: 4}) {
		t.Errorf("got %+v, want A4", got)
	}

	if _, err := ResolveTuning("e", 5, cfg); !errors.Is(err, ErrMalformedConfig) {
		t.Errorf("string 5 on a 4-string preset: error = %v, want ErrMalformedConfig", err)
	}
}

func TestResolveTuningBadIndex(t *testing.T) {
	cfg := DefaultConfig()
	for _, idx := range []int{0, 7, -1} {
		if _, err := ResolveTuning("e", idx, cfg); !errors.Is(err, ErrMalformedConfig) {
			t.Errorf("index %d: error = %v, want ErrMalformedConfig", idx, err)
		}
	}
}
