package tab

import "testing"

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("drop-d")
	if !ok {
		t.Fatal("drop-d preset missing")
	}
	if len(p.Tunings) != 6 {
		t.Fatalf("drop-d has %d strings, want 6", len(p.Tunings))
	}
	if (p.Tunings[5] != StringTuning{PitchClass: 2, Octave: 2}) {
		t.Errorf("drop-d string 6 = %+v, want D2", p.Tunings[5])
	}

	if _, ok := LookupPreset("DADGAD"); !ok {
		t.Error("preset lookup should be case-insensitive")
	}
	if _, ok := LookupPreset("banjo"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestPresetDescribe(t *testing.T) {
	p, ok := LookupPreset("standard")
	if !ok {
		t.Fatal("standard preset missing")
	}
	if got, want := p.Describe(), "E4 B3 G3 D3 A3 E2"; got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}

func TestPresetStringCounts(t *testing.T) {
	counts := map[string]int{
		"standard": 6,
		"drop-d":   6,
		"dadgad":   6,
		"open-g":   6,
		"ukulele":  4,
		"bass":     4,
	}
	for _, p := range Presets() {
		want, ok := counts[p.Name]
		if !ok {
			t.Errorf("unexpected preset %q", p.Name)
			continue
		}
		if len(p.Tunings) != want {
			t.Errorf("%s has %d strings, want %d", p.Name, len(p.Tunings), want)
		}
		if len(p.Tunings) > MaxStrings {
			t.Errorf("%s exceeds MaxStrings", p.Name)
		}
	}
}
