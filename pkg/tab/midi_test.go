package tab

import (
	"bytes"
	"errors"
	"testing"
)

func TestMIDINoteNumbers(t *testing.T) {
	tests := []struct {
		name     string
		note     ResolvedNote
		expected uint8
	}{
		{"middle C", ResolvedNote{PitchClass: 0, Octave: 4}, 60},
		{"high E string", ResolvedNote{PitchClass: 4, Octave: 4}, 64},
		{"low E string", ResolvedNote{PitchClass: 4, Octave: 2}, 40},
		{"lowest note", ResolvedNote{PitchClass: 0, Octave: -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := midiNote(tt.note)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("midiNote(%+v) = %d, want %d", tt.note, got, tt.expected)
			}
		})
	}
}

func TestMIDINoteOutOfRange(t *testing.T) {
	for _, n := range []ResolvedNote{
		{PitchClass: 0, Octave: -3},
		{PitchClass: 8, Octave: 9},
	} {
		if _, err := midiNote(n); !errors.Is(err, ErrUnresolvableFret) {
			t.Errorf("midiNote(%+v) error = %v, want ErrUnresolvableFret", n, err)
		}
	}
}

func TestMIDIWriterHeader(t *testing.T) {
	data, err := NewMIDIWriter().Write([]ResolvedEvent{
		{Notes: []ResolvedNote{{PitchClass: 4, Octave: 4, HasOctave: true}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Errorf("output does not start with an SMF header: % x", data[:8])
	}
}

func TestConvertToMIDI(t *testing.T) {
	data, err := New(DefaultConfig()).ConvertToMIDI([]string{
		"Riff",
		"e|--0--3--|",
		"B|--0-----|",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Error("output does not start with an SMF header")
	}
	if !bytes.Contains(data, []byte("MTrk")) {
		t.Error("output has no track chunk")
	}
}

func TestConvertToMIDIChordLargerThanSingle(t *testing.T) {
	conv := New(DefaultConfig())
	single, err := conv.ConvertToMIDI([]string{"e|--0--|"})
	if err != nil {
		t.Fatal(err)
	}
	chord, err := conv.ConvertToMIDI([]string{"e|--0--|", "B|--0--|"})
	if err != nil {
		t.Fatal(err)
	}
	if len(chord) <= len(single) {
		t.Errorf("chord file (%d bytes) not larger than single note file (%d bytes)", len(chord), len(single))
	}
}

func TestConvertToMIDIRefusesOmitOctaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OmitOctaves = true

	_, err := New(cfg).ConvertToMIDI([]string{"e|--0--|"})
	if !errors.Is(err, ErrMalformedConfig) {
		t.Errorf("error = %v, want ErrMalformedConfig", err)
	}
}
