package tab

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTabLine(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name     string
		content  string
		expected []FretToken
	}{
		{
			name:    "single frets",
			content: "--3--5--",
			expected: []FretToken{
				{Column: 2, Fret: 3, Width: 1},
				{Column: 5, Fret: 5, Width: 1},
			},
		},
		{
			name:    "hammer-on between frets attaches to both",
			content: "--3--5h7--",
			expected: []FretToken{
				{Column: 2, Fret: 3, Width: 1},
				{Column: 5, Fret: 5, Width: 1, Techniques: []string{"h"}},
				{Column: 7, Fret: 7, Width: 1, Techniques: []string{"h"}},
			},
		},
		{
			name:     "multi-digit fret",
			content:  "--12--",
			expected: []FretToken{{Column: 2, Fret: 12, Width: 2}},
		},
		{
			name:     "zero-padded fret keeps its scanned width",
			content:  "-03-",
			expected: []FretToken{{Column: 1, Fret: 3, Width: 2}},
		},
		{
			name:    "glyph splits a digit run",
			content: "12b34",
			expected: []FretToken{
				{Column: 0, Fret: 12, Width: 2, Techniques: []string{"b"}},
				{Column: 3, Fret: 34, Width: 2, Techniques: []string{"b"}},
			},
		},
		{
			name:     "glyph before its note",
			content:  "--h5--",
			expected: []FretToken{{Column: 3, Fret: 5, Width: 1, Techniques: []string{"h"}}},
		},
		{
			name:     "trailing bend",
			content:  "3b--",
			expected: []FretToken{{Column: 0, Fret: 3, Width: 1, Techniques: []string{"b"}}},
		},
		{
			name:    "glyphs on both sides",
			content: "--h7b-",
			expected: []FretToken{
				{Column: 3, Fret: 7, Width: 1, Techniques: []string{"h", "b"}},
			},
		},
		{
			name:     "multi-character glyph run",
			content:  "~~3",
			expected: []FretToken{{Column: 2, Fret: 3, Width: 1, Techniques: []string{"~~"}}},
		},
		{
			name:     "glyph with no adjacent note is dropped",
			content:  "--h--",
			expected: nil,
		},
		{
			name:    "interior bar line is filler",
			content: "--3--|--5--",
			expected: []FretToken{
				{Column: 2, Fret: 3, Width: 1},
				{Column: 8, Fret: 5, Width: 1},
			},
		},
		{
			name:     "only filler",
			content:  "------",
			expected: nil,
		},
		{
			name:     "empty",
			content:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTabLine(tt.content, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseTabLine(%q) = %+v, want %+v", tt.content, got, tt.expected)
			}
		})
	}
}

func TestParseTabLineOverflow(t *testing.T) {
	_, err := ParseTabLine("--99999999999999999999--", DefaultConfig())
	if !errors.Is(err, ErrUnresolvableFret) {
		t.Errorf("error = %v, want ErrUnresolvableFret", err)
	}
}

func TestParseTabLineRestMarkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestMarkers = "x"

	got, err := ParseTabLine("--x--3--", cfg)
	if err != nil {
		t.Fatal(err)
	}
	expected := []FretToken{{Column: 5, Fret: 3, Width: 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %+v, want %+v", got, expected)
	}
}
