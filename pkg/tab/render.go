package tab

import (
	"strconv"
	"strings"
)

// FormatNote renders one resolved note: pitch name, then octave unless
// omitted, then technique glyphs verbatim.
func FormatNote(n ResolvedNote, cfg Config) string {
	var b strings.Builder
	b.WriteString(NoteName(n.PitchClass, cfg.Flats))
	if n.HasOctave {
		b.WriteString(strconv.Itoa(n.Octave))
	}
	for _, t := range n.Techniques {
		b.WriteString(t)
	}
	return b.String()
}

// RenderLine serializes a block's resolved chord events as one output
// line: single notes bare, chords bracketed in string order, events
// space-separated left to right.
func RenderLine(events []ResolvedEvent, cfg Config) string {
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		names := make([]string, 0, len(ev.Notes))
		for _, n := range ev.Notes {
			names = append(names, FormatNote(n, cfg))
		}
		if len(names) == 1 {
			parts = append(parts, names[0])
		} else {
			parts = append(parts, "["+strings.Join(names, " ")+"]")
		}
	}
	return strings.Join(parts, " ")
}
