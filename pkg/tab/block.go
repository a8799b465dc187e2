package tab

import "sort"

// toleranceFloor is the minimum column merge window. The effective
// window while sweeping a block is the larger of this and the widest
// fret token seen so far, which absorbs the drift that earlier
// multi-digit numbers cause on later columns.
const toleranceFloor = 1

// AlignBlock merges the per-string fret tokens of one block into chord
// events. Columns are processed in ascending order; tokens whose
// columns fall within the tolerance window of an event merge into it,
// and members of a merged event are ordered by string index. Two
// tokens from the same string never merge: a string plays one note at
// a time, so they are sequential notes, not a chord. In particular a
// block with a single string line yields one single-member event per
// token no matter how close the columns sit.
func AlignBlock(strings [][]FretToken) []ChordEvent {
	type entry struct {
		str int
		tok FretToken
	}
	var all []entry
	for si, toks := range strings {
		for _, t := range toks {
			all = append(all, entry{str: si + 1, tok: t})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].tok.Column != all[j].tok.Column {
			return all[i].tok.Column < all[j].tok.Column
		}
		return all[i].str < all[j].str
	})

	var events []ChordEvent
	window := toleranceFloor
	for _, e := range all {
		if e.tok.Width > window {
			window = e.tok.Width
		}
		if n := len(events); n > 0 && e.tok.Column-events[n-1].Column <= window &&
			!hasString(events[n-1], e.str) {
			events[n-1].Notes = append(events[n-1].Notes, ChordNote{String: e.str, Token: e.tok})
			continue
		}
		events = append(events, ChordEvent{
			Column: e.tok.Column,
			Notes:  []ChordNote{{String: e.str, Token: e.tok}},
		})
	}

	for i := range events {
		notes := events[i].Notes
		sort.SliceStable(notes, func(a, b int) bool { return notes[a].String < notes[b].String })
	}
	return events
}

func hasString(ev ChordEvent, str int) bool {
	for _, n := range ev.Notes {
		if n.String == str {
			return true
		}
	}
	return false
}
