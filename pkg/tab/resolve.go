package tab

import "fmt"

// floorDiv and floorMod implement Euclidean division, so a negative
// transposition carries octaves downward instead of truncating toward
// zero the way Go's % operator does.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// ResolveNote maps a fret on a tuned string to a pitch under the
// configured transposition and octave mode. Technique glyphs pass
// through opaque, or are stripped when technique omission is set.
func ResolveNote(tuning StringTuning, token FretToken, cfg Config) (ResolvedNote, error) {
	if token.Fret < 0 {
		return ResolvedNote{}, fmt.Errorf("%w: fret %d", ErrUnresolvableFret, token.Fret)
	}
	var note ResolvedNote
	if !cfg.OmitTechniques {
		note.Techniques = token.Techniques
	}
	if cfg.OmitOctaves {
		note.PitchClass = floorMod(tuning.PitchClass+token.Fret+cfg.Transpose, 12)
		return note, nil
	}
	abs := tuning.Octave*12 + tuning.PitchClass + token.Fret + cfg.Transpose
	note.PitchClass = floorMod(abs, 12)
	note.Octave = floorDiv(abs, 12)
	note.HasOctave = true
	return note, nil
}

// ResolveEvents resolves every member of every chord event against the
// block's tunings. Tunings are indexed by the member's string number.
func ResolveEvents(events []ChordEvent, tunings []StringTuning, cfg Config) ([]ResolvedEvent, error) {
	resolved := make([]ResolvedEvent, 0, len(events))
	for _, ev := range events {
		re := ResolvedEvent{Column: ev.Column, Notes: make([]ResolvedNote, 0, len(ev.Notes))}
		for _, cn := range ev.Notes {
			if cn.String < 1 || cn.String > len(tunings) {
				return nil, fmt.Errorf("%w: note on string %d but block has %d strings",
					ErrUnresolvableFret, cn.String, len(tunings))
			}
			n, err := ResolveNote(tunings[cn.String-1], cn.Token, cfg)
			if err != nil {
				return nil, err
			}
			re.Notes = append(re.Notes, n)
		}
		resolved = append(resolved, re)
	}
	return resolved, nil
}
