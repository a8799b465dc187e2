// Package tab converts ASCII guitar tablature into note-name notation
package tab

// StringTuning is the pitch of one open string.
type StringTuning struct {
	PitchClass int // 0-11, C = 0
	Octave     int
}

// FretToken is one fret number scanned from a tab line.
type FretToken struct {
	Column     int // offset of the first digit after the tuning separator
	Fret       int
	Width      int      // digit characters scanned, counting leading zeros
	Techniques []string // glyph runs in source order, nil when none
}

// ChordNote pairs a fret token with the string it was played on.
// Strings count from 1, thinnest first.
type ChordNote struct {
	String int
	Token  FretToken
}

// ChordEvent groups fret tokens across strings that sound at the same
// time column. A single-member event renders as a bare note; a
// multi-member event renders bracketed.
type ChordEvent struct {
	Column int
	Notes  []ChordNote // ordered by string index
}

// ResolvedNote is the pitch produced from a string tuning and a fret
// number. HasOctave is false when octave omission is configured.
type ResolvedNote struct {
	PitchClass int
	Octave     int
	HasOctave  bool
	Techniques []string
}

// ResolvedEvent is a chord event with every member resolved to a pitch.
type ResolvedEvent struct {
	Column int
	Notes  []ResolvedNote
}

// TabBlock is a maximal run of consecutive tab lines, one line per
// string in source order (which is tuning-assignment order).
type TabBlock struct {
	FirstLine int // 1-based line number of the first tab line
	Tunings   []StringTuning
	Strings   [][]FretToken
}
