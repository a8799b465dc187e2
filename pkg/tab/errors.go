package tab

import "errors"

// Error kinds surfaced by the conversion pipeline. The document loop
// wraps them with the offending line number; callers classify them with
// errors.Is.
var (
	// ErrInvalidTuningLetter marks a tuning prefix that does not start
	// with a recognized note letter (A-G, case-insensitive).
	ErrInvalidTuningLetter = errors.New("invalid tuning letter")

	// ErrMalformedConfig marks conflicting or out-of-range configuration.
	ErrMalformedConfig = errors.New("malformed configuration")

	// ErrUnresolvableFret marks a fret that yields no defined pitch.
	ErrUnresolvableFret = errors.New("unresolvable fret")
)
