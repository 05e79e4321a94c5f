package datemath

import "time"

// TimeOfDay is a clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Extraction holds the date and time cues found in one sentence.
// Date is midnight in the resolver's location; both fields are nil when the
// sentence carried no recognizable cue. Matched collects the literal phrases
// that were consumed so callers can strip them from display text.
type Extraction struct {
	Date    *time.Time
	Time    *TimeOfDay
	Matched []string
}
