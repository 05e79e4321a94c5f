package textrules

import (
	"time"

	"voicetask/pkg/datemath"
)

// Category is the semantic type of a parsed action.
type Category string

const (
	CategoryTask     Category = "task"
	CategoryEvent    Category = "event"
	CategoryNote     Category = "note"
	CategoryReminder Category = "reminder"
	CategoryIdea     Category = "idea"
)

// Priority of a parsed action. Defaults to PriorityNormal.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsedAction is one structured record extracted from a sentence of
// transcribed speech. It is a plain value owned by the caller.
type ParsedAction struct {
	Title    string
	Category Category
	// DueDate is midnight of the due day in the parser's location, nil when
	// the sentence carried no date or time cue.
	DueDate *time.Time
	// DueTime is set only for an explicit clock-time cue.
	DueTime  *datemath.TimeOfDay
	Priority Priority
	IsEvent  bool
	// DurationMinutes is 0 unless a duration phrase matched.
	DurationMinutes int
}
