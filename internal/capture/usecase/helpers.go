package usecase

import (
	"time"

	"voicetask/pkg/textrules"
)

// referenceOrNow falls back to the current time in the service timezone when
// the caller did not pin a reference instant.
func (uc *implUseCase) referenceOrNow(ref time.Time) time.Time {
	if ref.IsZero() {
		return time.Now().In(uc.resolver.Location())
	}
	return ref
}

// eventStart combines the action's due date and time into a concrete instant
// in the service timezone. Callers must ensure both fields are set.
func (uc *implUseCase) eventStart(action textrules.ParsedAction) time.Time {
	d := *action.DueDate
	t := *action.DueTime
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, uc.resolver.Location())
}
