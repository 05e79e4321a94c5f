package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"voicetask/internal/capture"
	"voicetask/internal/model"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/textrules"
)

// Capture parses the utterance and turns each action into a capture record.
// Calendar export is best-effort: a failed export logs a warning and leaves
// the record without a link, it never fails the capture.
func (uc *implUseCase) Capture(ctx context.Context, input capture.CaptureInput) (capture.CaptureOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return capture.CaptureOutput{}, capture.ErrEmptyInput
	}

	ref := uc.referenceOrNow(input.ReferenceNow)
	actions := uc.parser.Parse(input.Text, ref)
	if len(actions) == 0 {
		return capture.CaptureOutput{}, capture.ErrNoActionsParsed
	}

	uc.l.Infof(ctx, "Capture: %d actions parsed", len(actions))

	now := time.Now().In(uc.resolver.Location())
	records := make([]model.CaptureRecord, 0, len(actions))

	for _, action := range actions {
		record := model.CaptureRecord{
			ID:           uuid.NewString(),
			SourceText:   input.Text,
			Action:       action,
			CalendarLink: uc.tryCreateCalendarEvent(ctx, action),
			CapturedAt:   now,
		}

		uc.recent.Add(record.ID, record)
		records = append(records, record)

		uc.l.Infof(ctx, "Capture: recorded %q id=%s category=%s", action.Title, record.ID, action.Category)
	}

	return capture.CaptureOutput{
		Records:     records,
		ActionCount: len(records),
	}, nil
}

// tryCreateCalendarEvent exports an event-like action with a concrete start
// time. Returns the event HTML link, or empty string when export is disabled,
// not applicable, or failed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, action textrules.ParsedAction) string {
	if uc.calendar == nil {
		return ""
	}
	if !action.IsEvent || action.DueDate == nil || action.DueTime == nil {
		return ""
	}

	start := uc.eventStart(action)
	minutes := action.DurationMinutes
	if minutes <= 0 {
		minutes = 60
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    action.Title,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(minutes) * time.Minute),
		Timezone:   uc.resolver.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "Capture: calendar export failed for %q (non-fatal): %v", action.Title, err)
		return ""
	}

	return event.HtmlLink
}
