package http

import (
	"fmt"

	"voicetask/internal/capture"
	"voicetask/internal/model"
	"voicetask/pkg/response"
	"voicetask/pkg/textrules"
)

// --- Response DTOs ---

type actionResp struct {
	Title           string         `json:"title"`
	Category        string         `json:"category"`
	DueDate         *response.Date `json:"due_date,omitempty"`
	DueTime         string         `json:"due_time,omitempty"` // "HH:MM"
	Priority        string         `json:"priority"`
	IsEvent         bool           `json:"is_event"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
}

func newActionResp(action textrules.ParsedAction) actionResp {
	resp := actionResp{
		Title:           action.Title,
		Category:        string(action.Category),
		Priority:        string(action.Priority),
		IsEvent:         action.IsEvent,
		DurationMinutes: action.DurationMinutes,
	}
	if action.DueDate != nil {
		d := response.Date(*action.DueDate)
		resp.DueDate = &d
	}
	if action.DueTime != nil {
		resp.DueTime = fmt.Sprintf("%02d:%02d", action.DueTime.Hour, action.DueTime.Minute)
	}
	return resp
}

type parseResp struct {
	Actions []actionResp `json:"actions"`
	Count   int          `json:"count"`
}

func (h *handler) newParseResp(out capture.ParseOutput) parseResp {
	actions := make([]actionResp, len(out.Actions))
	for i, action := range out.Actions {
		actions[i] = newActionResp(action)
	}
	return parseResp{Actions: actions, Count: len(actions)}
}

type recordResp struct {
	ID           string            `json:"id"`
	Action       actionResp        `json:"action"`
	CalendarLink string            `json:"calendar_link,omitempty"`
	CapturedAt   response.DateTime `json:"captured_at"`
}

func newRecordResp(record model.CaptureRecord) recordResp {
	return recordResp{
		ID:           record.ID,
		Action:       newActionResp(record.Action),
		CalendarLink: record.CalendarLink,
		CapturedAt:   response.DateTime(record.CapturedAt),
	}
}

type captureResp struct {
	Records []recordResp `json:"records"`
	Count   int          `json:"count"`
}

func (h *handler) newCaptureResp(out capture.CaptureOutput) captureResp {
	records := make([]recordResp, len(out.Records))
	for i, record := range out.Records {
		records[i] = newRecordResp(record)
	}
	return captureResp{Records: records, Count: out.ActionCount}
}

type recentResp struct {
	Records []recordResp `json:"records"`
	Count   int          `json:"count"`
}

func (h *handler) newRecentResp(out capture.RecentOutput) recentResp {
	records := make([]recordResp, len(out.Records))
	for i, record := range out.Records {
		records[i] = newRecordResp(record)
	}
	return recentResp{Records: records, Count: len(records)}
}
