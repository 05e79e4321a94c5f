package capture

import (
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/textrules"
)

// ParseInput is the input for parse-only requests.
type ParseInput struct {
	Text string
	// ReferenceNow anchors relative date cues. Zero value means "now" in the
	// service timezone.
	ReferenceNow time.Time
}

// ParseOutput holds the parsed actions in original text order.
type ParseOutput struct {
	Actions []textrules.ParsedAction
}

// CaptureInput is the input for parse-and-capture requests.
type CaptureInput struct {
	Text         string
	ReferenceNow time.Time
}

// CaptureOutput is the result of a capture: one record per parsed action.
type CaptureOutput struct {
	Records     []model.CaptureRecord
	ActionCount int
}

// RecentOutput lists the capture records still held in the recent cache,
// newest first.
type RecentOutput struct {
	Records []model.CaptureRecord
}
