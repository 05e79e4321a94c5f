package model

import (
	"time"

	"voicetask/pkg/textrules"
)

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// CaptureRecord is one parsed action accepted through the capture endpoint.
// Records live in the bounded recent-capture cache only; durable storage
// belongs to downstream consumers.
type CaptureRecord struct {
	ID           string
	SourceText   string // the full utterance the record was parsed from
	Action       textrules.ParsedAction
	CalendarLink string // deep link to the exported calendar event, may be empty
	CapturedAt   time.Time
}
