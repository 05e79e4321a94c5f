package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voicetask/internal/model"
	"voicetask/pkg/datemath"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/log"
	"voicetask/pkg/textrules"
)

const (
	defaultRecentSize = 100
	defaultRecentTTL  = 24 * time.Hour
)

// Config carries the optional collaborators of the capture use case.
type Config struct {
	// Calendar is the export target for timed events; nil disables export.
	Calendar   *gcalendar.Client
	CalendarID string

	// Recent-capture cache bounds. Zero values pick the defaults.
	RecentSize int
	RecentTTL  time.Duration
}

// implUseCase is the private implementation of capture.UseCase.
type implUseCase struct {
	l          log.Logger
	parser     *textrules.Parser
	resolver   *datemath.Resolver
	calendar   *gcalendar.Client
	calendarID string
	recent     *expirable.LRU[string, model.CaptureRecord]
}

// New creates the capture use case.
func New(l log.Logger, parser *textrules.Parser, resolver *datemath.Resolver, cfg Config) *implUseCase {
	size := cfg.RecentSize
	if size <= 0 {
		size = defaultRecentSize
	}
	ttl := cfg.RecentTTL
	if ttl <= 0 {
		ttl = defaultRecentTTL
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &implUseCase{
		l:          l,
		parser:     parser,
		resolver:   resolver,
		calendar:   cfg.Calendar,
		calendarID: calendarID,
		recent:     expirable.NewLRU[string, model.CaptureRecord](size, nil, ttl),
	}
}
