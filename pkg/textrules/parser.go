// Package textrules converts free-form transcribed utterances (informal
// Spanish and English speech) into structured action records. The pipeline is
// a fixed chain of pure stages over each detected sentence: split → category →
// date/time → priority → event/duration → title cleanup. Every stage has a
// default-producing fallback, so parsing never fails; noisy input just yields
// fewer or plainer records.
package textrules

import (
	"strings"
	"time"

	"voicetask/pkg/datemath"
)

// Parser is a stateless parsing pipeline. It is safe for concurrent use.
type Parser struct {
	resolver *datemath.Resolver
}

// New creates a parser that resolves date cues with the given resolver.
func New(resolver *datemath.Resolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse extracts one ParsedAction per detected sentence, in original text
// order. referenceNow anchors all relative date cues; callers pass the
// current time in production and a pinned instant in tests.
func (p *Parser) Parse(text string, referenceNow time.Time) []ParsedAction {
	sentences := splitSentences(text)

	actions := make([]ParsedAction, 0, len(sentences))
	for _, sentence := range sentences {
		lowered := strings.ToLower(sentence)

		category := classifyCategory(lowered)
		extraction := p.resolver.Extract(lowered, referenceNow)
		priority, priorityCue := classifyPriority(lowered)
		minutes, durationCue := detectDuration(lowered)

		cues := append([]string{}, extraction.Matched...)
		if priorityCue != "" {
			cues = append(cues, priorityCue)
		}
		if durationCue != "" {
			cues = append(cues, durationCue)
		}

		title := cleanTitle(sentence, cues)
		if title == "" {
			// The sentence was nothing but cue phrases.
			continue
		}

		actions = append(actions, ParsedAction{
			Title:           title,
			Category:        category,
			DueDate:         extraction.Date,
			DueTime:         extraction.Time,
			Priority:        priority,
			IsEvent:         detectEvent(category, lowered),
			DurationMinutes: minutes,
		})
	}

	return actions
}
