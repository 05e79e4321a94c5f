package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver extracts relative date cues and clock times from transcribed
// sentences and resolves them against an explicit reference time.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Europe/Madrid".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// dateRule maps a group of cue phrases to a date offset from the reference day.
// Rules are scanned in order and the first phrase found in the sentence wins,
// so more specific phrases ("pasado mañana") sit above their substrings
// ("mañana").
type dateRule struct {
	cues    []string
	resolve func(day time.Time) time.Time
}

func plusDays(n int) func(time.Time) time.Time {
	return func(day time.Time) time.Time { return day.AddDate(0, 0, n) }
}

// nextWeekday returns the next occurrence of wd strictly after the reference
// day. Saying "monday" on a Monday always means a week out, never today.
func nextWeekday(wd time.Weekday) func(time.Time) time.Time {
	return func(day time.Time) time.Time {
		until := (int(wd) - int(day.Weekday()) + 7) % 7
		if until == 0 {
			until = 7
		}
		return day.AddDate(0, 0, until)
	}
}

var dateRules = []dateRule{
	{cues: []string{"pasado mañana", "pasado manana", "day after tomorrow"}, resolve: plusDays(2)},
	{cues: []string{"hoy", "today"}, resolve: plusDays(0)},
	{cues: []string{"mañana", "manana", "tomorrow"}, resolve: plusDays(1)},
	{cues: []string{"lunes", "monday"}, resolve: nextWeekday(time.Monday)},
	{cues: []string{"martes", "tuesday"}, resolve: nextWeekday(time.Tuesday)},
	{cues: []string{"miércoles", "miercoles", "wednesday"}, resolve: nextWeekday(time.Wednesday)},
	{cues: []string{"jueves", "thursday"}, resolve: nextWeekday(time.Thursday)},
	{cues: []string{"viernes", "friday"}, resolve: nextWeekday(time.Friday)},
	{cues: []string{"próxima semana", "proxima semana", "next week"}, resolve: plusDays(7)},
	{cues: []string{"próximo mes", "proximo mes", "next month"}, resolve: func(day time.Time) time.Time {
		return day.AddDate(0, 1, 0)
	}},
}

// articles may directly precede a date cue ("el lunes", "next monday") and are
// folded into the matched phrase so display-text cleanup removes them too.
var articles = []string{"el próximo ", "el proximo ", "next ", "this ", "los ", "el ", "la ", "on "}

var (
	// "a las 3", "at 5", optionally with minutes ("a las 3:30").
	shortHourRe = regexp.MustCompile(`\b(?:a las|at)\s+(\d{1,2})(?::(\d{2}))?\b`)
	// Bare "H:MM", only consulted when the phrase form above is absent.
	clockRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// Extract finds at most one date cue and at most one time cue in the sentence.
// Matching is case-insensitive. A time cue without a date cue defaults the
// date to the reference day. Unrecognized or out-of-range values never error;
// the corresponding field is simply left nil.
func (r *Resolver) Extract(sentence string, referenceNow time.Time) Extraction {
	lowered := strings.ToLower(sentence)
	day := r.startOfDay(referenceNow)

	var out Extraction

	for _, rule := range dateRules {
		if cue, at := findCue(lowered, rule.cues); at >= 0 {
			d := rule.resolve(day)
			out.Date = &d
			out.Matched = append(out.Matched, withArticle(lowered, at, cue))
			break
		}
	}

	tod, phrase := extractTime(lowered)
	if tod != nil {
		out.Time = tod
		out.Matched = append(out.Matched, phrase)
		if out.Date == nil {
			out.Date = &day
		}
	}

	return out
}

// Location returns the resolver's timezone location.
func (r *Resolver) Location() *time.Location {
	return r.location
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// findCue returns the first phrase from cues present in the sentence and its
// byte offset, or ("", -1).
func findCue(lowered string, cues []string) (string, int) {
	for _, cue := range cues {
		if at := strings.Index(lowered, cue); at >= 0 {
			return cue, at
		}
	}
	return "", -1
}

// withArticle widens the matched span to include a directly preceding article.
func withArticle(lowered string, at int, cue string) string {
	for _, art := range articles {
		if at >= len(art) && lowered[at-len(art):at] == art {
			return lowered[at-len(art) : at+len(cue)]
		}
	}
	return cue
}

// extractTime applies the two time patterns in fixed order. The colloquial
// short-hour convention maps 1-7 to the afternoon: "a las 3" means 15:00.
// Genuinely ambiguous early-morning phrases are resolved the same way on
// purpose; see the package tests.
func extractTime(lowered string) (*TimeOfDay, string) {
	if idx := shortHourRe.FindStringSubmatchIndex(lowered); idx != nil {
		hour, _ := strconv.Atoi(lowered[idx[2]:idx[3]])
		minute := 0
		if idx[4] >= 0 {
			minute, _ = strconv.Atoi(lowered[idx[4]:idx[5]])
		}
		if hour >= 1 && hour <= 7 {
			hour += 12
		}
		if hour > 23 || minute > 59 {
			return nil, ""
		}
		return &TimeOfDay{Hour: hour, Minute: minute}, lowered[idx[0]:idx[1]]
	}

	if idx := clockRe.FindStringSubmatchIndex(lowered); idx != nil {
		hour, _ := strconv.Atoi(lowered[idx[2]:idx[3]])
		minute, _ := strconv.Atoi(lowered[idx[4]:idx[5]])
		if hour > 23 || minute > 59 {
			return nil, ""
		}
		return &TimeOfDay{Hour: hour, Minute: minute}, lowered[idx[0]:idx[1]]
	}

	return nil, ""
}
