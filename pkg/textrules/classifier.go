package textrules

import "strings"

// classifyCategory returns the category of the first matching tier, or
// CategoryTask when nothing matches.
func classifyCategory(lowered string) Category {
	for _, rule := range categoryRules {
		if containsAny(lowered, rule.keywords) {
			return rule.category
		}
	}
	return CategoryTask
}

// classifyPriority returns the priority of the first matching tier along with
// the keyword that matched, so the title cleaner can drop it. No match means
// PriorityNormal.
func classifyPriority(lowered string) (Priority, string) {
	for _, rule := range priorityRules {
		if kw := firstMatch(lowered, rule.keywords); kw != "" {
			return rule.priority, kw
		}
	}
	return PriorityNormal, ""
}

// detectEvent reports whether the sentence describes an event, either by
// category or by a standalone event cue. The cue list is checked even when a
// higher-precedence tier claimed the category, so "remind me about the
// meeting" is a reminder with IsEvent set.
func detectEvent(category Category, lowered string) bool {
	if category == CategoryEvent {
		return true
	}
	return containsAny(lowered, eventCues)
}

// detectDuration returns the minutes of the first matching duration phrase
// and the phrase itself, or (0, "").
func detectDuration(lowered string) (int, string) {
	for _, rule := range durationRules {
		if phrase := firstMatch(lowered, rule.phrases); phrase != "" {
			return rule.minutes, phrase
		}
	}
	return 0, ""
}

func containsAny(lowered string, keywords []string) bool {
	return firstMatch(lowered, keywords) != ""
}

func firstMatch(lowered string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return ""
}
