package textrules

import (
	"strings"
	"unicode"
)

// cleanTitle turns an original-case sentence into a display title: recognized
// cue phrases (dates, times, priority, duration) are removed, one leading
// filler phrase is stripped, whitespace is collapsed, and the first letter is
// capitalized. Everything else keeps its original casing.
func cleanTitle(sentence string, cuePhrases []string) string {
	title := sentence
	for _, phrase := range cuePhrases {
		title = removeFold(title, phrase)
	}
	title = strings.Join(strings.Fields(title), " ")
	title = stripFillerPrefix(title)
	title = strings.Trim(title, " ,;:-")
	return capitalize(title)
}

// removeFold removes the first case-insensitive occurrence of phrase,
// leaving a space so surrounding words do not merge.
func removeFold(s, phrase string) string {
	if phrase == "" {
		return s
	}
	start, end := indexFold(s, phrase)
	if start < 0 {
		return s
	}
	return s[:start] + " " + s[end:]
}

// stripFillerPrefix drops the first filler phrase the sentence starts with.
// List order decides which one; at most one prefix is removed.
func stripFillerPrefix(s string) string {
	for _, prefix := range fillerPrefixes {
		if end := foldPrefixEnd(s, prefix); end >= 0 {
			return strings.TrimSpace(s[end:])
		}
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
