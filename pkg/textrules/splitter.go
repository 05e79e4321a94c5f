package textrules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// separators mark sentence boundaries in transcribed speech: sentence
// punctuation plus the spoken connectives people use to chain items.
// Applied successively, not as one combined pattern.
var separators = []string{
	".", "\n",
	" y también ", " y tambien ",
	" además ", " ademas ",
	" luego ", " después ", " despues ",
}

// Fragments at or below this rune count are transcription noise.
const minFragmentRunes = 3

// splitSentences breaks an utterance into trimmed sentence fragments in
// original order. Connective separators match case-insensitively while the
// fragments keep their original casing for later title cleanup.
func splitSentences(text string) []string {
	fragments := []string{text}

	for _, sep := range separators {
		var next []string
		for _, fragment := range fragments {
			next = append(next, splitFold(fragment, sep)...)
		}
		fragments = next
	}

	out := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) <= minFragmentRunes {
			continue
		}
		out = append(out, fragment)
	}
	return out
}

// splitFold splits s on sep, matching sep case-insensitively.
func splitFold(s, sep string) []string {
	var parts []string
	for {
		start, end := indexFold(s, sep)
		if start < 0 {
			parts = append(parts, s)
			return parts
		}
		parts = append(parts, s[:start])
		s = s[end:]
	}
}

// indexFold reports the byte range [start, end) of the first case-insensitive
// occurrence of needle in s, or (-1, -1). The search compares rune by rune so
// the returned offsets are always valid in s, even when lowercasing a rune
// changes its encoded length (e.g. İ U+0130 lowers to a 1-byte i).
func indexFold(s, needle string) (int, int) {
	for start := 0; start < len(s); {
		if n := foldPrefixEnd(s[start:], needle); n >= 0 {
			return start, start + n
		}
		_, width := utf8.DecodeRuneInString(s[start:])
		start += width
	}
	return -1, -1
}

// foldPrefixEnd reports the byte length of the leading case-insensitive match
// of prefix in s, or -1 when s does not start with prefix.
func foldPrefixEnd(s, prefix string) int {
	pos := 0
	for _, want := range prefix {
		r, width := utf8.DecodeRuneInString(s[pos:])
		if width == 0 || unicode.ToLower(r) != unicode.ToLower(want) {
			return -1
		}
		pos += width
	}
	return pos
}
