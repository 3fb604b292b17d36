package bot

import (
	"strings"
	"unicode/utf8"
)

// minTokenLen filters out particles and other short noise words.
const minTokenLen = 3

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '.', ';', ':', '!', '?', '(', ')':
		return true
	}
	return false
}

// Tokenize lowercases text and splits it on whitespace and punctuation,
// dropping tokens shorter than minTokenLen runes. An empty result is valid:
// the caller falls back to matching the whole query as a single group.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLen {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
