package wordlist

import (
	"strings"
	"unicode/utf8"
)

// FilterFunc reports whether a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns the filter for a list language. Unknown languages
// keep everything.
func FilterForLang(lang string) FilterFunc {
	if strings.EqualFold(lang, "en") {
		return lowerASCII
	}
	return func(string) bool { return true }
}

// ByLength keeps words of exactly n runes.
func ByLength(n int) FilterFunc {
	return func(word string) bool { return utf8.RuneCountInString(word) == n }
}

// Keep returns the words every filter accepts.
func Keep(words []string, filters ...FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if accepts(word, filters) {
			out = append(out, word)
		}
	}
	return out
}

func accepts(word string, filters []FilterFunc) bool {
	for _, f := range filters {
		if !f(word) {
			return false
		}
	}
	return true
}

func lowerASCII(word string) bool {
	if word == "" {
		return false
	}
	return strings.IndexFunc(word, func(r rune) bool { return r < 'a' || r > 'z' }) < 0
}
