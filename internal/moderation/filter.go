// Package moderation rewrites user-supplied text before it is stored,
// replacing forbidden words with a fixed placeholder token.
package moderation

import "strings"

// Replacement is the token substituted for every forbidden word.
const Replacement = "[censored]"

// DefaultForbiddenWords is the stock word list. Order matters: words are
// applied in list order, so "job" claims its occurrences before the
// "job application" phrase is ever scanned.
var DefaultForbiddenWords = []string{
	"darn", "heck", "badword", "crap", "poop", "stupid",
	"job", "employment", "job application",
}

// Filter censors text against a fixed, ordered word list. It holds no
// mutable state and is safe for concurrent use.
type Filter struct {
	words []string
}

// NewFilter builds a filter over the given words. Pass
// DefaultForbiddenWords for the stock list.
func NewFilter(words []string) *Filter {
	return &Filter{words: words}
}

// Moderate replaces every occurrence of each forbidden word, ignoring case.
// Matching is substring-based, so a forbidden word inside a longer word is
// censored too. Each word is matched against the text as rewritten by the
// words before it, which also catches words only assembled by an earlier
// replacement's leftover fragments.
func (f *Filter) Moderate(text string) string {
	for _, word := range f.words {
		text = replaceFold(text, word, Replacement)
	}
	return text
}

// replaceFold is a case-insensitive strings.ReplaceAll. Folding is
// ASCII-only, which covers the word lists this filter is used with and
// keeps byte offsets stable in the original text.
func replaceFold(s, old, replacement string) string {
	if old == "" {
		return s
	}
	lower := lowerASCII(s)
	oldLower := lowerASCII(old)

	var out []byte
	for {
		i := strings.Index(lower, oldLower)
		if i < 0 {
			break
		}
		out = append(out, s[:i]...)
		out = append(out, replacement...)
		s = s[i+len(old):]
		lower = lower[i+len(oldLower):]
	}
	if out == nil {
		return s
	}
	return string(append(out, s...))
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
