package catalog

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength excludes tokens of 2 characters or fewer; they carry no
// discriminative search value.
const minTokenLength = 3

// Tokenize lowercases the text, splits it on any run of characters that
// is neither a letter nor a digit, and discards short tokens and
// stopwords. Duplicates are preserved by the split; callers that need a
// set use TokenSet.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	words := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < minTokenLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// TokenSet unions the token sets of title and description into a sorted,
// de-duplicated slice. The search index stores exactly one row per
// (token, product) pair, so the set law here bounds the write fan-out.
func TokenSet(title, description string) []string {
	seen := make(map[string]struct{})
	for _, t := range Tokenize(title) {
		seen[t] = struct{}{}
	}
	for _, t := range Tokenize(description) {
		seen[t] = struct{}{}
	}

	tokens := make([]string, 0, len(seen))
	for t := range seen {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// IsStopword reports whether the word is in the fixed stopword set
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}
