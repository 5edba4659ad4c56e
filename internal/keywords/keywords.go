// Package keywords extracts high-frequency content words from raw text.
// It is deliberately simple: no stemming, no TF-IDF, just stop-word
// filtering and frequency ranking, which is enough signal for sentence
// scoring and theme reporting.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// TopKeywords is the default number of keywords returned by Top.
const TopKeywords = 10

// stopWords is a fixed set of common English function words excluded from
// keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {}, "my": {},
	"your": {}, "his": {}, "its": {}, "our": {}, "their": {},
}

// Extract returns up to limit keywords from text, ranked by descending
// frequency. Tokens are lower-cased alphanumeric runs; stop words and words
// of length three or less are dropped. Ties keep first-encountered order,
// so the ranking is deterministic for a given input.
func Extract(text string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	counts := map[string]int{}
	order := map[string]int{}
	next := 0
	for _, word := range tokenize(strings.ToLower(text)) {
		if len(word) <= 3 {
			continue
		}
		if _, ok := stopWords[word]; ok {
			continue
		}
		if _, seen := counts[word]; !seen {
			order[word] = next
			next++
		}
		counts[word]++
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]string, 0, len(counts))
	for word := range counts {
		ranked = append(ranked, word)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return order[ranked[i]] < order[ranked[j]]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Top returns the top ten keywords of text.
func Top(text string) []string {
	return Extract(text, TopKeywords)
}

// tokenize splits text into maximal alphanumeric runs, the word-boundary
// behavior of a \b\w+\b match.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
