// Package summarize implements extractive summarization: it selects and
// reorders existing sentences under a character budget instead of
// generating new text. Scoring is a sum of small heuristics (position,
// length, keyword overlap, sentiment), which keeps the function total and
// deterministic.
package summarize

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hyperifyio/gosocial/internal/keywords"
)

// NoContent is returned for empty or whitespace-only input.
const NoContent = "No content available"

// DefaultMaxLength is the summary character budget used when callers pass
// a non-positive maximum.
const DefaultMaxLength = 150

// Ellipsis marks a truncated summary.
const Ellipsis = "..."

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// scoredSentence augments a sentence with its original position so the
// selected subset can be restored to source order after ranking.
type scoredSentence struct {
	index int
	text  string
	score float64
}

// Summarize reduces text to at most maxLength characters by scoring each
// sentence, greedily selecting the highest-scoring ones that fit the
// budget, and reassembling them in original order. It never fails: empty
// input yields NoContent, short input is returned unchanged, and anything
// else degrades to a truncated prefix ending in Ellipsis. Lengths are
// measured in runes.
func Summarize(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NoContent
	}
	if utf8.RuneCountInString(trimmed) <= maxLength {
		return trimmed
	}

	sentences := splitSentences(trimmed)
	if len(sentences) == 0 {
		return runePrefix(trimmed, maxLength) + Ellipsis
	}

	// The keyword list is shared across sentences, so compute it once over
	// the whole text.
	topKeywords := keywords.Top(trimmed)

	scored := make([]scoredSentence, 0, len(sentences))
	for i, sentence := range sentences {
		scored = append(scored, scoredSentence{
			index: i,
			text:  sentence,
			score: scoreSentence(sentence, i, len(sentences), topKeywords),
		})
	}

	// Rank by score only. The stable sort keeps encounter order on ties;
	// there is deliberately no secondary key.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Greedy accumulation under the budget. Raw sentence lengths only, no
	// separator accounting; the first sentence that would overflow halts
	// the pass.
	selected := make([]scoredSentence, 0, len(scored))
	currentLength := 0
	for _, s := range scored {
		n := utf8.RuneCountInString(s.text)
		if currentLength+n > maxLength {
			break
		}
		selected = append(selected, s)
		currentLength += n
	}

	// Restore source order before joining.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})

	parts := make([]string, 0, len(selected))
	for _, s := range selected {
		parts = append(parts, s.text)
	}
	summary := strings.Join(parts, " ")

	if utf8.RuneCountInString(summary) > maxLength {
		summary = truncateAtWordBoundary(summary, maxLength) + Ellipsis
	}
	if summary == "" {
		return runePrefix(trimmed, maxLength) + Ellipsis
	}
	return summary
}

// scoreSentence computes the additive heuristic score for the sentence at
// position i of n.
func scoreSentence(sentence string, i, n int, topKeywords []string) float64 {
	score := 0.0

	// First and last sentences carry the framing of the text.
	if i == 0 || i == n-1 {
		score += 2
	}

	// Prefer medium-length sentences.
	if wc := len(strings.Fields(sentence)); wc >= 10 && wc <= 30 {
		score++
	}

	// One bonus per keyword present, regardless of how often it repeats
	// inside the sentence.
	lower := strings.ToLower(sentence)
	for _, kw := range topKeywords {
		if strings.Contains(lower, kw) {
			score += 0.5
		}
	}

	if hasStrongSentiment(lower) {
		score++
	}
	return score
}

// splitSentences splits on runs of terminal punctuation. Abbreviations,
// decimals and quoted punctuation are not handled; this is a plain
// character-class split.
func splitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// truncateAtWordBoundary cuts s to at most n runes and drops any trailing
// partial word. When the prefix contains no space the whole prefix is kept.
func truncateAtWordBoundary(s string, n int) string {
	cut := runePrefix(s, n)
	if i := strings.LastIndex(cut, " "); i >= 0 {
		return cut[:i]
	}
	return cut
}
