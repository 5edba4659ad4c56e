// Package sentiment scores text with a rule-based lexicon. It counts
// positive and negative indicator words, folds in emoji and punctuation
// signals, and reports a label with a confidence estimate. There is no
// model behind it; the output is advisory and the function is total.
package sentiment

import (
	"math"
	"strings"
)

// Labels returned by Analyze.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

// Result holds the outcome of a sentiment pass over one text.
type Result struct {
	// Label is positive, negative or neutral.
	Label string `json:"label" yaml:"label"`
	// Score is (positive hits - negative hits) / word count. Unnormalized
	// and usually small; the sign is the meaningful part.
	Score float64 `json:"score" yaml:"score"`
	// Confidence is in [0,1], rounded to three decimals.
	Confidence float64 `json:"confidence" yaml:"confidence"`
	// PositiveHits and NegativeHits count lexicon words found in the text.
	PositiveHits int `json:"positiveHits" yaml:"positiveHits"`
	NegativeHits int `json:"negativeHits" yaml:"negativeHits"`
	// EmojiLabel and PunctuationLabel are secondary signals folded into
	// Confidence but reported separately for transparency.
	EmojiLabel       string `json:"emojiLabel" yaml:"emojiLabel"`
	PunctuationLabel string `json:"punctuationLabel" yaml:"punctuationLabel"`
}

// Analyze scores text against the default lexicon.
func Analyze(text string) Result {
	return defaultLexicon.Analyze(text)
}

// Analyze scores text against this lexicon. Matching is case-insensitive
// substring containment per lexicon word, so "loved" trips "love". Empty or
// whitespace-only input returns a neutral result with zero confidence.
func (l *Lexicon) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{
			Label:            Neutral,
			Score:            0.5,
			Confidence:       0,
			EmojiLabel:       Neutral,
			PunctuationLabel: Neutral,
		}
	}

	lower := strings.ToLower(text)
	positive := countHits(lower, l.Positive)
	negative := countHits(lower, l.Negative)

	totalWords := len(strings.Fields(lower))
	if totalWords < 1 {
		totalWords = 1
	}
	score := float64(positive-negative) / float64(totalWords)

	var label string
	var confidence float64
	switch {
	case positive > negative:
		label = Positive
		confidence = math.Min(float64(positive)/float64(totalWords)*10, 1.0)
	case negative > positive:
		label = Negative
		confidence = math.Min(float64(negative)/float64(totalWords)*10, 1.0)
	default:
		label = Neutral
		confidence = 0.5
	}

	emoji := emojiLabel(text)
	punct := punctuationLabel(text)

	// An agreeing emoji signal strengthens the call, a disagreeing one
	// weakens it.
	if emoji != Neutral {
		if emoji == label {
			confidence = math.Min(confidence*1.2, 1.0)
		} else {
			confidence *= 0.8
		}
	}

	return Result{
		Label:            label,
		Score:            score,
		Confidence:       round3(confidence),
		PositiveHits:     positive,
		NegativeHits:     negative,
		EmojiLabel:       emoji,
		PunctuationLabel: punct,
	}
}

// countHits counts how many lexicon words occur in the lower-cased text.
// Each lexicon word counts at most once.
func countHits(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// punctuationLabel reads excitement from exclamation marks and
// confusion or concern from question marks.
func punctuationLabel(text string) string {
	if strings.Count(text, "!") > 2 {
		return Positive
	}
	if strings.Count(text, "?") > 2 {
		return Negative
	}
	return Neutral
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
