package summarize

import "strings"

// Fixed word lists used only as a boolean boost signal during sentence
// scoring. They overlap with the sentiment package's lexicon but are
// intentionally independent: the summarizer does not care about polarity,
// only that a sentence carries strong wording.
var strongPositiveWords = []string{
	"amazing", "awesome", "great", "excellent", "fantastic", "wonderful",
	"love", "like", "enjoy", "happy", "excited", "perfect", "best",
	"good", "nice", "beautiful", "incredible", "outstanding", "brilliant",
}

var strongNegativeWords = []string{
	"terrible", "awful", "bad", "horrible", "hate", "dislike", "angry",
	"sad", "disappointed", "frustrated", "annoying", "worst", "boring",
	"stupid", "dumb", "ugly", "disgusting", "pathetic", "useless",
}

// hasStrongSentiment reports whether the already lower-cased sentence
// contains any strong positive or negative word as a substring.
func hasStrongSentiment(lowerSentence string) bool {
	for _, w := range strongPositiveWords {
		if strings.Contains(lowerSentence, w) {
			return true
		}
	}
	for _, w := range strongNegativeWords {
		if strings.Contains(lowerSentence, w) {
			return true
		}
	}
	return false
}
