package sentiment

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Lexicon is a pair of indicator word lists. The default lists cover
// everyday social-media wording; deployments with domain vocabulary can
// load their own lists from a YAML file.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

var defaultLexicon = &Lexicon{
	Positive: []string{
		"amazing", "awesome", "great", "excellent", "fantastic", "wonderful",
		"love", "like", "enjoy", "happy", "excited", "perfect", "best",
		"good", "nice", "beautiful", "incredible", "outstanding", "brilliant",
		"fun", "funny", "laugh", "smile", "joy", "blessed", "grateful",
	},
	Negative: []string{
		"terrible", "awful", "bad", "horrible", "hate", "dislike", "angry",
		"sad", "disappointed", "frustrated", "annoying", "worst", "boring",
		"stupid", "dumb", "ugly", "disgusting", "pathetic", "useless",
		"fail", "failure", "problem", "issue", "concern", "worry",
	},
}

// DefaultLexicon returns a copy of the built-in word lists so callers can
// extend them without mutating package state.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Positive: append([]string(nil), defaultLexicon.Positive...),
		Negative: append([]string(nil), defaultLexicon.Negative...),
	}
}

// LoadLexicon reads a YAML file with `positive:` and `negative:` word
// lists. Either list may be omitted; the default list fills the gap.
func LoadLexicon(path string) (*Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var lex Lexicon
	if err := yaml.Unmarshal(b, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	if len(lex.Positive) == 0 {
		lex.Positive = append([]string(nil), defaultLexicon.Positive...)
	}
	if len(lex.Negative) == 0 {
		lex.Negative = append([]string(nil), defaultLexicon.Negative...)
	}
	normalize(lex.Positive)
	normalize(lex.Negative)
	return &lex, nil
}

func normalize(words []string) {
	for i, w := range words {
		words[i] = strings.ToLower(strings.TrimSpace(w))
	}
}
