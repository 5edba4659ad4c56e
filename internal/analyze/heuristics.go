package analyze

import (
	"math"
	"strings"

	"github.com/hyperifyio/gosocial/internal/keywords"
	"github.com/hyperifyio/gosocial/internal/sentiment"
)

// Content quality labels.
const (
	QualityExcellent        = "Excellent"
	QualityGood             = "Good"
	QualityAverage          = "Average"
	QualityNeedsImprovement = "Needs Improvement"
)

// keyThemeCount caps how many themes a report lists per item.
const keyThemeCount = 5

// EngagementScore estimates audience engagement as the interaction rate
// over views, scaled to 0..100 and rounded to two decimals. Missing view
// counts are treated as one view so the score stays defined.
func EngagementScore(it Item) float64 {
	views := it.Views
	if views < 1 {
		views = 1
	}
	rate := float64(it.Likes+it.Comments+it.Shares) / float64(views)
	score := math.Min(rate*100, 100)
	return math.Round(score*100) / 100
}

// ContentQuality grades an item by how much usable data it carries plus an
// engagement bonus.
func ContentQuality(it Item) string {
	score := 0
	if strings.TrimSpace(it.Description) != "" {
		score += 30
	}
	if len(it.Hashtags) > 0 {
		score += 20
	}
	if strings.TrimSpace(it.MediaURL) != "" {
		score += 30
	}
	if EngagementScore(it) > 10 {
		score += 20
	}
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	case score >= 40:
		return QualityAverage
	default:
		return QualityNeedsImprovement
	}
}

// EmotionalTone maps a sentiment result onto a reporting vocabulary. The
// stronger tones need a score beyond 0.8, which in practice requires a
// short text saturated with indicator words.
func EmotionalTone(res sentiment.Result) string {
	switch res.Label {
	case sentiment.Positive:
		if res.Score > 0.8 {
			return "optimistic"
		}
		return "positive"
	case sentiment.Negative:
		if res.Score < -0.8 {
			return "critical"
		}
		return "negative"
	default:
		return "neutral"
	}
}

// KeyThemes extracts the dominant content words of the text.
func KeyThemes(text string) []string {
	return keywords.Extract(text, keyThemeCount)
}

// PredictEngagement gives a coarse expectation from the engagement rate
// and the sentiment label.
func PredictEngagement(it Item, res sentiment.Result) string {
	score := EngagementScore(it)
	switch {
	case score > 15 && res.Label != sentiment.Negative:
		return "High engagement expected"
	case score > 5 && res.Label != sentiment.Negative:
		return "Moderate engagement expected"
	default:
		return "Low engagement expected"
	}
}

// Recommendations suggests up to three concrete improvements for an item.
func Recommendations(it Item, res sentiment.Result) []string {
	var recs []string
	if strings.TrimSpace(it.Description) == "" {
		recs = append(recs, "Add a descriptive caption to improve engagement")
	}
	if len(it.Hashtags) == 0 {
		recs = append(recs, "Use relevant hashtags to increase discoverability")
	}
	if res.Label == sentiment.Negative {
		recs = append(recs, "Consider adjusting tone to be more positive for better engagement")
	}
	if EngagementScore(it) < 5 {
		recs = append(recs, "Low engagement detected - consider posting at optimal times")
	}
	if len(recs) == 0 {
		recs = append(recs, "Content looks good - keep up the great work!")
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
