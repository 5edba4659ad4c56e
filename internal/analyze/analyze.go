// Package analyze combines the summarizer, sentiment scorer, platform
// resolver and optional embedding backend into per-item content analyses.
// Everything except the embedding call is pure computation; a batch run
// records per-item failures instead of aborting.
package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosocial/internal/embedding"
	"github.com/hyperifyio/gosocial/internal/platform"
	"github.com/hyperifyio/gosocial/internal/sentiment"
	"github.com/hyperifyio/gosocial/internal/summarize"
)

// Depth selects how much work Analyze does per item.
type Depth string

const (
	// DepthBasic computes platform, engagement and quality only.
	DepthBasic Depth = "basic"
	// DepthSentiment adds sentiment and emotional tone.
	DepthSentiment Depth = "sentiment"
	// DepthComprehensive adds summary, themes, prediction,
	// recommendations and the optional embedding.
	DepthComprehensive Depth = "comprehensive"
)

// ParseDepth maps a user-supplied string onto a Depth, defaulting to
// comprehensive for anything unrecognized.
func ParseDepth(s string) Depth {
	switch Depth(s) {
	case DepthBasic, DepthSentiment, DepthComprehensive:
		return Depth(s)
	default:
		return DepthComprehensive
	}
}

// Analysis is the result of analyzing one item.
type Analysis struct {
	URL             string           `json:"url" yaml:"url"`
	Platform        platform.Info    `json:"platform" yaml:"platform"`
	EngagementScore float64          `json:"engagementScore" yaml:"engagementScore"`
	ContentQuality  string           `json:"contentQuality" yaml:"contentQuality"`
	Timestamp       time.Time        `json:"timestamp" yaml:"timestamp"`
	Sentiment       sentiment.Result `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	EmotionalTone   string           `json:"emotionalTone,omitempty" yaml:"emotionalTone,omitempty"`
	Summary         string           `json:"summary,omitempty" yaml:"summary,omitempty"`
	KeyThemes       []string         `json:"keyThemes,omitempty" yaml:"keyThemes,omitempty"`
	Prediction      string           `json:"prediction,omitempty" yaml:"prediction,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Embedding       []float32        `json:"-" yaml:"-"`
	// Error records a per-item failure during a batch run. The rest of
	// the analysis up to the failing step is still populated.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Analyzer holds the collaborators for an analysis run. The zero value is
// usable: it resolves platforms with the default tables, scores sentiment
// with the default lexicon, and skips embeddings.
type Analyzer struct {
	// Resolver overrides the default platform resolver.
	Resolver *platform.Resolver
	// Lexicon overrides the default sentiment word lists.
	Lexicon *sentiment.Lexicon
	// Embedder, when set, supplies a vector per item at comprehensive
	// depth.
	Embedder embedding.Embedder
	// SummaryLength is the summary character budget. Non-positive uses
	// the summarizer default.
	SummaryLength int
}

// Analyze runs one item through the configured depth. The only error
// source is the embedding backend; every heuristic is total.
func (a *Analyzer) Analyze(ctx context.Context, it Item, depth Depth) (Analysis, error) {
	res := Analysis{
		URL:             it.URL,
		Platform:        a.platformInfo(it.URL),
		EngagementScore: EngagementScore(it),
		ContentQuality:  ContentQuality(it),
		Timestamp:       time.Now().UTC(),
	}
	if depth == DepthBasic {
		return res, nil
	}

	text := it.TextContent()
	res.Sentiment = a.analyzeSentiment(text)
	res.EmotionalTone = EmotionalTone(res.Sentiment)
	if depth == DepthSentiment {
		return res, nil
	}

	res.Summary = summarize.Summarize(text, a.SummaryLength)
	res.KeyThemes = KeyThemes(text)
	res.Prediction = PredictEngagement(it, res.Sentiment)
	res.Recommendations = Recommendations(it, res.Sentiment)

	if a.Embedder != nil {
		vec, err := a.Embedder.Embed(ctx, text)
		if err != nil {
			return res, fmt.Errorf("embed %s: %w", it.URL, err)
		}
		res.Embedding = vec
	}
	return res, nil
}

// AnalyzeBatch analyzes items in order. A failing item keeps its partial
// analysis with Error set; the batch always completes.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, items []Item, depth Depth) []Analysis {
	out := make([]Analysis, 0, len(items))
	for _, it := range items {
		res, err := a.Analyze(ctx, it, depth)
		if err != nil {
			log.Warn().Str("url", it.URL).Err(err).Msg("item analysis failed")
			res.Error = err.Error()
		}
		out = append(out, res)
	}
	return out
}

func (a *Analyzer) platformInfo(url string) platform.Info {
	if a.Resolver != nil {
		return a.Resolver.Info(url)
	}
	return platform.GetInfo(url)
}

func (a *Analyzer) analyzeSentiment(text string) sentiment.Result {
	if a.Lexicon != nil {
		return a.Lexicon.Analyze(text)
	}
	return sentiment.Analyze(text)
}
