package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperifyio/gosocial/internal/analyze"
	"github.com/hyperifyio/gosocial/internal/embedding"
)

// RenderReport produces the Markdown report for a batch of analyses. The
// layout is deliberately flat: one section per item in input order, plus a
// related-content section when embeddings were computed.
func RenderReport(analyses []analyze.Analysis, depth analyze.Depth, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Content analysis report\n\n")
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Analyzed %d item(s) at %s depth.\n\n", len(analyses), depth)

	for i, a := range analyses {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, itemHeading(a))
		fmt.Fprintf(&b, "- URL: %s\n", a.URL)
		fmt.Fprintf(&b, "- Platform: %s (%s, %s confidence, %s)\n",
			a.Platform.Platform, a.Platform.Description, a.Platform.Confidence, a.Platform.URLType)
		fmt.Fprintf(&b, "- Engagement: %.2f/100, quality: %s\n", a.EngagementScore, a.ContentQuality)

		if a.Sentiment.Label != "" {
			fmt.Fprintf(&b, "- Sentiment: %s (confidence %.3f), tone: %s\n",
				a.Sentiment.Label, a.Sentiment.Confidence, a.EmotionalTone)
		}
		if a.Prediction != "" {
			fmt.Fprintf(&b, "- Prediction: %s\n", a.Prediction)
		}
		if len(a.KeyThemes) > 0 {
			fmt.Fprintf(&b, "- Key themes: %s\n", strings.Join(a.KeyThemes, ", "))
		}
		if a.Error != "" {
			fmt.Fprintf(&b, "- Note: analysis incomplete: %s\n", a.Error)
		}
		b.WriteString("\n")

		if a.Summary != "" {
			fmt.Fprintf(&b, "> %s\n\n", a.Summary)
		}
		if len(a.Recommendations) > 0 {
			b.WriteString("Recommendations:\n\n")
			for _, rec := range a.Recommendations {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
			b.WriteString("\n")
		}
	}

	if related := relatedContent(analyses); len(related) > 0 {
		b.WriteString("## Related content\n\n")
		for _, line := range related {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func itemHeading(a analyze.Analysis) string {
	if u := strings.TrimSpace(a.URL); u != "" {
		return u
	}
	return "(no URL)"
}

// relatedContent pairs each embedded item with its nearest neighbor by
// cosine similarity. Items without vectors are left out.
func relatedContent(analyses []analyze.Analysis) []string {
	vectors := make([][]float32, len(analyses))
	any := false
	for i, a := range analyses {
		vectors[i] = a.Embedding
		if len(a.Embedding) > 0 {
			any = true
		}
	}
	if !any {
		return nil
	}

	var out []string
	for i, a := range analyses {
		if len(a.Embedding) == 0 {
			continue
		}
		// Mask the item itself so MostSimilar only sees the others.
		candidates := make([][]float32, len(vectors))
		copy(candidates, vectors)
		candidates[i] = nil
		j, sim := embedding.MostSimilar(a.Embedding, candidates)
		if j < 0 {
			continue
		}
		out = append(out, fmt.Sprintf("item %d is closest to item %d (similarity %.3f)", i+1, j+1, sim))
	}
	return out
}
