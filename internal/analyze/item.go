package analyze

import "strings"

// Item is one piece of social content to analyze: the link plus whatever
// metadata and engagement counts the caller has. All fields are optional;
// the analysis degrades gracefully with less data.
type Item struct {
	URL         string   `yaml:"url" json:"url"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Hashtags    []string `yaml:"hashtags" json:"hashtags"`
	MediaURL    string   `yaml:"mediaURL" json:"mediaURL"`
	// Snapshot points at a saved HTML page for this item; when set, the
	// pipeline extracts its text and folds it into the analysis input.
	Snapshot string `yaml:"snapshot" json:"snapshot"`

	Likes    int `yaml:"likes" json:"likes"`
	Comments int `yaml:"comments" json:"comments"`
	Shares   int `yaml:"shares" json:"shares"`
	Views    int `yaml:"views" json:"views"`

	// Extra holds text merged in from a snapshot or other side channel.
	// It participates in analysis but is not part of the declared item.
	Extra string `yaml:"-" json:"-"`
}

// TextContent joins the item's textual fields into the single string the
// analyzers operate on.
func (it Item) TextContent() string {
	parts := make([]string, 0, 4)
	if strings.TrimSpace(it.Title) != "" {
		parts = append(parts, it.Title)
	}
	if strings.TrimSpace(it.Description) != "" {
		parts = append(parts, it.Description)
	}
	for _, h := range it.Hashtags {
		if strings.TrimSpace(h) != "" {
			parts = append(parts, h)
		}
	}
	if strings.TrimSpace(it.Extra) != "" {
		parts = append(parts, it.Extra)
	}
	return strings.Join(parts, " ")
}
