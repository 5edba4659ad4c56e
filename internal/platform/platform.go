// Package platform classifies social and media URLs by provider. Detection
// is pattern-based: per-platform URL regexes first, then a bare-domain
// fallback, and anything unrecognizable degrades to Unknown rather than an
// error.
package platform

// Type identifies a supported platform.
type Type string

// Supported platform types. Unknown is the catch-all for URLs that match
// no pattern and no known domain.
const (
	YouTube     Type = "youtube"
	Instagram   Type = "instagram"
	TikTok      Type = "tiktok"
	Twitter     Type = "twitter"
	Facebook    Type = "facebook"
	LinkedIn    Type = "linkedin"
	Snapchat    Type = "snapchat"
	Pinterest   Type = "pinterest"
	Reddit      Type = "reddit"
	Twitch      Type = "twitch"
	Discord     Type = "discord"
	Telegram    Type = "telegram"
	WhatsApp    Type = "whatsapp"
	Vimeo       Type = "vimeo"
	Dailymotion Type = "dailymotion"
	Unknown     Type = "unknown"
)

// Confidence levels reported by Info.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Info describes a detected platform in more detail than the bare Type.
type Info struct {
	Platform    Type   `json:"platform" yaml:"platform"`
	Confidence  string `json:"confidence" yaml:"confidence"`
	URLType     string `json:"urlType" yaml:"urlType"`
	Description string `json:"description" yaml:"description"`
}

// Detection is the per-URL result of a batch pass.
type Detection struct {
	URL       string `json:"url" yaml:"url"`
	Platform  Type   `json:"platform" yaml:"platform"`
	Supported bool   `json:"supported" yaml:"supported"`
}

// BatchResult aggregates a batch detection pass.
type BatchResult struct {
	Results  []Detection `json:"results" yaml:"results"`
	Total    int         `json:"total" yaml:"total"`
	Detected int         `json:"detected" yaml:"detected"`
	Unknown  int         `json:"unknown" yaml:"unknown"`
}
