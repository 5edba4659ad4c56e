package platform

// defaultPatterns maps each platform to the URL shapes it is known by.
// Order matters: platforms are tried in this order and the first match
// wins, so the more specific services come before catch-all video hosts.
// Patterns are matched case-insensitively against the normalized URL.
var defaultPatterns = []patternSet{
	{YouTube, []string{
		`youtube\.com/watch\?v=`,
		`youtube\.com/embed/`,
		`youtube\.com/v/`,
		`youtube\.com/shorts/`,
		`youtube\.com/channel/`,
		`youtube\.com/c/`,
		`youtube\.com/user/`,
		`youtube\.com/playlist\?list=`,
		`m\.youtube\.com/`,
		`music\.youtube\.com/`,
		`youtu\.be/`,
	}},
	{Instagram, []string{
		`instagram\.com/p/`,
		`instagram\.com/reel/`,
		`instagram\.com/tv/`,
		`instagram\.com/stories/`,
		`instagram\.com/[^/]+/?$`,
		`m\.instagram\.com/`,
		`instagr\.am/`,
	}},
	{TikTok, []string{
		`tiktok\.com/@`,
		`tiktok\.com/video/`,
		`tiktok\.com/tag/`,
		`tiktok\.com/t/`,
		`m\.tiktok\.com/v/`,
		`vm\.tiktok\.com/`,
	}},
	{Twitter, []string{
		`twitter\.com/[^/]+/status/`,
		`twitter\.com/hashtag/`,
		`twitter\.com/i/`,
		`twitter\.com/[^/]+/?$`,
		`x\.com/[^/]+/status/`,
		`x\.com/hashtag/`,
		`x\.com/i/`,
		`x\.com/[^/]+/?$`,
		`t\.co/`,
	}},
	{Facebook, []string{
		`facebook\.com/[^/]+/posts/`,
		`facebook\.com/[^/]+/videos/`,
		`facebook\.com/watch/`,
		`facebook\.com/groups/`,
		`facebook\.com/profile\.php\?id=`,
		`facebook\.com/[^/]+/?$`,
		`m\.facebook\.com/`,
		`fb\.gg/`,
	}},
	{LinkedIn, []string{
		`linkedin\.com/in/`,
		`linkedin\.com/company/`,
		`linkedin\.com/posts/`,
		`linkedin\.com/pulse/`,
		`linkedin\.com/feed/`,
	}},
	{Snapchat, []string{
		`snapchat\.com/add/`,
		`snapchat\.com/discover/`,
		`snapchat\.com/stories/`,
	}},
	{Pinterest, []string{
		`pinterest\.com/pin/`,
		`pinterest\.com/search/`,
		`pin\.it/`,
		`pinterest\.com/[^/]+/`,
	}},
	{Reddit, []string{
		`reddit\.com/r/`,
		`reddit\.com/user/`,
		`reddit\.com/comments/`,
		`old\.reddit\.com/`,
		`redd\.it/`,
	}},
	{Twitch, []string{
		`twitch\.tv/videos/`,
		`twitch\.tv/[^/]+/clip/`,
		`twitch\.tv/`,
		`m\.twitch\.tv/`,
	}},
	{Discord, []string{
		`discord\.com/channels/`,
		`discord\.com/invite/`,
		`discordapp\.com/invite/`,
		`discord\.gg/`,
	}},
	{Telegram, []string{
		`t\.me/`,
		`telegram\.me/`,
		`telegram\.org/`,
	}},
	{WhatsApp, []string{
		`wa\.me/`,
		`whatsapp\.com/`,
		`web\.whatsapp\.com/`,
	}},
	{Vimeo, []string{
		`vimeo\.com/ondemand/`,
		`vimeo\.com/channels/`,
		`vimeo\.com/`,
	}},
	{Dailymotion, []string{
		`dailymotion\.com/video/`,
		`dailymotion\.com/playlist/`,
		`dailymotion\.com/`,
		`dai\.ly/`,
	}},
}

type patternSet struct {
	platform Type
	patterns []string
}

// domainFallback resolves bare hosts that slipped through the URL-shape
// patterns, e.g. a scheme-less "youtube.com" with no path.
var domainFallback = map[string]Type{
	"youtube.com":     YouTube,
	"youtu.be":        YouTube,
	"instagram.com":   Instagram,
	"instagr.am":      Instagram,
	"tiktok.com":      TikTok,
	"twitter.com":     Twitter,
	"x.com":           Twitter,
	"facebook.com":    Facebook,
	"fb.com":          Facebook,
	"linkedin.com":    LinkedIn,
	"snapchat.com":    Snapchat,
	"pinterest.com":   Pinterest,
	"reddit.com":      Reddit,
	"twitch.tv":       Twitch,
	"discord.com":     Discord,
	"discordapp.com":  Discord,
	"telegram.org":    Telegram,
	"t.me":            Telegram,
	"whatsapp.com":    WhatsApp,
	"wa.me":           WhatsApp,
	"vimeo.com":       Vimeo,
	"dailymotion.com": Dailymotion,
}

// descriptions is the human-readable blurb per platform, used in reports.
var descriptions = map[Type]string{
	YouTube:     "Video sharing platform",
	Instagram:   "Photo and video sharing platform",
	TikTok:      "Short-form video platform",
	Twitter:     "Microblogging and social networking",
	Facebook:    "Social networking platform",
	LinkedIn:    "Professional networking platform",
	Snapchat:    "Multimedia messaging app",
	Pinterest:   "Visual discovery and bookmarking",
	Reddit:      "Social news and discussion platform",
	Twitch:      "Live streaming platform",
	Discord:     "Voice, video, and text communication",
	Telegram:    "Cloud-based instant messaging",
	WhatsApp:    "Instant messaging and voice over IP",
	Vimeo:       "Video hosting and sharing platform",
	Dailymotion: "Video sharing platform",
}
