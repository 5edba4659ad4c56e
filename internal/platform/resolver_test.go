package platform

import (
	"testing"
)

func TestDetect_KnownPlatforms(t *testing.T) {
	cases := []struct {
		url  string
		want Type
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", YouTube},
		{"https://youtu.be/dQw4w9WgXcQ", YouTube},
		{"https://m.youtube.com/watch?v=abc", YouTube},
		{"https://www.instagram.com/reel/ABC123DEF/", Instagram},
		{"https://www.instagram.com/p/XYZ/", Instagram},
		{"https://www.tiktok.com/@username/video/1234567890", TikTok},
		{"https://vm.tiktok.com/ZMabc/", TikTok},
		{"https://twitter.com/user/status/1234567890123456789", Twitter},
		{"https://x.com/user/status/1234567890123456789", Twitter},
		{"https://www.facebook.com/user/posts/123", Facebook},
		{"https://www.linkedin.com/in/someone/", LinkedIn},
		{"https://www.snapchat.com/add/someone", Snapchat},
		{"https://www.pinterest.com/pin/123456/", Pinterest},
		{"https://www.reddit.com/r/golang/comments/abc/", Reddit},
		{"https://www.twitch.tv/videos/123456", Twitch},
		{"https://discord.gg/abcdef", Discord},
		{"https://t.me/somechannel", Telegram},
		{"https://wa.me/1234567890", WhatsApp},
		{"https://vimeo.com/123456789", Vimeo},
		{"https://www.dailymotion.com/video/x7abcd", Dailymotion},
	}
	for _, tc := range cases {
		if got := Detect(tc.url); got != tc.want {
			t.Fatalf("Detect(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestDetect_MalformedInputIsUnknown(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a url at all with spaces",
		"https://",
		"https://invalid-url-example.com/whatever",
	}
	for _, in := range inputs {
		if got := Detect(in); got != Unknown {
			t.Fatalf("Detect(%q) = %q, want %q", in, got, Unknown)
		}
	}
}

func TestDetect_NormalizesSchemelessURLs(t *testing.T) {
	cases := []struct {
		url  string
		want Type
	}{
		{"//www.youtube.com/watch?v=abc", YouTube},
		{"youtube.com/watch?v=abc", YouTube},
		{"instagram.com/reel/ABC/", Instagram},
	}
	for _, tc := range cases {
		if got := Detect(tc.url); got != tc.want {
			t.Fatalf("Detect(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestDetect_DomainFallbackForBareHosts(t *testing.T) {
	if got := Detect("https://youtube.com"); got != YouTube {
		t.Fatalf("bare youtube.com = %q", got)
	}
	if got := Detect("https://music.example.youtube.com"); got != YouTube {
		t.Fatalf("youtube subdomain = %q", got)
	}
}

func TestInfo_URLTypes(t *testing.T) {
	cases := []struct {
		url      string
		platform Type
		urlType  string
	}{
		{"https://www.youtube.com/watch?v=abc", YouTube, "video"},
		{"https://www.youtube.com/shorts/abc", YouTube, "shorts"},
		{"https://www.youtube.com/channel/UCabc", YouTube, "channel"},
		{"https://www.instagram.com/p/ABC/", Instagram, "post"},
		{"https://www.instagram.com/reel/ABC/", Instagram, "reel"},
		{"https://www.tiktok.com/@user/video/1", TikTok, "video"},
		{"https://twitter.com/user/status/1", Twitter, "tweet"},
		{"https://vimeo.com/123", Vimeo, "content"},
	}
	for _, tc := range cases {
		info := GetInfo(tc.url)
		if info.Platform != tc.platform {
			t.Fatalf("GetInfo(%q).Platform = %q, want %q", tc.url, info.Platform, tc.platform)
		}
		if info.URLType != tc.urlType {
			t.Fatalf("GetInfo(%q).URLType = %q, want %q", tc.url, info.URLType, tc.urlType)
		}
	}
}

func TestInfo_ConfidenceLevels(t *testing.T) {
	if info := GetInfo("https://www.youtube.com/watch?v=abc"); info.Confidence != ConfidenceHigh {
		t.Fatalf("exact domain match should be high confidence, got %q", info.Confidence)
	}
	if info := GetInfo("not-a-real-link"); info.Confidence != ConfidenceLow {
		t.Fatalf("unknown should be low confidence, got %q", info.Confidence)
	}
	if info := GetInfo("https://music.example.youtube.com"); info.Confidence != ConfidenceMedium {
		t.Fatalf("subdomain fallback should be medium confidence, got %q", info.Confidence)
	}
}

func TestInfo_UnknownShape(t *testing.T) {
	info := GetInfo("https://example.org/page")
	if info.Platform != Unknown || info.URLType != "unknown" || info.Description == "" {
		t.Fatalf("unexpected unknown info: %+v", info)
	}
}

func TestResolver_RegisterAndUnregister(t *testing.T) {
	r := NewResolver()
	const mastodon = Type("mastodon")
	if err := r.Register(mastodon, []string{`mastodon\.social/@`}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := r.Detect("https://mastodon.social/@someone"); got != mastodon {
		t.Fatalf("registered platform not detected: %q", got)
	}
	r.Unregister(mastodon)
	if got := r.Detect("https://mastodon.social/@someone"); got != Unknown {
		t.Fatalf("unregistered platform still detected: %q", got)
	}
	for _, p := range r.Platforms() {
		if p == mastodon {
			t.Fatalf("unregistered platform still listed")
		}
	}
}

func TestResolver_RegisterRejectsBadPattern(t *testing.T) {
	r := NewResolver()
	if err := r.Register(Type("broken"), []string{`[unclosed`}); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestDetectBatch_Counts(t *testing.T) {
	got := DetectBatch([]string{
		"https://www.youtube.com/watch?v=a",
		"https://example.org/nothing",
		"https://www.tiktok.com/@user/video/1",
	})
	if got.Total != 3 || got.Detected != 2 || got.Unknown != 1 {
		t.Fatalf("counts mismatch: %+v", got)
	}
	if len(got.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got.Results))
	}
	if got.Results[0].Platform != YouTube || !got.Results[0].Supported {
		t.Fatalf("first result mismatch: %+v", got.Results[0])
	}
	if got.Results[1].Supported {
		t.Fatalf("unknown URL marked supported: %+v", got.Results[1])
	}
}
