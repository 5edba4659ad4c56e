package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Resolver detects platforms from URLs. The zero value is not usable; call
// NewResolver, which compiles the default pattern tables. A Resolver is
// safe for concurrent readers as long as Register/Unregister are confined
// to setup.
type Resolver struct {
	order    []Type
	patterns map[Type][]*regexp.Regexp
}

// NewResolver builds a resolver from the default pattern tables.
func NewResolver() *Resolver {
	r := &Resolver{patterns: make(map[Type][]*regexp.Regexp, len(defaultPatterns))}
	for _, set := range defaultPatterns {
		compiled := make([]*regexp.Regexp, 0, len(set.patterns))
		for _, p := range set.patterns {
			compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
		}
		r.order = append(r.order, set.platform)
		r.patterns[set.platform] = compiled
	}
	return r
}

// Detect returns the platform a URL belongs to, or Unknown for anything
// empty, malformed, or unrecognized. It never fails.
func (r *Resolver) Detect(raw string) Type {
	full, host, ok := normalizeURL(raw)
	if !ok {
		return Unknown
	}
	for _, t := range r.order {
		for _, re := range r.patterns[t] {
			if re.MatchString(full) {
				return t
			}
		}
	}
	return domainMatch(host)
}

// Info returns the detected platform together with a confidence level, the
// kind of content the URL points at, and a short description.
func (r *Resolver) Info(raw string) Info {
	detected := r.Detect(raw)
	if detected == Unknown {
		return Info{
			Platform:    Unknown,
			Confidence:  ConfidenceLow,
			URLType:     "unknown",
			Description: "Platform not recognized",
		}
	}

	_, host, _ := normalizeURL(raw)
	confidence := ConfidenceMedium
	if t, ok := domainFallback[host]; ok && t == detected {
		confidence = ConfidenceHigh
	}

	desc, ok := descriptions[detected]
	if !ok {
		desc = "Social media platform"
	}
	return Info{
		Platform:    detected,
		Confidence:  confidence,
		URLType:     urlType(detected, raw),
		Description: desc,
	}
}

// Register adds or extends a platform with URL patterns. Patterns are
// compiled case-insensitively; the first invalid pattern aborts.
func (r *Resolver) Register(t Type, patterns []string) error {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return fmt.Errorf("register %s: %w", t, err)
		}
		compiled = append(compiled, re)
	}
	if _, exists := r.patterns[t]; !exists {
		r.order = append(r.order, t)
	}
	r.patterns[t] = append(r.patterns[t], compiled...)
	return nil
}

// Unregister removes a platform from detection.
func (r *Resolver) Unregister(t Type) {
	if _, ok := r.patterns[t]; !ok {
		return
	}
	delete(r.patterns, t)
	for i, existing := range r.order {
		if existing == t {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Platforms lists the platforms the resolver currently detects, in match
// order.
func (r *Resolver) Platforms() []Type {
	return append([]Type(nil), r.order...)
}

// normalizeURL prepares a raw string for matching: protocol-relative and
// scheme-less inputs get https, the host is lower-cased and stripped of a
// leading www. The normalized URL keeps its original path and query.
func normalizeURL(raw string) (full, host string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", "", false
	}
	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", "", false
	}
	host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	return s, host, true
}

// domainMatch resolves a host against the fallback table: exact match
// first, then parent-domain suffix so subdomains like m.youtube.com still
// resolve. Iteration over sorted keys keeps the result deterministic.
func domainMatch(host string) Type {
	if t, ok := domainFallback[host]; ok {
		return t
	}
	domains := make([]string, 0, len(domainFallback))
	for d := range domainFallback {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		if strings.HasSuffix(host, "."+d) {
			return domainFallback[d]
		}
	}
	return Unknown
}

// urlType classifies what kind of content the URL points at for the
// platforms where the path shape is informative.
func urlType(t Type, raw string) string {
	lower := strings.ToLower(raw)
	switch t {
	case YouTube:
		switch {
		case strings.Contains(lower, "/watch?v="),
			strings.Contains(lower, "/embed/"),
			strings.Contains(lower, "youtu.be/"):
			return "video"
		case strings.Contains(lower, "/shorts/"):
			return "shorts"
		case strings.Contains(lower, "/channel/"),
			strings.Contains(lower, "/c/"),
			strings.Contains(lower, "/user/"):
			return "channel"
		case strings.Contains(lower, "/playlist"):
			return "playlist"
		default:
			return "page"
		}
	case Instagram:
		switch {
		case strings.Contains(lower, "/p/"):
			return "post"
		case strings.Contains(lower, "/reel/"):
			return "reel"
		case strings.Contains(lower, "/stories/"):
			return "story"
		case strings.Contains(lower, "/tv/"):
			return "igtv"
		default:
			return "profile"
		}
	case TikTok:
		switch {
		case strings.Contains(lower, "/video/"):
			return "video"
		case strings.Contains(lower, "/@"):
			return "profile"
		case strings.Contains(lower, "/tag/"):
			return "hashtag"
		default:
			return "page"
		}
	case Twitter:
		switch {
		case strings.Contains(lower, "/status/"):
			return "tweet"
		case strings.Contains(lower, "/hashtag/"):
			return "hashtag"
		default:
			return "profile"
		}
	default:
		return "content"
	}
}

// defaultResolver backs the package-level convenience functions. The
// pattern tables are fixed at startup and never mutated through it.
var defaultResolver = NewResolver()

// Detect resolves a URL against the default resolver.
func Detect(raw string) Type {
	return defaultResolver.Detect(raw)
}

// GetInfo resolves detailed platform information against the default
// resolver.
func GetInfo(raw string) Info {
	return defaultResolver.Info(raw)
}
