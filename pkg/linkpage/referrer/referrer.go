package referrer

import "strings"

// Labels returned when no platform matches.
const (
	Direct = "Direct"
	Other  = "Other"
)

type platform struct {
	label    string
	patterns []string
}

// platforms is deliberately an ordered slice, not a map: when a referrer
// string could match more than one platform (a URL containing both "t.co"
// and "telegram", say), the first entry in table order wins.
var platforms = []platform{
	{"Instagram", []string{"instagram.com", "ig.me"}},
	{"Facebook", []string{"facebook.com", "fb.com"}},
	{"Twitter/X", []string{"twitter.com", "t.co", "x.com"}},
	{"TikTok", []string{"tiktok.com"}},
	{"YouTube", []string{"youtube.com", "youtu.be"}},
	{"LinkedIn", []string{"linkedin.com"}},
	{"Pinterest", []string{"pinterest.com"}},
	{"Reddit", []string{"reddit.com"}},
	{"Google", []string{"google.com", "google."}},
	{"Bing", []string{"bing.com"}},
	{"WhatsApp", []string{"whatsapp.com", "wa.me"}},
	{"Telegram", []string{"t.me", "telegram"}},
}

// Classify maps a raw referrer string to a canonical platform label.
// An empty referrer means the visitor typed or bookmarked the URL, so it
// classifies as Direct. The input is never validated as a URL; matching
// is plain case-insensitive substring search.
func Classify(raw string) string {
	if raw == "" {
		return Direct
	}

	normalized := strings.ToLower(raw)
	for _, p := range platforms {
		for _, pattern := range p.patterns {
			if strings.Contains(normalized, pattern) {
				return p.label
			}
		}
	}

	return Other
}
