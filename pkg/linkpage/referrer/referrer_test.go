package referrer

import "testing"

func TestClassifyKnownPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		referrer string
		want     string
	}{
		{"instagram domain", "https://instagram.com/someone", "Instagram"},
		{"instagram shortlink", "https://ig.me/m/someone", "Instagram"},
		{"facebook", "https://www.facebook.com/page", "Facebook"},
		{"facebook shortlink", "https://fb.com/page", "Facebook"},
		{"twitter", "https://twitter.com/user/status/1", "Twitter/X"},
		{"twitter shortlink", "https://t.co/abc123", "Twitter/X"},
		{"x.com", "https://x.com/user", "Twitter/X"},
		{"tiktok", "https://www.tiktok.com/@user", "TikTok"},
		{"youtube", "https://youtube.com/watch?v=abc", "YouTube"},
		{"youtube shortlink", "https://youtu.be/abc", "YouTube"},
		{"linkedin", "https://www.linkedin.com/in/user", "LinkedIn"},
		{"pinterest", "https://pinterest.com/pin/1", "Pinterest"},
		{"reddit", "https://www.reddit.com/r/golang", "Reddit"},
		{"google", "https://www.google.com/search?q=x", "Google"},
		{"google country domain", "https://www.google.de/search?q=x", "Google"},
		{"bing", "https://www.bing.com/search?q=x", "Bing"},
		{"whatsapp", "https://whatsapp.com/channel/x", "WhatsApp"},
		{"whatsapp shortlink", "https://wa.me/5511999999999", "WhatsApp"},
		{"telegram shortlink", "https://t.me/channel", "Telegram"},
		{"telegram word", "tg://telegram-app", "Telegram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.referrer); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.referrer, got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("INSTAGRAM.COM/x"); got != "Instagram" {
		t.Errorf("Classify(\"INSTAGRAM.COM/x\") = %q, want Instagram", got)
	}
}

func TestClassifyEmptyIsDirect(t *testing.T) {
	if got := Classify(""); got != Direct {
		t.Errorf("Classify(\"\") = %q, want %q", got, Direct)
	}
}

func TestClassifyUnknownIsOther(t *testing.T) {
	if got := Classify("https://some-random-blog.example/post"); got != Other {
		t.Errorf("Classify(unknown) = %q, want %q", got, Other)
	}
}

// A referrer containing signatures of two platforms must resolve by
// table order, not by any notion of specificity.
func TestClassifyOverlapResolvesByTableOrder(t *testing.T) {
	// Contains both "t.co" (Twitter/X) and "telegram" (Telegram);
	// Twitter/X comes first in the table.
	if got := Classify("https://t.co/redirect?to=telegram"); got != "Twitter/X" {
		t.Errorf("Classify(overlapping) = %q, want Twitter/X", got)
	}
}
