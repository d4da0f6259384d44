// Package device turns raw User-Agent strings into short display labels for
// request logs. The product ships as a hybrid mobile/web client, so knowing
// whether a request came from the Capacitor shell, a phone browser, or a
// desktop browser is the first question when debugging a screen report.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// Kind classifies the requesting client coarsely.
type Kind string

const (
	KindMobile  Kind = "mobile"
	KindDesktop Kind = "desktop"
	KindBot     Kind = "bot"
	KindUnknown Kind = "unknown"
)

// ParseUserAgent returns a human-readable device name like "Chrome on Mac OS X"
// or "Safari on iPhone". Empty input yields "Unknown Device".
func ParseUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown Device"
	}

	ua := useragent.New(raw)
	browser, _ := ua.Browser()
	os := ua.OS()

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		if p := ua.Platform(); p != "" {
			os = p
		} else {
			os = "Unknown OS"
		}
	}

	return strings.TrimSpace(browser + " on " + os)
}

// Classify reports the coarse kind of the requesting client.
func Classify(raw string) Kind {
	if strings.TrimSpace(raw) == "" {
		return KindUnknown
	}
	ua := useragent.New(raw)
	switch {
	case ua.Bot():
		return KindBot
	case ua.Mobile():
		return KindMobile
	default:
		return KindDesktop
	}
}
