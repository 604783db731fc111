package useragent

import (
	"regexp"
	"strings"
)

// browserMatches is checked top to bottom. Chrome is intentionally ahead of
// safari and edge: Chromium builds advertise "Safari/" and Edge advertises
// "Chrome/", and the first hit decides.
var browserMatches = []match{
	{Name: BrowserChrome, Keywords: newKeywordSet("chrome", "chromium")},
	{Name: BrowserFirefox, Keywords: newKeywordSet("firefox", "fxios")},
	{Name: BrowserSafari, Keywords: newKeywordSet("safari")},
	{Name: BrowserOpera, Keywords: newKeywordSet("opr", "opera")},
	{Name: BrowserEdge, Keywords: newKeywordSet("edg")},
	{Name: BrowserIE, Keywords: newKeywordSet("msie", "trident")},
}

var versionRegex = regexp.MustCompile(`(?i)(?:chrome|firefox|version|opera|edge|safari)[/\s](\d+)`)

// ParseBrowser returns the browser type of a raw user agent string.
func ParseBrowser(ua string) string {
	return firstMatch(strings.ToLower(ua), browserMatches)
}

// ParseVersion returns the first numeric group that follows a known browser
// token, or Unknown.
func ParseVersion(ua string) string {
	if ua == "" {
		return Unknown
	}
	matches := versionRegex.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return Unknown
	}
	return matches[1]
}
