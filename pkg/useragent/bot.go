package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var botKeywords = newKeywordSet("bot", "spider", "crawl", "slurp", "search")

var botNamePattern = regexp.MustCompile(`(?i)([a-z0-9\-_]*(?:bot|spider|crawler|slurp))`)

// IsBot reports whether the user agent looks like an automated client.
func IsBot(ua string) bool {
	if ua == "" {
		return false
	}
	return botKeywords.contains(strings.ToLower(ua))
}

// BotName extracts a display name for a bot user agent, e.g. "Googlebot".
// It returns an empty string for non-bot agents.
func BotName(ua string) string {
	if !IsBot(ua) {
		return ""
	}
	name := botNamePattern.FindString(ua)
	if name == "" {
		return "Unknown Bot"
	}
	return cases.Title(language.English).String(strings.ToLower(name))
}
