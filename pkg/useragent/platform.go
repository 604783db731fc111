package useragent

import "strings"

var platformMatches = []match{
	{Name: PlatformWindows, Keywords: newKeywordSet("windows")},
	{Name: PlatformMac, Keywords: newKeywordSet("macintosh", "mac os")},
	{Name: PlatformLinux, Keywords: newKeywordSet("linux")},
	{Name: PlatformAndroid, Keywords: newKeywordSet("android")},
	{Name: PlatformIOS, Keywords: newKeywordSet("ios", "iphone", "ipad")},
}

// ParsePlatform returns the operating system family of a raw user agent string.
// Android user agents also carry "Linux", so they classify as linux.
func ParsePlatform(ua string) string {
	return firstMatch(strings.ToLower(ua), platformMatches)
}
