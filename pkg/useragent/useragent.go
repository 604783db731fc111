package useragent

// Classification is the result of sniffing a single user agent string.
type Classification struct {
	Browser  string `json:"type"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
	IsBot    bool   `json:"isBot"`
}

// Classify runs every classifier over ua. It never fails: an empty or
// unrecognised string yields Unknown fields and IsBot=false.
func Classify(ua string) Classification {
	return Classification{
		Browser:  ParseBrowser(ua),
		Version:  ParseVersion(ua),
		Platform: ParsePlatform(ua),
		IsBot:    IsBot(ua),
	}
}
