package useragent

import "strings"

// keywordSet is an ordered list of lower-case needles.
type keywordSet []string

func newKeywordSet(keywords ...string) keywordSet {
	return keywordSet(keywords)
}

// contains reports whether lowerUA contains any keyword of the set.
func (k keywordSet) contains(lowerUA string) bool {
	for _, keyword := range k {
		if strings.Contains(lowerUA, keyword) {
			return true
		}
	}
	return false
}

// match pairs a classification label with the keywords that select it.
type match struct {
	Name     string
	Keywords keywordSet
}

// firstMatch walks matches in order and returns the first label whose keywords
// appear in lowerUA. Order is significant: earlier entries win.
func firstMatch(lowerUA string, matches []match) string {
	if lowerUA == "" {
		return Unknown
	}
	for _, m := range matches {
		if m.Keywords.contains(lowerUA) {
			return m.Name
		}
	}
	return Unknown
}
