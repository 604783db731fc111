// Package useragent classifies raw HTTP User-Agent strings into a browser
// type, a major browser version, a platform family and a bot flag.
//
// Classification is plain keyword sniffing over the lower-cased string with an
// explicit priority order; the first matching rule wins. This is deliberately
// coarse: a Chromium-based Edge reports as chrome because the chrome rule runs
// before the edge rule.
//
// # Usage
//
//	import "github.com/dmitrymomot/clientmeta/pkg/useragent"
//
//	c := useragent.Classify(r.UserAgent())
//	if c.IsBot {
//	    // skip analytics
//	}
//
// Every function accepts an empty string and returns Unknown (or false) for it.
// Nothing in this package returns an error or panics on input.
package useragent
