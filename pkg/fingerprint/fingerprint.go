// Package fingerprint derives a stable, non-reversible identifier for a
// client from request headers. It identifies a browser setup, not a person:
// two requests from the same browser on the same network produce the same
// value.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/clientmeta/pkg/clientip"
)

// hintHeaders are the request headers whose values feed the fingerprint.
var hintHeaders = []string{
	"User-Agent",
	"Accept-Language",
	"Accept-Encoding",
	"Accept",
	"Sec-CH-UA",
	"Sec-CH-UA-Platform",
	"Time-Zone",
	"Touch-Support",
}

// presenceHeaders only contribute whether they were sent.
var presenceHeaders = map[string]struct{}{
	"connection":                {},
	"upgrade-insecure-requests": {},
	"sec-fetch-dest":            {},
	"sec-fetch-mode":            {},
	"sec-fetch-site":            {},
	"cache-control":             {},
	"dnt":                       {},
}

// Generate returns a 32-character hex fingerprint of r.
func Generate(r *http.Request) string {
	sum := sha256.Sum256([]byte(strings.Join(Components(r), "|")))
	return hex.EncodeToString(sum[:16])
}

// Components returns the inputs of Generate as name=value slots in a fixed
// order. A missing header keeps its slot with an empty value, so values can
// never shift into a neighbouring position.
func Components(r *http.Request) []string {
	components := make([]string, 0, len(hintHeaders)+2)
	for _, h := range hintHeaders {
		components = append(components, strings.ToLower(h)+"="+strings.TrimSpace(r.Header.Get(h)))
	}
	components = append(components,
		"ip="+clientip.GetIP(r),
		"present="+presentHeaders(r),
	)
	return components
}

func presentHeaders(r *http.Request) string {
	var names []string
	for name := range r.Header {
		lower := strings.ToLower(name)
		if _, ok := presenceHeaders[lower]; ok {
			names = append(names, lower)
		}
	}
	// map iteration order is random
	slices.Sort(names)
	return strings.Join(names, ",")
}
