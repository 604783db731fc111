package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Header names consulted when resolving the client address.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderDOConnectingIP = "DO-Connecting-IP"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
)

// singleValueHeaders carry exactly one address and are checked, in order,
// before X-Forwarded-For.
var singleValueHeaders = []string{HeaderCFConnectingIP, HeaderDOConnectingIP}

// GetIP returns the first-hop client IP of r. Edge proxy headers win over
// X-Forwarded-For, which wins over X-Real-IP; RemoteAddr is the fallback.
// Invalid header values are skipped. An empty string means nothing usable
// was found.
func GetIP(r *http.Request) string {
	for _, h := range singleValueHeaders {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	if chain := ForwardedChain(r); len(chain) > 0 {
		return chain[0]
	}

	if ip := parseIP(r.Header.Get(HeaderRealIP)); ip != "" {
		return ip
	}

	return remoteIP(r)
}

// ForwardedChain returns every valid address listed in X-Forwarded-For, client
// first. Invalid entries are dropped. Multiple X-Forwarded-For headers are
// concatenated in the order they were received.
func ForwardedChain(r *http.Request) []string {
	var chain []string
	for _, value := range r.Header.Values(HeaderForwardedFor) {
		for part := range strings.SplitSeq(value, ",") {
			if ip := parseIP(part); ip != "" {
				chain = append(chain, ip)
			}
		}
	}
	return chain
}

// Chain returns the proxy chain when X-Forwarded-For lists any address,
// otherwise a single-element slice holding GetIP(r). It returns nil only when
// no address can be resolved at all.
func Chain(r *http.Request) []string {
	if chain := ForwardedChain(r); len(chain) > 0 {
		return chain
	}
	if ip := GetIP(r); ip != "" {
		return []string{ip}
	}
	return nil
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
