package collector

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/clientmeta/pkg/clientip"
	"github.com/dmitrymomot/clientmeta/pkg/fingerprint"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/pkg/useragent"
)

// Request headers read by Collect besides the standard ones.
const (
	HeaderUserAgentData = "Sec-CH-UA"
	HeaderTouchSupport  = "Touch-Support"
	HeaderTimeZone      = "Time-Zone"
	HeaderForwardProto  = "X-Forwarded-Proto"
)

const serverTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Collector derives a ClientData snapshot from request headers.
type Collector struct {
	now func() time.Time
}

// Option configures a Collector.
type Option func(*Collector)

// WithClock sets the clock used for time.serverTime.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		if now != nil {
			c.now = now
		}
	}
}

// New returns a Collector using the wall clock unless WithClock is given.
func New(opts ...Option) *Collector {
	c := &Collector{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect inspects r and returns what the server can tell about the client.
// It has no side effects and never fails; missing headers degrade to
// useragent.Unknown or empty values.
func (c *Collector) Collect(r *http.Request) ClientData {
	ua := r.UserAgent()
	class := useragent.Classify(ua)

	chain := clientip.Chain(r)
	conn := Connection{IP: clientip.GetIP(r), Proxy: len(chain) > 1}
	if conn.Proxy {
		conn.IP = strings.Join(chain, ", ")
	}

	acceptLanguage := r.Header.Get("Accept-Language")

	secure := isSecure(r)
	protocol := "http"
	if secure {
		protocol = "https"
	}

	return ClientData{
		Connection: conn,
		Browser: Browser{
			Type:          class.Browser,
			Version:       class.Version,
			Platform:      class.Platform,
			IsBot:         class.IsBot,
			BotName:       useragent.BotName(ua),
			UserAgentData: r.Header.Get(HeaderUserAgentData),
		},
		Language: Language{
			Preferred: preferredLanguage(acceptLanguage),
			All:       acceptLanguage,
			Tags:      languageTags(acceptLanguage),
		},
		Device: Device{
			Type:             useragent.DeviceType(ua),
			IsTouchSupported: r.Header.Get(HeaderTouchSupport) == "true",
			Fingerprint:      fingerprint.Generate(r),
		},
		Time: Time{
			Timezone:   valueOr(r.Header.Get(HeaderTimeZone), useragent.Unknown),
			ServerTime: c.now().UTC().Format(serverTimeLayout),
		},
		Network: Network{
			Secure:   secure,
			Protocol: protocol,
		},
		Meta: Meta{
			Referrer:  r.Referer(),
			RequestID: requestid.FromContext(r.Context()),
		},
	}
}

// preferredLanguage returns the first language range of an Accept-Language
// value without its quality parameter.
func preferredLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	return valueOr(strings.TrimSpace(first), useragent.Unknown)
}

// languageTags parses header into canonical BCP 47 tags ordered by quality.
func languageTags(header string) []string {
	tags := []string{}
	if header == "" {
		return tags
	}
	parsed, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return tags
	}
	for _, t := range parsed {
		tags = append(tags, t.String())
	}
	return tags
}

func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderForwardProto)), "https")
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
