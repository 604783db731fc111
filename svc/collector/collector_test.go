package collector_test

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clientmeta/pkg/fingerprint"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/svc/collector"
)

var fixed = time.Date(2024, 3, 15, 12, 30, 45, 123_000_000, time.FixedZone("EST", -5*3600))

func newCollector() *collector.Collector {
	return collector.New(collector.WithClock(func() time.Time { return fixed }))
}

func TestCollect_FullRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/cookie/client-data", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1")
	r.Header.Set("Accept-Language", "fr-CH, fr;q=0.9, en;q=0.8")
	r.Header.Set("Sec-CH-UA", `"Chromium";v="124"`)
	r.Header.Set("Touch-Support", "true")
	r.Header.Set("Time-Zone", "Europe/Zurich")
	r.Header.Set("Referer", "https://example.com/page")
	r.Header.Set("X-Forwarded-For", "203.0.113.5, 198.51.100.7")
	r = r.WithContext(requestid.WithContext(r.Context(), "req-1"))

	data := newCollector().Collect(r)

	assert.Equal(t, "203.0.113.5, 198.51.100.7", data.Connection.IP)
	assert.True(t, data.Connection.Proxy)

	assert.Equal(t, "safari", data.Browser.Type)
	assert.Equal(t, "17", data.Browser.Version)
	assert.Equal(t, "mac", data.Browser.Platform)
	assert.False(t, data.Browser.IsBot)
	assert.Empty(t, data.Browser.BotName)
	assert.Equal(t, `"Chromium";v="124"`, data.Browser.UserAgentData)

	assert.Equal(t, "fr-CH", data.Language.Preferred)
	assert.Equal(t, "fr-CH, fr;q=0.9, en;q=0.8", data.Language.All)
	assert.Equal(t, []string{"fr-CH", "fr", "en"}, data.Language.Tags)

	assert.Equal(t, "mobile", data.Device.Type)
	assert.True(t, data.Device.IsTouchSupported)
	assert.Equal(t, fingerprint.Generate(r), data.Device.Fingerprint)

	assert.Equal(t, "Europe/Zurich", data.Time.Timezone)
	assert.Equal(t, "2024-03-15T17:30:45.123Z", data.Time.ServerTime)

	assert.False(t, data.Network.Secure)
	assert.Equal(t, "http", data.Network.Protocol)

	assert.Equal(t, "https://example.com/page", data.Meta.Referrer)
	assert.Equal(t, "req-1", data.Meta.RequestID)
}

func TestCollect_EmptyRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/cookie/client-data", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	r.Header.Del("User-Agent")

	data := newCollector().Collect(r)

	assert.Equal(t, "192.0.2.10", data.Connection.IP)
	assert.False(t, data.Connection.Proxy)
	assert.Equal(t, "unknown", data.Browser.Type)
	assert.Equal(t, "unknown", data.Browser.Version)
	assert.Equal(t, "unknown", data.Browser.Platform)
	assert.False(t, data.Browser.IsBot)
	assert.Equal(t, "unknown", data.Language.Preferred)
	assert.Empty(t, data.Language.All)
	assert.Empty(t, data.Language.Tags)
	assert.Equal(t, "desktop", data.Device.Type)
	assert.False(t, data.Device.IsTouchSupported)
	assert.Equal(t, "unknown", data.Time.Timezone)
	assert.Empty(t, data.Meta.RequestID)
}

func TestCollect_SingleForwardedHop(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.5")

	data := newCollector().Collect(r)
	assert.Equal(t, "203.0.113.5", data.Connection.IP)
	assert.False(t, data.Connection.Proxy)
}

func TestCollect_Bot(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")

	data := newCollector().Collect(r)
	assert.True(t, data.Browser.IsBot)
	assert.Equal(t, "Googlebot", data.Browser.BotName)
}

func TestCollect_Secure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tls    bool
		header string
		want   bool
	}{
		{name: "tls", tls: true, want: true},
		{name: "forwarded https", header: "https", want: true},
		{name: "forwarded http", header: "http", want: false},
		{name: "plain", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/", nil)
			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			}
			if tt.header != "" {
				r.Header.Set("X-Forwarded-Proto", tt.header)
			}

			data := newCollector().Collect(r)
			assert.Equal(t, tt.want, data.Network.Secure)
			if tt.want {
				assert.Equal(t, "https", data.Network.Protocol)
			} else {
				assert.Equal(t, "http", data.Network.Protocol)
			}
		})
	}
}

func TestCollect_MalformedAcceptLanguage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "en-US;q=abc")

	data := newCollector().Collect(r)
	assert.Equal(t, "en-US", data.Language.Preferred)
	assert.NotNil(t, data.Language.Tags)
}
