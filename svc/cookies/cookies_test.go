package cookies_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientmeta/pkg/cookie"
	"github.com/dmitrymomot/clientmeta/svc/cookies"
	"github.com/dmitrymomot/clientmeta/svc/telemetry"
)

func newWriter() *cookies.Writer {
	return cookies.NewWriter(
		cookie.NewFromConfig(cookie.DefaultConfig()),
		cookies.WithTokenGenerator(func() string { return "generated" }),
	)
}

func byName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestSetCookies(t *testing.T) {
	t.Parallel()

	t.Run("submitted token and country", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		token, err := newWriter().SetCookies(rec, telemetry.Snapshot{
			Country: telemetry.String("US"),
			Token:   telemetry.String("abc123"),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)

		got := byName(rec)
		require.Len(t, got, 2)

		session := got[cookies.SessionTokenCookie]
		require.NotNil(t, session)
		assert.Equal(t, "abc123", session.Value)
		assert.True(t, session.HttpOnly)
		assert.False(t, session.Secure)
		assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
		assert.Equal(t, "/", session.Path)
		assert.Equal(t, "localhost", session.Domain)
		assert.Equal(t, 7*24*60*60, session.MaxAge)

		country := got["country"]
		require.NotNil(t, country)
		assert.Equal(t, "US", country.Value)
		assert.False(t, country.HttpOnly)
		assert.Equal(t, session.MaxAge, country.MaxAge)
	})

	t.Run("override beats submitted token", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		token, err := newWriter().SetCookies(rec, telemetry.Snapshot{Token: telemetry.String("abc123")}, "forced")
		require.NoError(t, err)
		assert.Equal(t, "forced", token)
		assert.Equal(t, "forced", byName(rec)[cookies.SessionTokenCookie].Value)
	})

	t.Run("generated token when none submitted", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		token, err := newWriter().SetCookies(rec, telemetry.Snapshot{}, "")
		require.NoError(t, err)
		assert.Equal(t, "generated", token)
		assert.Len(t, byName(rec), 1)
	})

	t.Run("typed values", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		_, err := newWriter().SetCookies(rec, telemetry.Snapshot{
			TimezoneOffset: telemetry.Number(-60),
			CookieEnabled:  telemetry.Bool(true),
			Online:         telemetry.Bool(false),
			UserAgent:      telemetry.String("Mozilla/5.0 (X11; Linux x86_64)"),
		}, "")
		require.NoError(t, err)

		got := byName(rec)
		assert.Equal(t, "-60", got["timezoneOffset"].Value)
		assert.Equal(t, "true", got["cookieEnabled"].Value)
		assert.Equal(t, "false", got["online"].Value)

		assert.NotContains(t, got["userAgent"].Value, "+")
		ua, err := url.PathUnescape(got["userAgent"].Value)
		require.NoError(t, err)
		assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64)", ua)
	})
}

func TestLanguagePreferencesRoundTrip(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	_, err := newWriter().SetCookies(rec, telemetry.Snapshot{
		LanguagePreferences: []string{"en-US", "fr"},
	}, "")
	require.NoError(t, err)

	c := byName(rec)["languagePreferences"]
	require.NotNil(t, c)

	prefs, err := cookies.DecodeLanguagePreferences(c.Value)
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US", "fr"}, prefs)

	_, err = cookies.DecodeLanguagePreferences("not-json")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}

func TestClearCookies(t *testing.T) {
	t.Parallel()

	full := telemetry.Snapshot{
		Country:             telemetry.String("US"),
		Language:            telemetry.String("en"),
		UserAgent:           telemetry.String("ua"),
		Platform:            telemetry.String("Linux"),
		Timezone:            telemetry.String("UTC"),
		TimezoneOffset:      telemetry.Number(0),
		LocalTime:           telemetry.String("10:00"),
		Referer:             telemetry.String("https://example.com"),
		ScreenResolution:    telemetry.String("1x1"),
		ViewportSize:        telemetry.String("1x1"),
		DeviceType:          telemetry.String("desktop"),
		CookieEnabled:       telemetry.Bool(true),
		Online:              telemetry.Bool(true),
		LanguagePreferences: []string{"en"},
		ConnectionType:      telemetry.String("wifi"),
	}

	w := newWriter()
	set := httptest.NewRecorder()
	_, err := w.SetCookies(set, full, "")
	require.NoError(t, err)

	clearRec := httptest.NewRecorder()
	w.ClearCookies(clearRec)

	written := byName(set)
	cleared := byName(clearRec)
	assert.Len(t, cleared, len(cookies.Names()))

	for name, c := range written {
		expired, ok := cleared[name]
		require.True(t, ok, "cookie %q not cleared", name)
		assert.Equal(t, c.Path, expired.Path, name)
		assert.Equal(t, c.Domain, expired.Domain, name)
		assert.Negative(t, expired.MaxAge, name)
		assert.Empty(t, expired.Value, name)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := cookies.Names()
	assert.Equal(t, cookies.SessionTokenCookie, names[0])
	assert.Contains(t, names, "languagePreferences")
	assert.NotContains(t, names, telemetry.TokenField)
}
