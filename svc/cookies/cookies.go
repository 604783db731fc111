package cookies

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/clientmeta/pkg/cookie"
	"github.com/dmitrymomot/clientmeta/svc/telemetry"
)

// SessionTokenCookie is the HTTP-only cookie carrying the session token.
const SessionTokenCookie = "session_token"

// ErrWriteCookie is returned when a cookie could not be written.
var ErrWriteCookie = errors.New("cookies: failed to write cookie")

// Writer mirrors client snapshots into cookies. All cookies share the
// attributes of the underlying cookie.Manager; only session_token is
// HTTP-only.
type Writer struct {
	manager  *cookie.Manager
	newToken func() string
}

// Option configures a Writer.
type Option func(*Writer)

// WithTokenGenerator replaces the generator used when neither an override nor
// a submitted token is available.
func WithTokenGenerator(gen func() string) Option {
	return func(w *Writer) {
		if gen != nil {
			w.newToken = gen
		}
	}
}

// NewWriter returns a Writer backed by manager.
func NewWriter(manager *cookie.Manager, opts ...Option) *Writer {
	w := &Writer{
		manager:  manager,
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetCookies writes session_token and one cookie per present snapshot field.
// The token is tokenOverride when non-empty, else the submitted token, else a
// freshly generated one. Absent fields are left untouched. It returns the
// token written.
func (wr *Writer) SetCookies(w http.ResponseWriter, s telemetry.Snapshot, tokenOverride string) (string, error) {
	token := tokenOverride
	if token == "" && s.Token != nil && *s.Token != "" {
		token = *s.Token
	}
	if token == "" {
		token = wr.newToken()
	}

	if err := wr.manager.Set(w, SessionTokenCookie, token, cookie.WithHTTPOnly(true)); err != nil {
		return "", errors.Join(ErrWriteCookie, err)
	}

	for _, f := range telemetry.CookieFields() {
		value, ok := f.Value(s)
		if !ok {
			continue
		}
		if err := wr.manager.Set(w, f.Name, value, cookie.WithHTTPOnly(false)); err != nil {
			return "", errors.Join(ErrWriteCookie, fmt.Errorf("%s: %w", f.Name, err))
		}
	}

	return token, nil
}

// ClearCookies expires every cookie SetCookies can write.
func (wr *Writer) ClearCookies(w http.ResponseWriter) {
	for _, name := range Names() {
		wr.manager.Delete(w, name)
	}
}

// Names returns session_token followed by every field cookie name.
func Names() []string {
	return append([]string{SessionTokenCookie}, telemetry.CookieFieldNames()...)
}

// DecodeLanguagePreferences parses a raw languagePreferences cookie value back
// into the ordered list it was written from.
func DecodeLanguagePreferences(raw string) ([]string, error) {
	value, err := cookie.Decode(raw)
	if err != nil {
		return nil, err
	}
	var prefs []string
	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		return nil, fmt.Errorf("%w: %v", cookie.ErrInvalidFormat, err)
	}
	return prefs, nil
}
