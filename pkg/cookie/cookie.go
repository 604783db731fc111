package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Manager writes, reads and expires cookies sharing one set of default
// attributes.
type Manager struct {
	defaults Options
}

// New returns a Manager. Without options cookies are scoped to "/", are
// HTTP-only, SameSite=Lax and live for the browser session.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Defaults returns a copy of the manager's default attributes.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Set writes a cookie. The value is percent-encoded like encodeURIComponent
// (spaces become %20) so arbitrary text survives cookie value rules and
// browser code can read it back with decodeURIComponent. Get reverses the
// encoding. Per-call options override the defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return fmt.Errorf("%w: empty cookie name", ErrInvalidFormat)
	}

	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.PathEscape(value),
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

// Get returns the decoded value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return Decode(c.Value)
}

// Delete expires the named cookie using the default path and domain.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// Decode reverses the value encoding applied by Set.
func Decode(raw string) (string, error) {
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return value, nil
}
