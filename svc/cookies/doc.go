// Package cookies writes and clears the cookies that mirror a submitted
// client snapshot.
//
// Every optional snapshot field becomes a readable cookie named after the
// field, and the session token is kept in an HTTP-only session_token cookie.
// ClearCookies expires the same set of names with the same path and domain.
//
//	w := cookies.NewWriter(cookie.NewFromConfig(cfg))
//	token, err := w.SetCookies(rw, snapshot, "")
package cookies
