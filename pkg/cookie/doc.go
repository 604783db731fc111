// Package cookie is a thin HTTP cookie manager built on net/http.
//
// A Manager carries one set of default attributes (path, domain, max-age,
// secure, http-only, same-site). Set applies them with optional per-call
// overrides, Delete expires a cookie with the same path and domain so the
// browser actually removes it.
//
// Values are percent-encoded on write (spaces as %20, never "+") and
// unescaped by Get and Decode, which lets JSON arrays and raw user agents be
// stored without being mangled by net/http's cookie value sanitiser. Browser
// code decodes them with decodeURIComponent.
//
// # Usage
//
//	man := cookie.New(cookie.WithDomain("example.com"), cookie.WithMaxAge(3600))
//
//	_ = man.Set(w, "theme", "dark", cookie.WithHTTPOnly(false))
//	v, err := man.Get(r, "theme")
//	man.Delete(w, "theme")
//
// # Configuration
//
// Config can be populated from the environment with pkg/config and turned into
// a Manager with NewFromConfig.
package cookie
