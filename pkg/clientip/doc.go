// Package clientip resolves the originating client address of an
// *http.Request deployed behind reverse proxies.
//
// GetIP checks, in descending priority:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (first valid entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// ForwardedChain and Chain expose the whole X-Forwarded-For list so callers
// can tell whether the request crossed more than one hop.
//
// Middleware stores the resolved address in the request context; read it back
// with GetIPFromContext or attach it to every log record with LoggerExtractor.
package clientip
