// Package telemetry defines the client telemetry records exchanged with the
// browser: the permissive Snapshot posted to the cookie endpoints, the strict
// CollectRequest posted to /collect and the Record kept by the metrics store.
//
// The optional Snapshot fields are described once, in fields.go. That table
// drives lenient JSON decoding (DecodeSnapshot) and the cookie writer, which
// sets and clears cookies named after CookieFieldNames.
package telemetry
