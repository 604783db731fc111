// Package collector builds a structured description of the calling client
// from nothing but the inbound request: connection address and proxy chain,
// browser classification, language preferences, device hints, server time,
// transport security and the request id.
//
// The clock is injectable so serverTime is deterministic in tests:
//
//	c := collector.New(collector.WithClock(func() time.Time { return fixed }))
//	data := c.Collect(r)
package collector
