package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Snapshot is the client-reported telemetry accepted by the cookie endpoints.
// Every field is optional; nil means the client did not send it.
type Snapshot struct {
	Country             *string  `json:"country,omitempty"`
	Language            *string  `json:"language,omitempty"`
	UserAgent           *string  `json:"userAgent,omitempty"`
	Platform            *string  `json:"platform,omitempty"`
	Timezone            *string  `json:"timezone,omitempty"`
	TimezoneOffset      *float64 `json:"timezoneOffset,omitempty"`
	LocalTime           *string  `json:"localTime,omitempty"`
	Referer             *string  `json:"referer,omitempty"`
	ScreenResolution    *string  `json:"screenResolution,omitempty"`
	ViewportSize        *string  `json:"viewportSize,omitempty"`
	DeviceType          *string  `json:"deviceType,omitempty"`
	CookieEnabled       *bool    `json:"cookieEnabled,omitempty"`
	Online              *bool    `json:"online,omitempty"`
	LanguagePreferences []string `json:"languagePreferences,omitempty"`
	ConnectionType      *string  `json:"connectionType,omitempty"`
	Token               *string  `json:"token,omitempty"`
}

// ErrInvalidBody is returned by DecodeSnapshot when the payload is not a JSON
// object.
var ErrInvalidBody = errors.New("telemetry: body must be a JSON object")

// DecodeSnapshot parses a JSON object into a Snapshot. Decoding is lenient:
// unknown keys are ignored and a known key whose value has the wrong JSON type
// (or is null) is treated as absent. An empty payload yields an empty
// Snapshot. Only a payload that is not a JSON object is an error.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if raw == nil {
		// literal null
		return s, nil
	}

	for _, f := range allFields {
		v, ok := raw[f.Name]
		if !ok || isNull(v) {
			continue
		}
		_ = f.decode(&s, v)
	}
	return s, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// String returns a pointer to v. Handy for building snapshots in code.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Number returns a pointer to v.
func Number(v float64) *float64 { return &v }
