package telemetry

import (
	"encoding/json"
	"strconv"
)

// Field describes one optional Snapshot field together with its cookie
// rendering. The same table drives JSON decoding, cookie writing and cookie
// clearing, so the three can never drift apart.
type Field struct {
	Name   string
	value  func(s Snapshot) (string, bool)
	decode func(s *Snapshot, raw json.RawMessage) error
}

// Value renders the field of s as a cookie value. ok is false when the field
// is absent.
func (f Field) Value(s Snapshot) (value string, ok bool) {
	return f.value(s)
}

// TokenField is the name of the session token field in submitted snapshots.
const TokenField = "token"

// cookieFields lists every Snapshot field mirrored into a cookie of the same
// name, in the order cookies are written.
var cookieFields = []Field{
	stringField("country", func(s *Snapshot) **string { return &s.Country }),
	stringField("language", func(s *Snapshot) **string { return &s.Language }),
	stringField("userAgent", func(s *Snapshot) **string { return &s.UserAgent }),
	stringField("platform", func(s *Snapshot) **string { return &s.Platform }),
	stringField("timezone", func(s *Snapshot) **string { return &s.Timezone }),
	numberField("timezoneOffset", func(s *Snapshot) **float64 { return &s.TimezoneOffset }),
	stringField("localTime", func(s *Snapshot) **string { return &s.LocalTime }),
	stringField("referer", func(s *Snapshot) **string { return &s.Referer }),
	stringField("screenResolution", func(s *Snapshot) **string { return &s.ScreenResolution }),
	stringField("viewportSize", func(s *Snapshot) **string { return &s.ViewportSize }),
	stringField("deviceType", func(s *Snapshot) **string { return &s.DeviceType }),
	boolField("cookieEnabled", func(s *Snapshot) **bool { return &s.CookieEnabled }),
	boolField("online", func(s *Snapshot) **bool { return &s.Online }),
	{
		Name: "languagePreferences",
		value: func(s Snapshot) (string, bool) {
			if s.LanguagePreferences == nil {
				return "", false
			}
			b, err := json.Marshal(s.LanguagePreferences)
			if err != nil {
				return "", false
			}
			return string(b), true
		},
		decode: func(s *Snapshot, raw json.RawMessage) error {
			var v []string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			if v == nil {
				v = []string{}
			}
			s.LanguagePreferences = v
			return nil
		},
	},
	stringField("connectionType", func(s *Snapshot) **string { return &s.ConnectionType }),
}

var allFields = append(append([]Field{}, cookieFields...),
	stringField(TokenField, func(s *Snapshot) **string { return &s.Token }),
)

// CookieFields returns the fields mirrored into cookies.
func CookieFields() []Field {
	return append([]Field(nil), cookieFields...)
}

// CookieFieldNames returns the cookie names of CookieFields, in order.
func CookieFieldNames() []string {
	names := make([]string, len(cookieFields))
	for i, f := range cookieFields {
		names[i] = f.Name
	}
	return names
}

func stringField(name string, ptr func(*Snapshot) **string) Field {
	return Field{
		Name: name,
		value: func(s Snapshot) (string, bool) {
			p := *ptr(&s)
			if p == nil {
				return "", false
			}
			return *p, true
		},
		decode: func(s *Snapshot, raw json.RawMessage) error {
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*ptr(s) = &v
			return nil
		},
	}
}

func boolField(name string, ptr func(*Snapshot) **bool) Field {
	return Field{
		Name: name,
		value: func(s Snapshot) (string, bool) {
			p := *ptr(&s)
			if p == nil {
				return "", false
			}
			return strconv.FormatBool(*p), true
		},
		decode: func(s *Snapshot, raw json.RawMessage) error {
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*ptr(s) = &v
			return nil
		},
	}
}

func numberField(name string, ptr func(*Snapshot) **float64) Field {
	return Field{
		Name: name,
		value: func(s Snapshot) (string, bool) {
			p := *ptr(&s)
			if p == nil {
				return "", false
			}
			return strconv.FormatFloat(*p, 'f', -1, 64), true
		},
		decode: func(s *Snapshot, raw json.RawMessage) error {
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*ptr(s) = &v
			return nil
		},
	}
}
