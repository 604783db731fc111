package telemetry

import (
	"time"

	"github.com/dmitrymomot/clientmeta/pkg/validator"
)

// Record is what the metrics store keeps for one submission: the submitted
// snapshot plus what the server observed. IP and UserAgent are taken from the
// request and override any userAgent the client put in the body.
type Record struct {
	Snapshot
	Region     *string   `json:"region,omitempty"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	RequestID  string    `json:"requestId,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// CollectRequest is the strict submission accepted by POST /collect.
type CollectRequest struct {
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	LocalTime string  `json:"localTime"`
	UserAgent string  `json:"userAgent"`
	Language  string  `json:"language"`
	Referer   *string `json:"referer,omitempty"`
}

// Validate reports every missing required field.
func (c CollectRequest) Validate() error {
	return validator.Apply(
		validator.RequiredString("country", c.Country),
		validator.RequiredString("region", c.Region),
		validator.RequiredString("localTime", c.LocalTime),
		validator.RequiredString("userAgent", c.UserAgent),
		validator.RequiredString("language", c.Language),
	)
}

// Record converts a validated request into a stored record.
func (c CollectRequest) Record() Record {
	region := c.Region
	return Record{
		Snapshot: Snapshot{
			Country:   String(c.Country),
			LocalTime: String(c.LocalTime),
			UserAgent: String(c.UserAgent),
			Language:  String(c.Language),
			Referer:   c.Referer,
		},
		Region:    &region,
		UserAgent: c.UserAgent,
	}
}
