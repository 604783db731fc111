package collector

// ClientData is the nested snapshot returned by Collect.
type ClientData struct {
	Connection Connection `json:"connection"`
	Browser    Browser    `json:"browser"`
	Language   Language   `json:"language"`
	Device     Device     `json:"device"`
	Time       Time       `json:"time"`
	Network    Network    `json:"network"`
	Meta       Meta       `json:"meta"`
}

// Connection holds the client address. IP is the whole forwarded chain,
// comma separated, when the request went through proxies.
type Connection struct {
	IP    string `json:"ip"`
	Proxy bool   `json:"proxy"`
}

type Browser struct {
	Type          string `json:"type"`
	Version       string `json:"version"`
	Platform      string `json:"platform"`
	IsBot         bool   `json:"isBot"`
	BotName       string `json:"botName,omitempty"`
	UserAgentData string `json:"userAgentData"`
}

type Language struct {
	Preferred string   `json:"preferred"`
	All       string   `json:"all"`
	Tags      []string `json:"tags"`
}

type Device struct {
	Type             string `json:"type"`
	IsTouchSupported bool   `json:"isTouchSupported"`
	Fingerprint      string `json:"fingerprint"`
}

type Time struct {
	Timezone   string `json:"timezone"`
	ServerTime string `json:"serverTime"`
}

type Network struct {
	Secure   bool   `json:"secure"`
	Protocol string `json:"protocol"`
}

type Meta struct {
	Referrer  string `json:"referrer"`
	RequestID string `json:"requestId"`
}
