package useragent

// Unknown is returned by every classifier when nothing matches.
const Unknown = "unknown"

// Browser types reported by ParseBrowser.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserOpera   = "opera"
	BrowserEdge    = "edge"
	BrowserIE      = "ie"
)

// Platforms reported by ParsePlatform.
const (
	PlatformWindows = "windows"
	PlatformMac     = "mac"
	PlatformLinux   = "linux"
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Device types reported by DeviceType.
const (
	DeviceTypeMobile  = "mobile"
	DeviceTypeDesktop = "desktop"
)
