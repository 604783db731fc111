package useragent

import "strings"

// DeviceType returns DeviceTypeMobile when the user agent mentions "mobile",
// DeviceTypeDesktop otherwise.
func DeviceType(ua string) string {
	if strings.Contains(strings.ToLower(ua), "mobile") {
		return DeviceTypeMobile
	}
	return DeviceTypeDesktop
}
