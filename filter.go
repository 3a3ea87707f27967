package discovery

import (
	"path/filepath"
	"strings"
)

// Endpoint classes used for filtering.
const (
	ClassUSB      = "usb"
	ClassStandard = "standard"
	ClassARM      = "arm"
	ClassOther    = "other"
	ClassAll      = "all"
)

// Class returns a coarse classification of the endpoint. Name prefixes are
// the ones defaultDescription recognises; on-chip UARTs of ARM SoCs count
// as ARM.
func (e Endpoint) Class() string {
	if e.IsUSB() {
		return ClassUSB
	}
	base := filepath.Base(e.Name)
	switch {
	case strings.HasPrefix(base, "ttyUSB"),
		strings.HasPrefix(base, "ttyACM"),
		strings.HasPrefix(base, "cu.usbserial"),
		strings.HasPrefix(base, "tty.usbserial"),
		strings.HasPrefix(base, "cu.usbmodem"),
		strings.HasPrefix(base, "tty.usbmodem"):
		return ClassUSB
	case strings.HasPrefix(base, "ttyAMA"),
		strings.HasPrefix(base, "ttymxc"),
		strings.HasPrefix(base, "ttySAC"),
		strings.HasPrefix(base, "ttyTHS"),
		strings.HasPrefix(base, "ttyO"):
		return ClassARM
	case strings.HasPrefix(base, "ttyS"), comPortPattern.MatchString(e.Name):
		return ClassStandard
	default:
		return ClassOther
	}
}

// Filter returns the endpoints of the given class. An empty class or
// ClassAll returns endpoints unchanged.
func Filter(endpoints []Endpoint, class string) []Endpoint {
	class = strings.ToLower(class)
	if class == "" || class == ClassAll {
		return endpoints
	}
	filtered := make([]Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if ep.Class() == class {
			filtered = append(filtered, ep)
		}
	}
	return filtered
}
