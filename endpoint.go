package discovery

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Endpoint describes one discoverable serial connection point.
//
// Name is fixed at construction. Description starts out as a classification
// derived from the name and may be replaced once hardware metadata is found.
// The USB fields are only set when the platform exposes them.
type Endpoint struct {
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	VendorID     string `json:"vendor_id,omitempty" yaml:"vendor_id,omitempty"`
	ProductID    string `json:"product_id,omitempty" yaml:"product_id,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	SerialNumber string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	BusNumber    string `json:"bus_number,omitempty" yaml:"bus_number,omitempty"`
	DeviceNumber string `json:"device_number,omitempty" yaml:"device_number,omitempty"`
}

// NewEndpoint creates a descriptor with the default description for name.
func NewEndpoint(name string) (Endpoint, error) {
	if strings.TrimSpace(name) == "" {
		return Endpoint{}, ErrEmptyName
	}
	return newEndpoint(name), nil
}

func newEndpoint(name string) Endpoint {
	return Endpoint{
		Name:        name,
		Description: defaultDescription(name),
	}
}

// DisplayName returns "name - description", or just the name when there is
// no description.
func (e Endpoint) DisplayName() string {
	if e.Description == "" {
		return e.Name
	}
	return e.Name + " - " + e.Description
}

func (e Endpoint) String() string {
	return e.DisplayName()
}

// IsUSB reports whether USB vendor and product IDs are known.
func (e Endpoint) IsUSB() bool {
	return e.VendorID != "" && e.ProductID != ""
}

// usbMetadata is the raw attribute set read from a USB device node.
type usbMetadata struct {
	vendorID     string
	productID    string
	manufacturer string
	product      string
	serial       string
	busNumber    string
	deviceNumber string
}

// applyUSB merges metadata into the descriptor. The description is only
// rewritten when both IDs are present.
func (e *Endpoint) applyUSB(m usbMetadata) {
	e.VendorID = strings.ToUpper(m.vendorID)
	e.ProductID = strings.ToUpper(m.productID)
	e.Manufacturer = m.manufacturer
	e.SerialNumber = m.serial
	e.BusNumber = m.busNumber
	e.DeviceNumber = m.deviceNumber

	if !e.IsUSB() {
		return
	}

	if m.product != "" {
		e.Description = m.product
	}

	prefix := ""
	if e.Manufacturer != "" {
		prefix = e.Manufacturer + " "
	}
	e.Description = fmt.Sprintf("%s%s (VID:%s PID:%s)", prefix, e.Description, e.VendorID, e.ProductID)
}

// defaultDescription provides human-readable descriptions for different port types
func defaultDescription(name string) string {
	base := filepath.Base(name)
	switch {
	case strings.HasPrefix(base, "ttyUSB"),
		strings.HasPrefix(base, "cu.usbserial"),
		strings.HasPrefix(base, "tty.usbserial"):
		return "USB Serial Device"
	case strings.HasPrefix(base, "ttyACM"),
		strings.HasPrefix(base, "cu.usbmodem"),
		strings.HasPrefix(base, "tty.usbmodem"):
		return "USB ACM Device"
	case strings.HasPrefix(base, "ttyAMA"):
		return "ARM Serial Port"
	case strings.HasPrefix(base, "ttymxc"):
		return "i.MX Serial Port"
	case strings.HasPrefix(base, "ttySAC"):
		return "Samsung Serial Port"
	case strings.HasPrefix(base, "ttyTHS"):
		return "Tegra Serial Port"
	case strings.HasPrefix(base, "ttyO"):
		return "OMAP Serial Port"
	case strings.HasPrefix(base, "ttyS"):
		return "Standard Serial Port"
	default:
		return "Serial Port"
	}
}
