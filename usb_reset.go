package discovery

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// reenumerationDelay is how long a reset device typically needs before it
// shows up again.
const reenumerationDelay = 2 * time.Second

// Reset performs a USB-level reset of the device behind the named endpoint.
// This can recover a controller stick that stopped responding.
//
// The usbreset utility (usbutils) is used when installed; otherwise the
// USBDEVFS_RESET ioctl is issued directly. Both need root or equivalent
// permissions on /dev/bus/usb.
//
// Returns:
// - ErrEndpointNotFound if name does not exist
// - ErrUSBInfoNotAvailable if the endpoint has no USB bus/device numbers
// - ErrUSBResetNotAvailable if no reset mechanism exists on this platform
func (s *Scanner) Reset(name string) error {
	ep, ok := s.Describe(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrEndpointNotFound)
	}

	bus, dev, err := usbAddress(ep)
	if err != nil {
		return err
	}

	log := s.log.With(zap.String("endpoint", ep.Name), zap.Int("bus", bus), zap.Int("device", dev))

	if IsUSBResetAvailable() {
		usbPath := formatUSBPath(bus, dev)
		cmd := exec.Command("usbreset", usbPath)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
		}
		log.Info("USB device reset", zap.String("method", "usbreset"))
	} else {
		if err := ioctlReset(s.config.Root, bus, dev); err != nil {
			return err
		}
		log.Info("USB device reset", zap.String("method", "ioctl"))
	}

	// Wait for device to re-enumerate
	time.Sleep(reenumerationDelay)

	return nil
}

// ResetBySerial resets the USB device with the given serial number. Serial
// numbers survive re-enumeration, unlike /dev names.
func (s *Scanner) ResetBySerial(serialNumber string) error {
	for _, ep := range s.List() {
		if ep.SerialNumber == serialNumber {
			return s.Reset(ep.Name)
		}
	}
	return fmt.Errorf("device with serial %s: %w", serialNumber, ErrEndpointNotFound)
}

// IsUSBResetAvailable checks if usbreset utility is available in PATH
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}

// usbAddress parses the bus and device numbers of a USB endpoint
func usbAddress(ep Endpoint) (int, int, error) {
	if ep.BusNumber == "" || ep.DeviceNumber == "" {
		return 0, 0, ErrUSBInfoNotAvailable
	}
	bus, err := strconv.Atoi(ep.BusNumber)
	if err != nil {
		return 0, 0, fmt.Errorf("bad bus number %q: %w", ep.BusNumber, ErrUSBInfoNotAvailable)
	}
	dev, err := strconv.Atoi(ep.DeviceNumber)
	if err != nil {
		return 0, 0, fmt.Errorf("bad device number %q: %w", ep.DeviceNumber, ErrUSBInfoNotAvailable)
	}
	return bus, dev, nil
}

// formatUSBPath returns the zero-padded BBB/DDD form used by usbreset and
// /dev/bus/usb.
func formatUSBPath(bus, dev int) string {
	return fmt.Sprintf("%03d/%03d", bus, dev)
}
