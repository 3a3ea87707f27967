package discovery

import "errors"

// Predefined error types for robust error handling
var (
	ErrEmptyName        = errors.New("endpoint name is empty")
	ErrEndpointNotFound = errors.New("serial endpoint not found")
	ErrInvalidConfig    = errors.New("invalid scanner configuration")

	// USB-related errors
	ErrUSBInfoNotAvailable  = errors.New("USB device information not available")
	ErrUSBResetNotAvailable = errors.New("usb reset not available")
)
