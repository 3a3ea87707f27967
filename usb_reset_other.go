//go:build !linux

package discovery

func ioctlReset(root string, bus, dev int) error {
	return ErrUSBResetNotAvailable
}
