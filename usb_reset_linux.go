//go:build linux

package discovery

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// usbdevfsReset is USBDEVFS_RESET, _IO('U', 20).
const usbdevfsReset = 0x5514

func ioctlReset(root string, bus, dev int) error {
	path := filepath.Join(root, "dev", "bus", "usb", formatUSBPath(bus, dev))

	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer unix.Close(fd)

	if err := unix.IoctlSetInt(fd, usbdevfsReset, 0); err != nil {
		return fmt.Errorf("USBDEVFS_RESET on %s: %w", path, err)
	}
	return nil
}
