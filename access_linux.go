//go:build linux

package discovery

import "golang.org/x/sys/unix"

// accessible checks read/write permission without opening the device
func accessible(path string) bool {
	return unix.Access(path, unix.R_OK|unix.W_OK) == nil
}
