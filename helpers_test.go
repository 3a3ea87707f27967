package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeSystem is a temporary root with a /dev and /sys layout shaped like a
// real Linux machine. Device nodes are regular files since tests cannot
// create character devices without root.
type fakeSystem struct {
	t    *testing.T
	root string
}

func newFakeSystem(t *testing.T) *fakeSystem {
	t.Helper()
	return &fakeSystem{t: t, root: t.TempDir()}
}

func (f *fakeSystem) mkdir(elem ...string) string {
	f.t.Helper()
	dir := filepath.Join(append([]string{f.root}, elem...)...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		f.t.Fatalf("Failed to create %s: %v", dir, err)
	}
	return dir
}

func (f *fakeSystem) writeFile(path, content string) {
	f.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		f.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// addDevice creates /dev/<name>.
func (f *fakeSystem) addDevice(name string) {
	f.t.Helper()
	f.writeFile(filepath.Join(f.mkdir("dev"), name), "")
}

// addUSBTTY creates the sysfs chain for a USB tty:
//
//	sys/class/tty/<tty>/device -> sys/devices/.../usb1/<port>/<port>:1.0/<tty>
//
// attrs are written to the USB device directory sys/devices/.../usb1/<port>.
func (f *fakeSystem) addUSBTTY(tty, port string, attrs map[string]string) {
	f.t.Helper()
	usbDevice := f.mkdir("sys", "devices", "pci0000:00", "0000:00:14.0", "usb1", port)
	ttyNode := f.mkdir("sys", "devices", "pci0000:00", "0000:00:14.0", "usb1", port, port+":1.0", tty)
	for name, content := range attrs {
		f.writeFile(filepath.Join(usbDevice, name), content+"\n")
	}
	f.link(tty, ttyNode)
}

// addPlatformTTY creates the sysfs chain for an on-board UART.
func (f *fakeSystem) addPlatformTTY(tty string) {
	f.t.Helper()
	node := f.mkdir("sys", "devices", "platform", "serial8250")
	f.link(tty, node)
}

func (f *fakeSystem) link(tty, target string) {
	f.t.Helper()
	classDir := f.mkdir("sys", "class", "tty", tty)
	if err := os.Symlink(target, filepath.Join(classDir, "device")); err != nil {
		f.t.Fatalf("Failed to create symlink: %v", err)
	}
}

func (f *fakeSystem) scanner(opts ...Option) *Scanner {
	f.t.Helper()
	opts = append([]Option{WithRoot(f.root), WithSysfs(true)}, opts...)
	s, err := NewScanner(opts...)
	if err != nil {
		f.t.Fatalf("NewScanner failed: %v", err)
	}
	return s
}

func staticLister(names ...string) PortLister {
	return func() ([]string, error) {
		return names, nil
	}
}
