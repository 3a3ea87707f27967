package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// enrich reads USB attributes for ep from sysfs. A tty node does not carry
// idVendor/idProduct itself; those live on the owning USB device a few
// directories up from /sys/class/tty/<name>/device.
func (p *sysfsPlatform) enrich(ep *Endpoint) {
	link := p.path("sys", "class", "tty", filepath.Base(ep.Name), "device")
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		p.log.Debug("No sysfs device node", zap.String("path", link), zap.Error(err))
		return
	}

	usbDevicePath, ok := p.findUSBDevice(resolved)
	if !ok {
		return
	}

	ep.applyUSB(usbMetadata{
		vendorID:     readSysfsFile(filepath.Join(usbDevicePath, "idVendor")),
		productID:    readSysfsFile(filepath.Join(usbDevicePath, "idProduct")),
		manufacturer: readSysfsFile(filepath.Join(usbDevicePath, "manufacturer")),
		product:      readSysfsFile(filepath.Join(usbDevicePath, "product")),
		serial:       readSysfsFile(filepath.Join(usbDevicePath, "serial")),
		busNumber:    readSysfsFile(filepath.Join(usbDevicePath, "busnum")),
		deviceNumber: readSysfsFile(filepath.Join(usbDevicePath, "devnum")),
	})
}

// findUSBDevice walks up from start until a directory holds both idVendor
// and idProduct. The walk never leaves the scanner root.
func (p *sysfsPlatform) findUSBDevice(start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		if !p.contains(dir) {
			return "", false
		}
		if fileExists(filepath.Join(dir, "idVendor")) && fileExists(filepath.Join(dir, "idProduct")) {
			return dir, true
		}
		if dir == p.root {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// contains reports whether path lies at or below the scanner root
func (p *sysfsPlatform) contains(path string) bool {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readSysfsFile returns the trimmed content of a sysfs attribute, or "" when
// it cannot be read.
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
