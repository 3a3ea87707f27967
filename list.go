package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Regular expressions for different types of serial devices
var serialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
	regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
	regexp.MustCompile(`^ttyS\d+$`),   // Standard serial ports
	regexp.MustCompile(`^ttyAMA\d+$`), // ARM/Raspberry Pi serial
	regexp.MustCompile(`^ttymxc\d+$`), // i.MX serial ports
	regexp.MustCompile(`^ttyO\d+$`),   // OMAP serial ports
	regexp.MustCompile(`^ttySAC\d+$`), // Samsung serial ports
	regexp.MustCompile(`^ttyTHS\d+$`), // Tegra serial ports
}

// Exclude patterns for virtual terminals and other non-serial devices
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^tty\d+$`),  // Virtual terminals (tty1, tty2, etc.)
	regexp.MustCompile(`^console$`), // Console
	regexp.MustCompile(`^ptmx$`),    // Pseudo-terminal multiplexer
	regexp.MustCompile(`^pty.*$`),   // Pseudo-terminals
	regexp.MustCompile(`^pts/.*$`),  // Pseudo-terminal slaves
}

// usbBusMarker identifies device paths that hang off a USB bus in sysfs.
const usbBusMarker = "/usb"

// sysfsPlatform discovers endpoints through /dev and /sys.
type sysfsPlatform struct {
	root   string
	lister PortLister
	log    *zap.Logger
}

func newSysfsPlatform(root string, lister PortLister, log *zap.Logger) *sysfsPlatform {
	// Resolve the root so it compares equal to paths returned by EvalSymlinks
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	return &sysfsPlatform{root: filepath.Clean(root), lister: lister, log: log}
}

// path maps an absolute system path below the configured root.
func (p *sysfsPlatform) path(elem ...string) string {
	return filepath.Join(append([]string{p.root}, elem...)...)
}

func (p *sysfsPlatform) candidates() []string {
	if p.lister != nil {
		names, err := p.lister()
		if err != nil {
			p.log.Debug("Port enumeration failed", zap.Error(err))
		}
		return names
	}
	return p.scanDev()
}

// scanDev returns the serial character devices in /dev, sorted.
func (p *sysfsPlatform) scanDev() []string {
	var ports []string

	devDir := p.path("dev")
	entries, err := os.ReadDir(devDir)
	if err != nil {
		p.log.Debug("Cannot read device directory", zap.String("path", devDir), zap.Error(err))
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if !isSerialDeviceName(name) {
			continue
		}

		// Verify it's a character device (not a directory or regular file)
		if isCharacterDevice(filepath.Join(devDir, name)) {
			ports = append(ports, devicePathPrefix+name)
		}
	}

	// Sort the ports for consistent ordering
	sort.Strings(ports)

	return ports
}

// snapshot returns p itself; every sysfs lookup is a cheap file read.
func (p *sysfsPlatform) snapshot() platform {
	return p
}

func (p *sysfsPlatform) exists(name string) bool {
	_, err := os.Stat(p.path(name))
	return err == nil
}

// supplementary lists tty class entries whose device link resolves into a
// USB bus. Some USB adapters get names the /dev patterns do not cover.
func (p *sysfsPlatform) supplementary() []string {
	classDir := p.path("sys", "class", "tty")
	entries, err := os.ReadDir(classDir)
	if err != nil {
		p.log.Debug("Cannot read tty class directory", zap.String("path", classDir), zap.Error(err))
		return nil
	}

	var names []string
	for _, entry := range entries {
		resolved, err := filepath.EvalSymlinks(filepath.Join(classDir, entry.Name(), "device"))
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(p.root, resolved)
		if err != nil {
			continue
		}
		if strings.Contains(filepath.ToSlash(string(filepath.Separator)+rel), usbBusMarker) {
			names = append(names, devicePathPrefix+entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// isSerialDeviceName reports whether a /dev entry looks like a serial port
func isSerialDeviceName(name string) bool {
	for _, pattern := range excludePatterns {
		if pattern.MatchString(name) {
			return false
		}
	}
	for _, pattern := range serialPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	// Check if it's a character device
	mode := info.Mode()
	return mode&os.ModeCharDevice != 0
}
