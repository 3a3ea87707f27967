package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestReadSysfsFile tests the sysfs file reading helper
func TestReadSysfsFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		expected string
		setup    func(string) error
	}{
		{
			name:     "normal file",
			expected: "1234",
			setup: func(path string) error {
				return os.WriteFile(path, []byte("1234\n"), 0644)
			},
		},
		{
			name:     "file with spaces",
			expected: "test value",
			setup: func(path string) error {
				return os.WriteFile(path, []byte("  test value  \n"), 0644)
			},
		},
		{
			name:     "nonexistent file",
			expected: "",
			setup:    func(path string) error { return nil },
		},
		{
			name:     "empty file",
			expected: "",
			setup: func(path string) error {
				return os.WriteFile(path, []byte(""), 0644)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(tmpDir, tt.name)
			if err := tt.setup(testFile); err != nil {
				t.Fatalf("Setup failed: %v", err)
			}

			result := readSysfsFile(testFile)
			if result != tt.expected {
				t.Errorf("readSysfsFile() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

// TestDescribeCP210x walks from the tty node up to the USB device directory
func TestDescribeCP210x(t *testing.T) {
	fs := newFakeSystem(t)
	fs.addDevice("ttyUSB0")
	fs.addUSBTTY("ttyUSB0", "1-2", map[string]string{
		"idVendor":     "10c4",
		"idProduct":    "ea60",
		"manufacturer": "Silicon Labs",
		"product":      "CP210x UART Bridge",
	})

	ep, ok := fs.scanner().Describe("/dev/ttyUSB0")
	if !ok {
		t.Fatal("Describe reported not found")
	}

	expected := Endpoint{
		Name:         "/dev/ttyUSB0",
		VendorID:     "10C4",
		ProductID:    "EA60",
		Manufacturer: "Silicon Labs",
		Description:  "Silicon Labs CP210x UART Bridge (VID:10C4 PID:EA60)",
	}
	if ep != expected {
		t.Errorf("Describe() = %+v, expected %+v", ep, expected)
	}
}

func TestDescribeReadsSerialAndAddress(t *testing.T) {
	fs := newFakeSystem(t)
	fs.addDevice("ttyACM0")
	fs.addUSBTTY("ttyACM0", "5-2.3.1", map[string]string{
		"idVendor":     "0658",
		"idProduct":    "0200",
		"manufacturer": "Sigma Designs, Inc.",
		"serial":       "ZW0001",
		"busnum":       "5",
		"devnum":       "7",
	})

	ep, ok := fs.scanner().Describe("/dev/ttyACM0")
	if !ok {
		t.Fatal("Describe reported not found")
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"SerialNumber", ep.SerialNumber, "ZW0001"},
		{"BusNumber", ep.BusNumber, "5"},
		{"DeviceNumber", ep.DeviceNumber, "7"},
		{"Description", ep.Description, "Sigma Designs, Inc. USB ACM Device (VID:0658 PID:0200)"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.name, tt.got, tt.expected)
		}
	}
}

func TestDescribeWithoutUSBAttributes(t *testing.T) {
	fs := newFakeSystem(t)
	fs.addDevice("ttyACM0")
	fs.addUSBTTY("ttyACM0", "1-3", nil)

	ep, ok := fs.scanner().Describe("/dev/ttyACM0")
	if !ok {
		t.Fatal("Describe reported not found")
	}

	expected := Endpoint{Name: "/dev/ttyACM0", Description: "USB ACM Device"}
	if ep != expected {
		t.Errorf("Describe() = %+v, expected %+v", ep, expected)
	}
}

// TestDescribeGracefulFailure tests that enrichment failures leave a minimal descriptor
func TestDescribeGracefulFailure(t *testing.T) {
	fs := newFakeSystem(t)
	fs.addDevice("ttyUSB1")
	fs.addDevice("ttyUSB2")

	// Broken device link
	classDir := fs.mkdir("sys", "class", "tty", "ttyUSB2")
	if err := os.Symlink(filepath.Join(fs.root, "nowhere"), filepath.Join(classDir, "device")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	s := fs.scanner()
	for _, name := range []string{"/dev/ttyUSB1", "/dev/ttyUSB2"} {
		ep, ok := s.Describe(name)
		if !ok {
			t.Fatalf("Describe(%s) reported not found", name)
		}
		if ep.Description != "USB Serial Device" {
			t.Errorf("Description = %q, expected default", ep.Description)
		}
		if ep.VendorID != "" || ep.ProductID != "" || ep.Manufacturer != "" {
			t.Errorf("USB fields should be empty, got %+v", ep)
		}
	}
}

func TestFindUSBDeviceStopsAtRoot(t *testing.T) {
	fs := newFakeSystem(t)
	deep := fs.mkdir("sys", "devices", "a", "b", "c", "d")

	// Attributes above the scanner root must never be picked up
	parent := filepath.Dir(fs.root)
	p := newSysfsPlatform(fs.root, nil, fs.scanner().log)

	if dir, ok := p.findUSBDevice(deep); ok {
		t.Errorf("findUSBDevice() = %s, expected no match below %s", dir, parent)
	}
	if _, ok := p.findUSBDevice("/"); ok {
		t.Error("findUSBDevice(/) should not match outside the root")
	}
}

func TestFindUSBDeviceNearestAncestor(t *testing.T) {
	fs := newFakeSystem(t)
	outer := fs.mkdir("sys", "devices", "usb1", "1-1")
	inner := fs.mkdir("sys", "devices", "usb1", "1-1", "1-1.4")
	start := fs.mkdir("sys", "devices", "usb1", "1-1", "1-1.4", "1-1.4:1.0", "ttyUSB0")
	for _, dir := range []string{outer, inner} {
		fs.writeFile(filepath.Join(dir, "idVendor"), "1d6b\n")
		fs.writeFile(filepath.Join(dir, "idProduct"), "0002\n")
	}
	// Only one of the two attributes is not enough
	fs.writeFile(filepath.Join(start, "idVendor"), "ffff\n")

	p := fs.scanner().platform.(*sysfsPlatform)
	start, _ = filepath.EvalSymlinks(start)
	dir, ok := p.findUSBDevice(start)
	if !ok {
		t.Fatal("findUSBDevice found nothing")
	}
	resolvedInner, _ := filepath.EvalSymlinks(inner)
	if dir != resolvedInner {
		t.Errorf("findUSBDevice() = %s, expected %s", dir, resolvedInner)
	}
}

func TestFindUSBDeviceIgnoresLinksOutsideRoot(t *testing.T) {
	fs := newFakeSystem(t)
	outside, _ := filepath.EvalSymlinks(t.TempDir())
	fs.writeFile(filepath.Join(outside, "idVendor"), "10c4\n")
	fs.writeFile(filepath.Join(outside, "idProduct"), "ea60\n")

	fs.addDevice("ttyUSB5")
	fs.link("ttyUSB5", outside)
	s := fs.scanner()

	if dir, ok := s.platform.(*sysfsPlatform).findUSBDevice(outside); ok {
		t.Errorf("findUSBDevice() = %s, expected no match outside the root", dir)
	}

	ep, ok := s.Describe("/dev/ttyUSB5")
	if !ok {
		t.Fatal("Describe(/dev/ttyUSB5) reported not found")
	}
	if ep.VendorID != "" || ep.Description != "USB Serial Device" {
		t.Errorf("attributes outside the root were read: %+v", ep)
	}
}

// TestUSBResetFormatting tests the USB path formatting logic
func TestUSBResetFormatting(t *testing.T) {
	tests := []struct {
		bus      int
		device   int
		expected string
	}{
		{5, 7, "005/007"},
		{1, 2, "001/002"},
		{123, 456, "123/456"},
		{1, 10, "001/010"},
	}

	for _, tt := range tests {
		formatted := formatUSBPath(tt.bus, tt.device)
		if formatted != tt.expected {
			t.Errorf("formatUSBPath(%d, %d) = %q, expected %q",
				tt.bus, tt.device, formatted, tt.expected)
		}
	}
}

func TestUSBAddress(t *testing.T) {
	if _, _, err := usbAddress(Endpoint{Name: "/dev/ttyS0"}); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("expected ErrUSBInfoNotAvailable, got %v", err)
	}
	if _, _, err := usbAddress(Endpoint{BusNumber: "x", DeviceNumber: "1"}); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("expected ErrUSBInfoNotAvailable, got %v", err)
	}
	bus, dev, err := usbAddress(Endpoint{BusNumber: "3", DeviceNumber: "12"})
	if err != nil || bus != 3 || dev != 12 {
		t.Errorf("usbAddress() = %d, %d, %v", bus, dev, err)
	}
}

// TestResetBySerialNotFound tests error handling when device not found
func TestResetBySerialNotFound(t *testing.T) {
	fs := newFakeSystem(t)
	err := fs.scanner().ResetBySerial("NONEXISTENT_SERIAL")
	if !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("Expected ErrEndpointNotFound, got: %v", err)
	}
}

func TestResetRequiresUSBAddress(t *testing.T) {
	fs := newFakeSystem(t)
	fs.addDevice("ttyS0")
	s := fs.scanner()

	if err := s.Reset("/dev/ttyS0"); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("Reset(ttyS0) error = %v, expected ErrUSBInfoNotAvailable", err)
	}
	if err := s.Reset("/dev/ttyUSB5"); !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("Reset(ttyUSB5) error = %v, expected ErrEndpointNotFound", err)
	}
}

func TestAccessible(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("permission probe is Linux only")
	}
	fs := newFakeSystem(t)
	fs.addDevice("ttyUSB0")
	s := fs.scanner()

	if !s.Accessible("/dev/ttyUSB0") {
		t.Error("expected /dev/ttyUSB0 to be accessible")
	}
	if s.Accessible("/dev/ttyUSB1") {
		t.Error("missing device should not be accessible")
	}
}
