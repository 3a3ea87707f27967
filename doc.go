// Package discovery locates and describes serial endpoints that a Z-Wave
// controller can be reached through, before any session is opened.
//
// # Basic Usage
//
// List the endpoints present on the system:
//
//	for _, ep := range discovery.ListEndpoints() {
//	    fmt.Println(ep.DisplayName())
//	}
//
// Describe a single endpoint:
//
//	ep, ok := discovery.DescribeEndpoint("/dev/ttyUSB0")
//	if !ok {
//	    // unplugged or mistyped, not an error
//	}
//	fmt.Printf("%s VID=%s PID=%s\n", ep.Name, ep.VendorID, ep.ProductID)
//
// Check the shape of a user-supplied name without touching the system:
//
//	discovery.ValidName("COM3")         // true
//	discovery.ValidName("/dev/invalid") // true, existence is not checked
//	discovery.ValidName("ttyUSB0")      // false
//
// # Scanner Options
//
// Use functional options for custom configuration:
//
//	scanner, err := discovery.NewScanner(
//	    discovery.WithLogger(logger),
//	    discovery.WithRoot("/mnt/target"),
//	)
//
// # Failure Policy
//
// Hardware enumeration favours availability over completeness. Permission
// problems, missing directories and unreadable metadata are logged at debug
// level and otherwise ignored: List returns whatever it could collect and
// Describe returns a descriptor with the fields it could populate. A
// missing endpoint is reported through the boolean result, not an error.
//
// # Platform Support
//
// On Linux, endpoints are found in /dev and enriched from sysfs by walking
// from /sys/class/tty/<name>/device up to the owning USB device. Other
// platforms use the operating system's port registry through go.bug.st/serial.
package discovery
