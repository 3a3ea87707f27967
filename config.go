package discovery

import (
	"path/filepath"
	"runtime"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"
)

// PortLister returns the names reported by the operating system's serial
// device enumeration.
type PortLister func() ([]string, error)

// DetailsLister returns per-port USB details from the operating system.
type DetailsLister func() ([]*enumerator.PortDetails, error)

// Config holds the configuration for a Scanner
type Config struct {
	Root          string // Filesystem root for /dev and /sys lookups
	Sysfs         bool   // Use the sysfs strategy instead of the OS enumerator
	PortLister    PortLister
	DetailsLister DetailsLister
	Logger        *zap.Logger
}

// Option is a functional option for configuring a Scanner
type Option func(*Config) error

// HasSysfs reports whether the running platform exposes a sysfs device tree.
func HasSysfs() bool {
	return runtime.GOOS == "linux"
}

// DefaultConfig returns a configuration for the running platform
func DefaultConfig() Config {
	return Config{
		Root:   "/",
		Sysfs:  HasSysfs(),
		Logger: zap.NewNop(),
	}
}

// WithRoot sets the directory under which /dev and /sys are resolved.
// Endpoint names keep their absolute form.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" || !filepath.IsAbs(dir) {
			return ErrInvalidConfig
		}
		c.Root = filepath.Clean(dir)
		return nil
	}
}

// WithSysfs forces the sysfs (true) or OS enumerator (false) strategy
func WithSysfs(enabled bool) Option {
	return func(c *Config) error {
		c.Sysfs = enabled
		return nil
	}
}

// WithPortLister replaces the primary OS enumeration
func WithPortLister(fn PortLister) Option {
	return func(c *Config) error {
		if fn == nil {
			return ErrInvalidConfig
		}
		c.PortLister = fn
		return nil
	}
}

// WithDetailsLister replaces the detailed enumerator used for USB metadata
// when sysfs is not available
func WithDetailsLister(fn DetailsLister) Option {
	return func(c *Config) error {
		if fn == nil {
			return ErrInvalidConfig
		}
		c.DetailsLister = fn
		return nil
	}
}

// WithLogger sets the logger used for swallowed OS errors
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return ErrInvalidConfig
		}
		c.Logger = logger
		return nil
	}
}
