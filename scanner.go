package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"
)

// platform confines every OS-specific discovery decision.
type platform interface {
	// candidates returns names from the primary OS enumeration.
	candidates() []string
	// exists reports whether name refers to a present endpoint.
	exists(name string) bool
	// enrich adds hardware metadata to ep, best effort.
	enrich(ep *Endpoint)
	// supplementary returns extra candidates the primary enumeration misses.
	supplementary() []string
	// snapshot returns a platform whose OS queries are answered once, for
	// the duration of one List call.
	snapshot() platform
}

// Scanner discovers and describes serial endpoints.
//
// A Scanner holds configuration only. Every call queries the operating
// system again, so it is safe for concurrent use and never returns stale
// data. OS errors are logged at debug level and otherwise ignored: callers
// get the best partial answer instead of a failure.
type Scanner struct {
	config   Config
	platform platform
	log      *zap.Logger
}

// NewScanner creates a Scanner for the running platform
func NewScanner(opts ...Option) (*Scanner, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	s := &Scanner{
		config: config,
		log:    config.Logger.With(zap.String("component", "discovery")),
	}

	if config.Sysfs {
		s.platform = newSysfsPlatform(config.Root, config.PortLister, s.log)
	} else {
		lister := config.PortLister
		if lister == nil {
			lister = serial.GetPortsList
		}
		details := config.DetailsLister
		if details == nil {
			details = enumerator.GetDetailedPortsList
		}
		s.platform = &enumeratorPlatform{
			listPorts:   lister,
			listDetails: details,
			log:         s.log,
		}
	}

	return s, nil
}

// Root returns the filesystem root the scanner resolves device paths under
func (s *Scanner) Root() string {
	return s.config.Root
}

// DeviceDir returns the directory device nodes appear in, or "" when the
// platform has no device directory worth watching.
func (s *Scanner) DeviceDir() string {
	if !s.config.Sysfs {
		return ""
	}
	return filepath.Join(s.config.Root, "dev")
}

// List returns every endpoint currently present. The result is never nil
// and contains no duplicate names.
func (s *Scanner) List() []Endpoint {
	endpoints := make([]Endpoint, 0)
	seen := make(map[string]struct{})
	p := s.platform.snapshot()

	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		ep, ok := describe(p, name)
		if !ok {
			return
		}
		seen[ep.Name] = struct{}{}
		endpoints = append(endpoints, ep)
	}

	for _, name := range p.candidates() {
		add(name)
	}
	for _, name := range p.supplementary() {
		add(name)
	}

	s.log.Debug("Listed endpoints", zap.Int("count", len(endpoints)))
	return endpoints
}

// Describe returns the descriptor for name. The boolean is false when the
// name is blank or does not correspond to a present endpoint.
func (s *Scanner) Describe(name string) (Endpoint, bool) {
	return describe(s.platform, name)
}

func describe(p platform, name string) (Endpoint, bool) {
	if strings.TrimSpace(name) == "" {
		return Endpoint{}, false
	}
	if !p.exists(name) {
		return Endpoint{}, false
	}

	ep := newEndpoint(name)
	p.enrich(&ep)
	return ep, true
}

// Accessible reports whether the current user may open the endpoint for
// reading and writing.
func (s *Scanner) Accessible(name string) bool {
	if s.config.Sysfs {
		return accessible(filepath.Join(s.config.Root, name))
	}
	return accessible(name)
}

// defaultScanner is used by the package-level helpers.
func defaultScanner() *Scanner {
	s, _ := NewScanner()
	return s
}

// ListEndpoints returns the endpoints present on this system
func ListEndpoints() []Endpoint {
	return defaultScanner().List()
}

// DescribeEndpoint returns the descriptor for a single endpoint
func DescribeEndpoint(name string) (Endpoint, bool) {
	return defaultScanner().Describe(name)
}
