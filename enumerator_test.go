package discovery

import (
	"errors"
	"testing"

	"go.bug.st/serial/enumerator"
)

func newRegistryScanner(t *testing.T, ports []string, details []*enumerator.PortDetails, detailsErr error) *Scanner {
	t.Helper()
	s, err := NewScanner(
		WithSysfs(false),
		WithPortLister(staticLister(ports...)),
		WithDetailsLister(func() ([]*enumerator.PortDetails, error) {
			return details, detailsErr
		}),
	)
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	return s
}

func TestEnumeratorDescribe(t *testing.T) {
	s := newRegistryScanner(t, []string{"COM3", "COM4"}, []*enumerator.PortDetails{
		{Name: "COM3", IsUSB: true, VID: "0658", PID: "0200", SerialNumber: "ZW0001", Product: "UZB"},
		{Name: "COM4", IsUSB: false},
	}, nil)

	ep, ok := s.Describe("com3")
	if !ok {
		t.Fatal("Describe(com3) reported not found")
	}
	if ep.Name != "com3" {
		t.Errorf("Name = %q, expected the caller's spelling", ep.Name)
	}
	if ep.Description != "UZB (VID:0658 PID:0200)" {
		t.Errorf("Description = %q", ep.Description)
	}
	if ep.SerialNumber != "ZW0001" {
		t.Errorf("SerialNumber = %q", ep.SerialNumber)
	}

	ep, ok = s.Describe("COM4")
	if !ok {
		t.Fatal("Describe(COM4) reported not found")
	}
	if ep.Description != "Serial Port" || ep.VendorID != "" {
		t.Errorf("non-USB port should keep its default description, got %+v", ep)
	}

	if _, ok := s.Describe("COM9"); ok {
		t.Error("Describe(COM9) should report not found")
	}
}

func TestEnumeratorDetailsFailure(t *testing.T) {
	s := newRegistryScanner(t, []string{"COM3"}, nil, errors.New("access denied"))

	ep, ok := s.Describe("COM3")
	if !ok {
		t.Fatal("Describe(COM3) reported not found")
	}
	if ep.Description != "Serial Port" {
		t.Errorf("Description = %q, expected default", ep.Description)
	}
}

func TestEnumeratorList(t *testing.T) {
	s := newRegistryScanner(t, []string{"COM1", "COM3", "COM1"}, nil, nil)
	endpoints := s.List()
	if len(endpoints) != 2 {
		t.Fatalf("List() = %v, expected 2 unique endpoints", endpoints)
	}

	failing, err := NewScanner(WithSysfs(false),
		WithPortLister(func() ([]string, error) {
			return nil, errors.New("registry unavailable")
		}),
		WithDetailsLister(func() ([]*enumerator.PortDetails, error) {
			return nil, nil
		}))
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	endpoints = failing.List()
	if endpoints == nil || len(endpoints) != 0 {
		t.Errorf("List() = %v, expected empty non-nil slice", endpoints)
	}
}

func TestEnumeratorListQueriesRegistryOnce(t *testing.T) {
	var portCalls, detailCalls int
	s, err := NewScanner(WithSysfs(false),
		WithPortLister(func() ([]string, error) {
			portCalls++
			return []string{"COM1", "COM3", "COM4"}, nil
		}),
		WithDetailsLister(func() ([]*enumerator.PortDetails, error) {
			detailCalls++
			return []*enumerator.PortDetails{
				{Name: "COM3", IsUSB: true, VID: "0658", PID: "0200"},
			}, nil
		}))
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}

	endpoints := s.List()
	if len(endpoints) != 3 {
		t.Fatalf("List() = %v, expected 3 endpoints", endpoints)
	}
	if endpoints[1].VendorID != "0658" {
		t.Errorf("COM3 not enriched: %+v", endpoints[1])
	}
	if portCalls != 1 || detailCalls != 1 {
		t.Errorf("List() queried ports %d and details %d times, expected once each", portCalls, detailCalls)
	}
}
