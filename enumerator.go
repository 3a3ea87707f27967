package discovery

import (
	"strings"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"
)

// enumeratorPlatform discovers endpoints through the operating system's
// serial port registry (Windows registry, IOKit on macOS).
type enumeratorPlatform struct {
	listPorts   PortLister
	listDetails DetailsLister
	log         *zap.Logger
}

func (p *enumeratorPlatform) candidates() []string {
	names, err := p.listPorts()
	if err != nil {
		p.log.Debug("Port enumeration failed", zap.Error(err))
	}
	return names
}

// exists reports membership in the registry, ignoring case.
func (p *enumeratorPlatform) exists(name string) bool {
	for _, candidate := range p.candidates() {
		if strings.EqualFold(candidate, name) {
			return true
		}
	}
	return false
}

func (p *enumeratorPlatform) enrich(ep *Endpoint) {
	details, err := p.listDetails()
	if err != nil {
		p.log.Debug("Detailed port enumeration failed", zap.Error(err))
		return
	}

	for _, d := range details {
		if d == nil || !d.IsUSB || !strings.EqualFold(d.Name, ep.Name) {
			continue
		}
		ep.applyUSB(usbMetadata{
			vendorID:  d.VID,
			productID: d.PID,
			product:   d.Product,
			serial:    d.SerialNumber,
		})
		return
	}
}

// snapshot queries the registry once and answers from the results.
func (p *enumeratorPlatform) snapshot() platform {
	names, namesErr := p.listPorts()
	details, detailsErr := p.listDetails()
	return &enumeratorPlatform{
		listPorts: func() ([]string, error) {
			return names, namesErr
		},
		listDetails: func() ([]*enumerator.PortDetails, error) {
			return details, detailsErr
		},
		log: p.log,
	}
}

// The registry already reports every port it knows about.
func (p *enumeratorPlatform) supplementary() []string {
	return nil
}
