package service

import (
	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// CapabilityService reports which external engines are usable.
type CapabilityService interface {
	Capabilities() []domain.Capability
}

type capabilityService struct {
	reporters []port.CapabilityReporter
}

// NewCapabilityService creates a CapabilityService over the given adapters.
// Availability is decided once when each adapter is constructed.
func NewCapabilityService(reporters ...port.CapabilityReporter) CapabilityService {
	return &capabilityService{reporters: reporters}
}

func (s *capabilityService) Capabilities() []domain.Capability {
	out := make([]domain.Capability, 0, len(s.reporters))
	for _, r := range s.reporters {
		out = append(out, r.Capability())
	}
	return out
}
