package port

import "landrecords/internal/domain"

// CapabilityReporter is implemented by adapters whose availability depends on configuration.
type CapabilityReporter interface {
	Capability() domain.Capability
}

// ImagePreprocessor normalizes a scanned image before recognition.
type ImagePreprocessor interface {
	Process(raw []byte) ([]byte, error)
}
