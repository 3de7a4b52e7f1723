package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"landrecords/internal/domain"
	"landrecords/internal/service"
	"landrecords/mocks"
)

func TestCapabilityService_ReportsInOrder(t *testing.T) {
	summarizer := new(mocks.MockSummarizer)
	summarizer.On("Capability").Return(domain.Capability{Name: "summarizer", Reason: "gemini api key is not set"})

	svc := service.NewCapabilityService(identityTranslator{}, summarizer)
	caps := svc.Capabilities()

	assert.Len(t, caps, 2)
	assert.Equal(t, "translation", caps[0].Name)
	assert.True(t, caps[0].Available)
	assert.False(t, caps[1].Available)
	assert.NotEmpty(t, caps[1].Reason)
}
