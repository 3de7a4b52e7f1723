package gcp

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"

	"landrecords/internal/domain"
)

// Classify maps an error returned by a google.golang.org/api call onto the
// domain error taxonomy: HTTP errors reported by the service become APIError,
// everything else (dial, TLS, deadline) becomes TransportError.
func Classify(service string, err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusRequestTimeout || gerr.Code == http.StatusGatewayTimeout {
			return domain.NewTransportError(service, err)
		}
		msg := gerr.Message
		if msg == "" {
			msg = strings.TrimSpace(gerr.Body)
		}
		return domain.NewAPIError(service, gerr.Code, msg)
	}
	return domain.NewTransportError(service, err)
}
