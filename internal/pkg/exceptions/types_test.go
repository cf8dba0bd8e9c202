package exceptions

import (
	"carehome-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrLoadSpecification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"Missing specification stays 404", ErrCareResourceNotFound(nil, constvars.ResourceSpecifications), constvars.StatusNotFound},
		{"Expired session stays 401", ErrSessionState("expired", "refresh"), constvars.StatusUnauthorized},
		{"Plain error becomes 502", errors.New("connection reset"), constvars.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrLoadSpecification(tt.cause)

			assert.Equal(t, tt.wantStatus, err.StatusCode)
			assert.Equal(t, constvars.ErrClientFailedToLoadSpecification, err.ClientMessage)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestStatusCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("listing: %w", ErrCareForbidden(nil, constvars.ResourcePatients))

	assert.Equal(t, constvars.StatusForbidden, StatusCodeOf(wrapped))
	assert.Equal(t, 0, StatusCodeOf(errors.New("plain")))
	assert.Equal(t, 0, StatusCodeOf(nil))
}

func TestErrCareValidation(t *testing.T) {
	err := ErrCareValidation(errors.New("name is required"), constvars.ResourcePatients)
	assert.Equal(t, "name is required", err.ClientMessage)
	assert.Equal(t, constvars.StatusBadRequest, err.StatusCode)

	err = ErrCareValidation(nil, constvars.ResourcePatients)
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, err.ClientMessage)
}

func TestBuildNewCustomErrorLocation(t *testing.T) {
	err := ErrCannotParseJSON(errors.New("unexpected EOF"))

	assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomErrorLocation")
	assert.Equal(t, "cannot parse JSON: unexpected EOF", err.DevMessage)
}
