package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		ErrMissingToken:        http.StatusUnauthorized,
		ErrInvalidState:        http.StatusBadRequest,
		ErrTokenExchange:       http.StatusBadGateway,
		ErrNoAdAccountSelected: http.StatusBadRequest,
		ErrInvalidCronSecret:   http.StatusUnauthorized,
		ErrMetaRateLimited:     http.StatusTooManyRequests,
		ErrMetaUnavailable:     http.StatusServiceUnavailable,
		ErrMissingConfig:       http.StatusServiceUnavailable,
		"UNKNOWN":              http.StatusInternalServerError,
	}

	for code, expected := range tests {
		assert.Equal(t, expected, StatusFor(code), code)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMetaAPI, "Invalid parameter", map[string]any{"code": 100})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMetaAPI, body.Code)
	assert.Equal(t, "Invalid parameter", body.Message)
	assert.Equal(t, map[string]any{"code": float64(100)}, body.Details)
}

func TestWriteError_OmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMissingToken, "", nil)

	assert.JSONEq(t, `{"code":"AUTH_001"}`, rec.Body.String())
}
