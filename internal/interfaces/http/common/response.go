package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/twentymincoach/api/internal/domain"
)

// ErrBadRequest marks malformed client input that has no domain meaning (bad JSON, wrong types).
var ErrBadRequest = errors.New("bad request")

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Warn("JSON エンコードに失敗", zap.Error(err))
	}
}

// WriteMessage writes {"error": message}.
func WriteMessage(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, map[string]string{"error": message})
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes the mapped status. Client errors echo the error text;
// server errors are logged and replaced by fallback.
func WriteError(logger *zap.Logger, w http.ResponseWriter, err error, fallback string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.Error(fallback, zap.Error(err))
		}
		WriteMessage(logger, w, status, fallback)
		return
	}
	WriteMessage(logger, w, status, err.Error())
}

// DecodeJSON reads a size-limited JSON body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrBadRequest, err)
	}
	return nil
}
