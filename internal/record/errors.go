package record

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a failure reported by the record store, carrying the remote
// status code and, for validation failures, the per-field error data.
type StatusError struct {
	Status  int
	Message string
	Data    map[string]any
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("record store: %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("record store: %d", e.Status)
}

// IsNotFound reports whether err is the record store's not-found response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}

// HasFieldError reports whether err is a validation failure that names the
// given field. The seeding utility uses this as a duplicate-value heuristic.
func HasFieldError(err error, field string) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadRequest {
		return false
	}

	_, found := statusErr.Data[field]
	return found
}
