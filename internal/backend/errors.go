package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the portfolio API, translated
// into a typed value at the client boundary so callers never inspect
// raw response bodies.
type APIError struct {
	StatusCode int
	// Detail is the backend's human-readable error message, taken from
	// the {"detail": ...} body. Empty when the body was not decodable.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// detailBody matches the error envelope the backend returns. Detail is
// usually a string but can be structured for validation failures.
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseAPIError builds an APIError from a response status and body.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope detailBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		apiErr.Detail = detail
	} else {
		// Structured detail (e.g. field-level validation errors):
		// surface it verbatim rather than dropping it.
		apiErr.Detail = string(envelope.Detail)
	}
	return apiErr
}

// IsUnauthorized reports whether err is a 401 response from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 response from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ErrorMessage returns the most specific user-facing message for err:
// the backend's detail message when present, the error text for
// transport failures, or fallback when there is nothing better.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
