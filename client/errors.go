package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired means the access token was rejected and could not
// be refreshed. Both tokens have already been cleared; the caller
// should send the user back to login.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a backend-reported failure: an HTTP error status carrying
// the human-readable detail message, surfaced verbatim to the user.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// newAPIError decodes the backend's {"detail": ...} envelope. Detail
// may be a string or, for validation errors, a structured payload; the
// latter is rendered as-is.
func newAPIError(status int, raw []byte) *APIError {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		apiErr.Detail = detail
	} else {
		apiErr.Detail = string(envelope.Detail)
	}
	return apiErr
}
