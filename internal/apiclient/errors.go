package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/models"
)

// Error is the single failure shape of every backend call. StatusCode is 0
// when no response was received.
type Error struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StatusOf reports the backend status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return models.DefaultErrorMessage
}

func transportError(cause error) *Error {
	return &Error{Message: models.DefaultErrorMessage, cause: cause}
}

// responseError extracts {"message": "..."} from a failed response body.
func responseError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	msg := models.DefaultErrorMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			msg = m
		}
	}
	return &Error{StatusCode: status, Message: msg}
}
