package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const connectionFailureMessage = "unable to connect to server, check your connection"

// Error is returned for every failed backend call. Status is zero when no
// response was received at all.
type Error struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status of the failed response.
func (e *Error) StatusCode() int {
	return e.Status
}

// IsStatus reports whether err is a backend Error with the given status.
func IsStatus(err error, status int) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Status == status
	}

	return false
}

func newConnectionError() *Error {
	return &Error{Message: connectionFailureMessage}
}

// newResponseError builds an Error from a non-2xx response body, preferring the
// body's "message" then "error" fields.
func newResponseError(status int, body []byte) *Error {
	return &Error{
		Status:  status,
		Message: messageFromBody(status, body),
		Body:    rawOrNil(body),
	}
}

func messageFromBody(status int, body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		for _, candidate := range []json.RawMessage{payload.Message, payload.Error} {
			if text := textOf(candidate); text != "" {
				return text
			}
		}
	}

	return fmt.Sprintf("HTTP %d", status)
}

// textOf accepts a plain string or an object carrying a message.
func textOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return strings.TrimSpace(nested.Message)
	}

	return ""
}

func rawOrNil(body []byte) json.RawMessage {
	if !json.Valid(body) {
		if len(body) == 0 {
			return nil
		}

		quoted, _ := json.Marshal(string(body))

		return quoted
	}

	return json.RawMessage(body)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
