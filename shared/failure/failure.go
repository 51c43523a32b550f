package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var PermissionDenied = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to perform this action"}
var ConnectionError = &Failure{Code: http.StatusBadGateway, Message: "Unable to reach the server. Please check your connection and try again"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// upstream is satisfied by errors that carry the HTTP status of a backend response.
// A status of zero means no response was received.
type upstream interface {
	error
	StatusCode() int
}

// FromBackend maps a backend error onto a Failure. conflictMessage replaces the
// backend wording for 409 responses when it is not empty.
func FromBackend(err error, conflictMessage string) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	var up upstream
	if !errors.As(err, &up) {
		return InternalError(err)
	}

	switch code := up.StatusCode(); {
	case code == 0:
		return ConnectionError
	case code == http.StatusForbidden:
		return PermissionDenied
	case code == http.StatusConflict:
		if conflictMessage != "" {
			return Conflict(conflictMessage)
		}

		return Conflict(up.Error())
	case code == http.StatusUnprocessableEntity:
		return BadRequestFromString(up.Error())
	case code >= http.StatusInternalServerError:
		return &Failure{Code: http.StatusBadGateway, Message: up.Error()}
	default:
		return &Failure{Code: code, Message: up.Error()}
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
