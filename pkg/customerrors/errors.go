package customerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type BusinessError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
}

// Is matches on code so detailed copies still compare equal to their sentinel.
func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of e carrying per-field messages.
func (e *BusinessError) WithDetails(details map[string]string) *BusinessError {
	return &BusinessError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

var (
	ErrUnauthorized        = NewBusinessError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewBusinessError(http.StatusForbidden, "forbidden")
	ErrInvalidParams       = NewBusinessError(http.StatusBadRequest, "invalid params")
	ErrNotFound            = NewBusinessError(http.StatusNotFound, "resource not found")
	ErrUpstreamRejected    = NewBusinessError(http.StatusNotAcceptable, "request rejected by upstream service")
	ErrInternalServerError = NewBusinessError(http.StatusInternalServerError, "internal server error")
	ErrUpstreamUnavailable = NewBusinessError(http.StatusBadGateway, "upstream service unavailable")
)

func GetBusinessError(err error) *BusinessError {
	if err == nil {
		return nil
	}
	var businessErr *BusinessError
	if errors.As(err, &businessErr) {
		return businessErr
	}
	return nil
}
