package except

import (
	"fmt"
	"net/http"

	"k8s.io/apimachinery/pkg/api/errors"
)

type ErrorReason string

const (
	ErrNotFound      ErrorReason = "NotFound"
	ErrConflict      ErrorReason = "Conflict"
	ErrInternalError ErrorReason = "InternalError"
	ErrUnsupported   ErrorReason = "Unsupported"
	ErrAlreadyExists ErrorReason = "AlreadyExists"
	ErrTimeout       ErrorReason = "Timeout"
	ErrInvalid       ErrorReason = "Invalid"
	ErrBatch         ErrorReason = "Batch"
)

type ReasonedError interface {
	error
	Reason() ErrorReason
}

type hueError struct {
	ErrReason ErrorReason
	Message   string
}

func (s *hueError) Error() string {
	return s.Message
}

func (s *hueError) Reason() ErrorReason {
	return s.ErrReason
}

func Reason(err error) ErrorReason {
	if err != nil {
		if v, ok := err.(ReasonedError); ok {
			return v.Reason()
		}
	}
	return ErrInternalError
}

func ToHttpStatus(err error) int {
	if errors.IsNotFound(err) {
		return http.StatusNotFound
	} else if errors.IsAlreadyExists(err) {
		return http.StatusBadRequest
	} else {
		switch Reason(err) {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrAlreadyExists, ErrUnsupported, ErrConflict, ErrInvalid, ErrBatch:
			return http.StatusBadRequest
		case ErrTimeout:
			return http.StatusRequestTimeout
		default:
			return http.StatusInternalServerError
		}
	}
}

func NewError(msg string, reason ErrorReason, args ...interface{}) error {
	return &hueError{
		ErrReason: reason,
		Message:   fmt.Sprintf(msg, args...),
	}
}
