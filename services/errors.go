package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a service failure so controllers can map it to an
// HTTP status in one place.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindPermissionDenied
	KindNotFound
	KindConflict
	KindStorageFailure
)

// ServiceError is the terminal result of a failed operation. None of the
// kinds are retried by the services themselves.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

func validationError(message string) error {
	return &ServiceError{Kind: KindValidation, Message: message}
}

func permissionDenied(message string) error {
	return &ServiceError{Kind: KindPermissionDenied, Message: message}
}

func notFound(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func conflict(message string) error {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func storageFailure(err error) error {
	return &ServiceError{Kind: KindStorageFailure, Message: "storage failure", Err: err}
}

// AsServiceError extracts a ServiceError from err, if there is one.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
