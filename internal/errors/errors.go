package errors

import (
	"errors"
	"net/http"
)

// Kind is the stable machine-readable failure class. Callers branch on
// kinds (or the predicates below), never on error text.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindAccessDenied   Kind = "access_denied"
	KindAlreadyDeleted Kind = "already_deleted"
	KindInternal       Kind = "internal"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Kind       Kind
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func Validation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest, Kind: KindValidation}
}

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound, Kind: KindNotFound}
}

func AccessDenied(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden, Kind: KindAccessDenied}
}

func Internal(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusInternalServerError, Kind: KindInternal}
}

// AlreadyDeleted keeps its own kind so a double soft delete is
// distinguishable from a plain miss, but surfaces as 404 over HTTP.
func AlreadyDeleted(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound, Kind: KindAlreadyDeleted}
}

func kindOf(err error) Kind {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool     { return kindOf(err) == KindValidation }
func IsNotFound(err error) bool       { return kindOf(err) == KindNotFound }
func IsAccessDenied(err error) bool   { return kindOf(err) == KindAccessDenied }
func IsAlreadyDeleted(err error) bool { return kindOf(err) == KindAlreadyDeleted }
