package pkg

import "fmt"

// AppError is the domain error carried from use cases up to the HTTP layer.
//
// Handlers map sentinel errors into an AppError and serialize it with
// ToHTTPError; the HTTP status never leaks into domain packages.

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the wire shape returned to API clients on failure.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}
