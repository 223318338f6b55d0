package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes. Match with
// [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("credential not found")
	ErrConflict            = errors.New("credential conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
