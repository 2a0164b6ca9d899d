package adapter

import "errors"

// Errors returned for non-2xx responses. The server message is appended to
// the wrapped error text.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrServer           = errors.New("server error")

	ErrNoToken = errors.New("no bearer token set, log in first")
)
