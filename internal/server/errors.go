package server

import "errors"

var errNoHandlersProvided = errors.New("server needs an HTTP handler")
