package models

import "errors"

// ErrInvalidInput is wrapped by every validation failure in this module.
var ErrInvalidInput = errors.New("invalid input")
