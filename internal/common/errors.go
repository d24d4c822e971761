package common

import "errors"

// ErrMissingField reports a required form field left empty.
var ErrMissingField = errors.New("missing required field")
