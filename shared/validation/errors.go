package validation

import "errors"

// ErrFormTooLarge is returned when a submitted form exceeds the body limit
var ErrFormTooLarge = errors.New("form too large")

// ErrUnparsableForm is returned when the request body is not a valid form encoding
var ErrUnparsableForm = errors.New("unparsable form")
