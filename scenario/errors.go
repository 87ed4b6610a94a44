package scenario

import "errors"

var (
	// ErrUnknownKind indicates an item whose kind is not recognized.
	ErrUnknownKind = errors.New("scenario: unknown item kind")

	// ErrMissingField indicates an item lacks a parameter its kind requires.
	ErrMissingField = errors.New("scenario: missing required field")
)
