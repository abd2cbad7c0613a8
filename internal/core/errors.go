package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeInvalidName       = "invalid_name"
	ErrCodeNameRequired      = "name_required"
	ErrCodeUnknownChannel    = "unknown_channel"
	ErrCodeUnknownRoom       = "unknown_room"
	ErrCodeUnknownConnection = "unknown_connection"
	ErrCodeBadRequest        = "bad_request"
)

// ErrUnknownConnection marks a lookup for a connection with no session.
// It is a bookkeeping failure, never surfaced to clients.
var ErrUnknownConnection = errors.New("unknown connection")

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
