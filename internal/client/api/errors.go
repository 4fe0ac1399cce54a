package api

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrRejected          = errors.New("request rejected")
)

// RejectedError carries the message of a well-formed "status": false
// response so it can be shown to the user verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return e.Message
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// IsTokenExpired reports whether a failure response means the session token
// is no longer valid. The API has no error code for this, so any failure
// whose message mentions "token" (case-insensitive) counts.
func IsTokenExpired(status bool, msg string) bool {
	return !status && strings.Contains(strings.ToLower(msg), "token")
}
