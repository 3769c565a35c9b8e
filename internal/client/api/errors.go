package api

import (
	"github.com/dmitrijs2005/userdir/internal/common"
)

// RemoteError is the single failure shape of the gateway: a transport-level
// failure or a non-success response. Message holds the service-supplied
// error when present and the generic fallback otherwise.
type RemoteError struct {
	// StatusCode is the HTTP status of the response, or 0 when the request
	// never produced one.
	StatusCode int
	Message    string

	err error
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause (e.g. a net error), when any.
func (e *RemoteError) Unwrap() error {
	return e.err
}

// transportError wraps a failure that happened before any response arrived.
func transportError(err error) *RemoteError {
	return &RemoteError{Message: common.ErrRemoteCallFailed.Error(), err: err}
}

// statusError builds the error for a non-2xx response. serviceMsg is the
// {"error": ...} body field, possibly empty.
func statusError(code int, serviceMsg string) *RemoteError {
	msg := serviceMsg
	if msg == "" {
		msg = common.ErrRemoteCallFailed.Error()
	}
	return &RemoteError{StatusCode: code, Message: msg}
}
