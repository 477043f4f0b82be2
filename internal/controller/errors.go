package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Failure kinds reported by the controller daemon or the transport.
var (
	// ErrDaemonUnreachable means the daemon could not be contacted at all.
	ErrDaemonUnreachable = errors.New("controller daemon unreachable")

	// ErrNoActiveBinding means a keyboard operation was sent with no keyboard connected.
	ErrNoActiveBinding = errors.New("no keyboard connected")

	// ErrUnknownDevice means a connect request named an id discovery does not report.
	ErrUnknownDevice = errors.New("unknown keyboard")

	// ErrDaemonRejected means the daemon understood the request but declined it.
	ErrDaemonRejected = errors.New("request rejected by controller daemon")
)

// Error codes carried in the "code" field of daemon error replies.
const (
	CodeNoActiveBinding   = "no_active_binding"
	CodeUnknownDevice     = "unknown_device"
	CodeNoDeviceAvailable = "no_device_available"
	CodeRejected          = "rejected"
)

// Failure is a displayable controller error.
// Message is shown to the user as-is; Kind classifies it for errors.Is.
type Failure struct {
	Kind    error
	Message string
}

// Error returns the daemon-supplied message.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap exposes the failure kind.
func (f *Failure) Unwrap() error {
	return f.Kind
}

// unreachable builds a transport failure for the given endpoint.
func unreachable(endpoint string, err error) *Failure {
	return &Failure{
		Kind:    ErrDaemonUnreachable,
		Message: fmt.Sprintf("failed to connect to controller daemon at %s: %v", endpoint, err),
	}
}

// failureFromReply classifies an error reply body.
// The code field wins; the HTTP status is only consulted when the daemon
// sent no code.
func failureFromReply(status int, reply gjson.Result) *Failure {
	code := reply.Get("code").String()
	message := reply.Get("message").String()
	if message == "" {
		message = fmt.Sprintf("controller daemon request failed with status %d", status)
	}

	return &Failure{Kind: kindFor(code, status), Message: message}
}

func kindFor(code string, status int) error {
	switch code {
	case CodeNoActiveBinding:
		return ErrNoActiveBinding
	case CodeUnknownDevice:
		return ErrUnknownDevice
	case CodeNoDeviceAvailable, CodeRejected:
		return ErrDaemonRejected
	case "":
		switch status {
		case http.StatusNotFound:
			return ErrUnknownDevice
		case http.StatusConflict:
			return ErrNoActiveBinding
		}
	}
	return ErrDaemonRejected
}
