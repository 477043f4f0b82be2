// Package controller provides the client side of the keyboard controller
// daemon contract used by the kontroll CLI.
//
// The controller daemon owns device discovery, the session binding (which
// keyboard is "connected") and all firmware I/O. This package never caches
// or infers any of that state: each Controller method is exactly one request
// and one reply, with no retries and no local substitution of one operation
// for another (BindAny never picks an id and calls Bind).
//
// TRANSPORT:
// Client speaks JSON over HTTP through go-resty, dialing either a unix socket
// (the default, in $XDG_RUNTIME_DIR) or a TCP address. Every request carries a
// User-Agent and an X-Request-ID so daemon logs can be correlated with
// `DEBUG=true kontroll ...` output.
//
// ERRORS:
// Failures are *Failure values whose Kind is one of the package sentinels
// (ErrDaemonUnreachable, ErrNoActiveBinding, ErrUnknownDevice,
// ErrDaemonRejected); match them with errors.Is. The message is the daemon's
// own text and is meant to be shown to the user verbatim.
package controller

import (
	"context"

	"github.com/kontroll-dev/kontroll/internal/color"
)

// Keyboard describes one device reported by discovery.
// Produced transiently by Discover; never persisted.
type Keyboard struct {
	ID           int    `json:"id"`
	FriendlyName string `json:"friendlyName"`
	IsConnected  bool   `json:"isConnected"`
}

// Controller is the narrow request/response interface to the controller
// daemon. Every method blocks until the daemon answers or ctx is done.
type Controller interface {
	// Discover lists keyboards in the daemon's order.
	Discover(ctx context.Context) ([]Keyboard, error)

	// Bind connects the session to the keyboard with the given id.
	Bind(ctx context.Context, id uint) error

	// BindAny connects to whichever keyboard the daemon selects.
	BindAny(ctx context.Context) error

	// Unbind releases the current binding, if any.
	Unbind(ctx context.Context) error

	// SetLayer switches the bound keyboard's active layer.
	SetLayer(ctx context.Context, index uint) error

	// SetLEDColor sets one RGB LED. A zero sustain holds the color until the
	// next change; otherwise the daemon reverts after sustain milliseconds.
	SetLEDColor(ctx context.Context, led uint, c color.Color, sustain int32) error

	// SetAllLEDColor sets every RGB LED in one request.
	SetAllLEDColor(ctx context.Context, c color.Color, sustain int32) error

	// SetStatusLED switches a status LED on or off.
	SetStatusLED(ctx context.Context, led uint, on bool, sustain int32) error

	// StepBrightness moves brightness one step up or down; the daemon clamps.
	StepBrightness(ctx context.Context, increase bool) error
}
