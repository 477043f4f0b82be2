// Package resolver translates a single user intent into exactly one
// controller daemon request and reports the outcome.
//
// This is the only decision-making layer of kontroll. The command surface
// builds one Intent per invocation from flags; Execute validates what can be
// validated locally (colors), invokes the matching Controller method once and
// turns the result into an Outcome. Nothing is cached between invocations:
// which keyboard is bound, how many layers or LEDs it has and how far
// brightness can go are all the daemon's business.
//
// INTENTS:
// Intent is a closed set. Each variant carries only the arguments its
// operation needs; the unexported marker method keeps other packages from
// adding variants the resolver does not know how to execute.
package resolver

// Intent is one discrete user command.
type Intent interface {
	// Name is the command name the intent was built from.
	Name() string

	intent()
}

// List enumerates discovered keyboards.
type List struct{}

// Connect binds the session to the keyboard with the given id.
type Connect struct {
	Index uint
}

// ConnectAny binds whichever keyboard the daemon selects.
type ConnectAny struct{}

// Disconnect releases the current binding.
type Disconnect struct{}

// SetLayer switches the bound keyboard to layer Index.
type SetLayer struct {
	Index uint
}

// SetRGBLED sets one LED. Color is the text as typed and is decoded by Execute.
// Sustain 0 holds the color; any other value is a duration in milliseconds.
type SetRGBLED struct {
	LED     uint
	Color   string
	Sustain int32
}

// SetRGBAll sets every LED in one request.
type SetRGBAll struct {
	Color   string
	Sustain int32
}

// SetStatusLED switches a status LED. Off mirrors the --off flag.
type SetStatusLED struct {
	LED     uint
	Off     bool
	Sustain int32
}

// AdjustBrightness steps brightness once in the given direction.
type AdjustBrightness struct {
	Increase bool
}

func (List) Name() string         { return "list" }
func (Connect) Name() string      { return "connect" }
func (ConnectAny) Name() string   { return "connect-any" }
func (Disconnect) Name() string   { return "disconnect" }
func (SetLayer) Name() string     { return "set-layer" }
func (SetRGBLED) Name() string    { return "set-rgb" }
func (SetRGBAll) Name() string    { return "set-rgb-all" }
func (SetStatusLED) Name() string { return "set-status-led" }

func (a AdjustBrightness) Name() string {
	if a.Increase {
		return "increase-brightness"
	}
	return "decrease-brightness"
}

func (List) intent()             {}
func (Connect) intent()          {}
func (ConnectAny) intent()       {}
func (Disconnect) intent()       {}
func (SetLayer) intent()         {}
func (SetRGBLED) intent()        {}
func (SetRGBAll) intent()        {}
func (SetStatusLED) intent()     {}
func (AdjustBrightness) intent() {}
