package resolver

import (
	"context"
	"fmt"

	"github.com/kontroll-dev/kontroll/internal/color"
	"github.com/kontroll-dev/kontroll/internal/controller"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/samber/lo"
)

// Outcome is the result of a successful intent.
// Keyboards is only set for List; Message is empty for List.
type Outcome struct {
	Intent    string                `json:"intent"`
	Message   string                `json:"message,omitempty"`
	Keyboards []controller.Keyboard `json:"keyboards,omitempty"`
}

// Lines returns the user-facing output lines: one per keyboard for List,
// otherwise the single confirmation message.
func (o *Outcome) Lines() []string {
	if o.Intent == (List{}).Name() {
		return lo.Map(o.Keyboards, func(kb controller.Keyboard, _ int) string {
			return FormatKeyboard(kb)
		})
	}
	return []string{o.Message}
}

// FormatKeyboard renders one discovery line: "{id}: {name} (connected)" for
// the bound keyboard and "{id}: {name} " otherwise.
func FormatKeyboard(kb controller.Keyboard) string {
	return fmt.Sprintf("%d: %s %s", kb.ID, kb.FriendlyName, lo.Ternary(kb.IsConnected, "(connected)", ""))
}

// Resolver executes intents against a Controller.
type Resolver struct {
	ctrl controller.Controller
}

// New returns a Resolver bound to ctrl.
func New(ctrl controller.Controller) *Resolver {
	return &Resolver{ctrl: ctrl}
}

// Execute runs one intent. Local validation failures (colors) return before
// any daemon request; daemon failures are returned as-is.
func (r *Resolver) Execute(ctx context.Context, intent Intent) (*Outcome, error) {
	logging.Debug("Executing %s intent: %+v", intent.Name(), intent)

	outcome := &Outcome{Intent: intent.Name()}

	switch in := intent.(type) {
	case List:
		keyboards, err := r.ctrl.Discover(ctx)
		if err != nil {
			return nil, err
		}
		outcome.Keyboards = keyboards

	case Connect:
		if err := r.ctrl.Bind(ctx, in.Index); err != nil {
			return nil, err
		}
		outcome.Message = fmt.Sprintf("Connected to keyboard %d", in.Index)

	case ConnectAny:
		if err := r.ctrl.BindAny(ctx); err != nil {
			return nil, err
		}
		outcome.Message = "Connected to the first keyboard detected by the controller"

	case Disconnect:
		if err := r.ctrl.Unbind(ctx); err != nil {
			return nil, err
		}
		outcome.Message = "Disconnected from the currently connected keyboard"

	case SetLayer:
		if err := r.ctrl.SetLayer(ctx, in.Index); err != nil {
			return nil, err
		}
		outcome.Message = fmt.Sprintf("Layer set to %d", in.Index)

	case SetRGBLED:
		c, err := color.Parse(in.Color)
		if err != nil {
			return nil, err
		}
		if err := r.ctrl.SetLEDColor(ctx, in.LED, c, in.Sustain); err != nil {
			return nil, err
		}
		outcome.Message = fmt.Sprintf("LED %d set to color %s", in.LED, in.Color)

	case SetRGBAll:
		c, err := color.Parse(in.Color)
		if err != nil {
			return nil, err
		}
		if err := r.ctrl.SetAllLEDColor(ctx, c, in.Sustain); err != nil {
			return nil, err
		}
		outcome.Message = fmt.Sprintf("All LEDs set to color %s", in.Color)

	case SetStatusLED:
		on := statusLEDOn(in.Off)
		if err := r.ctrl.SetStatusLED(ctx, in.LED, on, in.Sustain); err != nil {
			return nil, err
		}
		outcome.Message = fmt.Sprintf("Status LED %d turned %s", in.LED, lo.Ternary(on, "on", "off"))

	case AdjustBrightness:
		if err := r.ctrl.StepBrightness(ctx, in.Increase); err != nil {
			return nil, err
		}
		outcome.Message = "Brightness " + lo.Ternary(in.Increase, "increased", "decreased")

	default:
		return nil, fmt.Errorf("unsupported intent %T", intent)
	}

	return outcome, nil
}

// statusLEDOn converts the --off flag into the daemon's on/off value.
// This is the only place the inversion happens.
func statusLEDOn(off bool) bool {
	return !off
}
