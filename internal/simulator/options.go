// Package simulator implements an in-memory keyboard controller daemon model
// used by kontroll-sim for local development and by tests.
//
// The model mirrors the controller daemon contract the CLI depends on:
// discovery of a fixed set of keyboards, a single session binding, and
// per-keyboard layer, RGB LED, status LED and brightness state. Requests that
// touch the keyboard fail with ErrNoActiveBinding until something is bound.
//
// TIMED CHANGES:
// LED and status LED writes carry a sustain in milliseconds. Zero or negative
// holds the new value; a positive sustain restores the previous value once it
// elapses, unless a newer write to the same LED happened first.
package simulator

import (
	"fmt"

	"github.com/kontroll-dev/kontroll/internal/validate"
)

// Default model dimensions, roughly matching a split ergonomic keyboard.
const (
	DefaultKeyboardName    = "Voyager"
	DefaultLayers          = 4
	DefaultLEDs            = 52
	DefaultStatusLEDs      = 6
	DefaultBrightnessSteps = 10
)

// Options describes the simulated hardware.
type Options struct {
	Keyboards       []string `validate:"max=32"`        // Friendly names, ids are list positions
	Layers          int      `validate:"min=1,max=32"`  // Layers per keyboard
	LEDs            int      `validate:"min=1,max=256"` // RGB LEDs per keyboard
	StatusLEDs      int      `validate:"min=0,max=16"`  // Status LEDs per keyboard
	BrightnessSteps int      `validate:"min=1,max=255"` // Brightness levels above zero
}

// DefaultOptions returns a single default keyboard.
func DefaultOptions() Options {
	return Options{
		Keyboards:       []string{DefaultKeyboardName},
		Layers:          DefaultLayers,
		LEDs:            DefaultLEDs,
		StatusLEDs:      DefaultStatusLEDs,
		BrightnessSteps: DefaultBrightnessSteps,
	}
}

// Validate checks dimensions and keyboard names.
func (o Options) Validate() error {
	if err := validate.ValidateStruct(o); err != nil {
		return fmt.Errorf("invalid simulator options: %w", err)
	}

	for _, name := range o.Keyboards {
		if err := validate.KeyboardNameFormat(name); err != nil {
			return err
		}
	}

	return nil
}
