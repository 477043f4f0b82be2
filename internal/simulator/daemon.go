package simulator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kontroll-dev/kontroll/internal/color"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/samber/lo"
)

// Failure kinds returned by Daemon operations. The HTTP layer maps each to
// an error code on the wire.
var (
	ErrNoActiveBinding   = errors.New("no keyboard connected")
	ErrUnknownDevice     = errors.New("unknown keyboard")
	ErrNoDeviceAvailable = errors.New("no keyboard available")
	ErrRejected          = errors.New("request rejected")
)

// Keyboard is the discovery view of one simulated device.
type Keyboard struct {
	ID           int    `json:"id"`
	FriendlyName string `json:"friendlyName"`
	IsConnected  bool   `json:"isConnected"`
}

// State is a snapshot of the bound keyboard.
type State struct {
	Keyboard   Keyboard `json:"keyboard"`
	Layer      int      `json:"layer"`
	Brightness int      `json:"brightness"`
	LEDs       []string `json:"leds"`
	StatusLEDs []bool   `json:"statusLeds"`
}

// device holds the mutable state of one simulated keyboard.
// Generation counters let a pending revert detect that a newer write won.
type device struct {
	name       string
	layer      int
	brightness int
	leds       []color.Color
	ledGen     []uint64
	status     []bool
	statusGen  []uint64
}

// stopper is the part of *time.Timer the daemon needs.
type stopper interface {
	Stop() bool
}

// Daemon is the in-memory controller daemon. Safe for concurrent use.
type Daemon struct {
	mu      sync.Mutex
	opts    Options
	devices []*device
	bound   int // index into devices, -1 when unbound
	pending map[stopper]struct{}

	// afterFunc schedules reverts; replaced in tests for deterministic timing
	afterFunc func(d time.Duration, f func()) stopper
}

// NewDaemon builds a daemon from validated options. Keyboards start on
// layer 0 with all LEDs off and full brightness.
func NewDaemon(opts Options) (*Daemon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	devices := lo.Map(opts.Keyboards, func(name string, _ int) *device {
		return &device{
			name:       name,
			brightness: opts.BrightnessSteps,
			leds:       make([]color.Color, opts.LEDs),
			ledGen:     make([]uint64, opts.LEDs),
			status:     make([]bool, opts.StatusLEDs),
			statusGen:  make([]uint64, opts.StatusLEDs),
		}
	})

	return &Daemon{
		opts:    opts,
		devices: devices,
		bound:   -1,
		pending: make(map[stopper]struct{}),
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}, nil
}

// Options returns the dimensions the daemon was built with.
func (d *Daemon) Options() Options {
	return d.opts
}

// Keyboards lists all devices in id order.
func (d *Daemon) Keyboards() []Keyboard {
	d.mu.Lock()
	defer d.mu.Unlock()

	return lo.Map(d.devices, func(dev *device, i int) Keyboard {
		return Keyboard{ID: i, FriendlyName: dev.name, IsConnected: i == d.bound}
	})
}

// Connect binds the session to keyboard id, replacing any previous binding.
func (d *Daemon) Connect(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id < 0 || id >= len(d.devices) {
		return fmt.Errorf("%w: no keyboard with id %d", ErrUnknownDevice, id)
	}

	d.bound = id
	logging.Info("Connected to keyboard %d (%s)", id, d.devices[id].name)
	return nil
}

// ConnectAny binds the first detected keyboard.
func (d *Daemon) ConnectAny() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.devices) == 0 {
		return fmt.Errorf("%w: no keyboards detected", ErrNoDeviceAvailable)
	}

	d.bound = 0
	logging.Info("Connected to first detected keyboard (%s)", d.devices[0].name)
	return nil
}

// Disconnect releases the binding. Disconnecting while unbound is a no-op.
func (d *Daemon) Disconnect() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.bound >= 0 {
		logging.Info("Disconnected from keyboard %d", d.bound)
	}
	d.bound = -1
}

// boundDevice returns the bound device. Caller holds d.mu.
func (d *Daemon) boundDevice() (*device, error) {
	if d.bound < 0 {
		return nil, ErrNoActiveBinding
	}
	return d.devices[d.bound], nil
}

// SetLayer switches the bound keyboard's active layer.
func (d *Daemon) SetLayer(layer int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, err := d.boundDevice()
	if err != nil {
		return err
	}
	if layer < 0 || layer >= d.opts.Layers {
		return fmt.Errorf("%w: layer %d out of range (keyboard has %d layers)", ErrRejected, layer, d.opts.Layers)
	}

	dev.layer = layer
	logging.Debug("Layer set to %d on %s", layer, dev.name)
	return nil
}

// SetLED sets one RGB LED, reverting after sustain when sustain is positive.
func (d *Daemon) SetLED(led int, c color.Color, sustain int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, err := d.boundDevice()
	if err != nil {
		return err
	}
	if led < 0 || led >= len(dev.leds) {
		return fmt.Errorf("%w: LED %d out of range (keyboard has %d LEDs)", ErrRejected, led, len(dev.leds))
	}

	d.writeLED(dev, led, c, sustain)
	logging.Debug("LED %d set to %s on %s (sustain %dms)", led, c, dev.name, sustain)
	return nil
}

// SetAllLEDs sets every RGB LED of the bound keyboard.
func (d *Daemon) SetAllLEDs(c color.Color, sustain int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, err := d.boundDevice()
	if err != nil {
		return err
	}

	for led := range dev.leds {
		d.writeLED(dev, led, c, sustain)
	}
	logging.Debug("All LEDs set to %s on %s (sustain %dms)", c, dev.name, sustain)
	return nil
}

// writeLED stores c and schedules a revert. Caller holds d.mu.
func (d *Daemon) writeLED(dev *device, led int, c color.Color, sustain int32) {
	previous := dev.leds[led]
	dev.leds[led] = c
	dev.ledGen[led]++

	if sustain <= 0 {
		return
	}

	gen := dev.ledGen[led]
	d.schedule(sustain, func() {
		if dev.ledGen[led] == gen {
			dev.leds[led] = previous
			dev.ledGen[led]++
		}
	})
}

// SetStatusLED switches one status LED, reverting after sustain when positive.
func (d *Daemon) SetStatusLED(led int, on bool, sustain int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, err := d.boundDevice()
	if err != nil {
		return err
	}
	if led < 0 || led >= len(dev.status) {
		return fmt.Errorf("%w: status LED %d out of range (keyboard has %d status LEDs)", ErrRejected, led, len(dev.status))
	}

	previous := dev.status[led]
	dev.status[led] = on
	dev.statusGen[led]++

	if sustain > 0 {
		gen := dev.statusGen[led]
		d.schedule(sustain, func() {
			if dev.statusGen[led] == gen {
				dev.status[led] = previous
				dev.statusGen[led]++
			}
		})
	}

	logging.Debug("Status LED %d turned %s on %s (sustain %dms)", led, lo.Ternary(on, "on", "off"), dev.name, sustain)
	return nil
}

// StepBrightness moves brightness one step, clamped to [0, BrightnessSteps].
func (d *Daemon) StepBrightness(increase bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, err := d.boundDevice()
	if err != nil {
		return err
	}

	step := lo.Ternary(increase, 1, -1)
	dev.brightness = lo.Clamp(dev.brightness+step, 0, d.opts.BrightnessSteps)
	logging.Debug("Brightness on %s now %d/%d", dev.name, dev.brightness, d.opts.BrightnessSteps)
	return nil
}

// State snapshots the bound keyboard.
func (d *Daemon) State() (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, err := d.boundDevice()
	if err != nil {
		return State{}, err
	}

	return State{
		Keyboard:   Keyboard{ID: d.bound, FriendlyName: dev.name, IsConnected: true},
		Layer:      dev.layer,
		Brightness: dev.brightness,
		LEDs:       lo.Map(dev.leds, func(c color.Color, _ int) string { return c.Hex() }),
		StatusLEDs: append([]bool(nil), dev.status...),
	}, nil
}

// schedule runs revert under d.mu after sustain milliseconds. Caller holds d.mu.
func (d *Daemon) schedule(sustain int32, revert func()) {
	var timer stopper
	timer = d.afterFunc(time.Duration(sustain)*time.Millisecond, func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		delete(d.pending, timer)
		revert()
	})
	d.pending[timer] = struct{}{}
}

// Close cancels pending reverts. Values already written stay in place.
func (d *Daemon) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for timer := range d.pending {
		timer.Stop()
	}
	d.pending = make(map[stopper]struct{})
}
