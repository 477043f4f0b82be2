// Package handlers provides HTTP request handlers for the simulated
// controller daemon API.
//
// Every handler is a factory taking the daemon model and returning a
// gin.HandlerFunc. Replies share one envelope:
//
//	{"status": "success", "data": ...}
//	{"status": "error", "code": "...", "message": "..."}
//
// ENDPOINTS:
//   - GET  /keyboards                  discovery
//   - POST /keyboards/connect          bind by id
//   - POST /keyboards/connect-any      bind the first detected keyboard
//   - POST /keyboards/disconnect       release the binding
//   - GET  /keyboard                   bound keyboard state
//   - PUT  /keyboard/layer             switch layer
//   - PUT  /keyboard/leds/:led         set one RGB LED
//   - PUT  /keyboard/leds              set all RGB LEDs
//   - PUT  /keyboard/status-leds/:led  switch a status LED
//   - POST /keyboard/brightness        step brightness
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kontroll-dev/kontroll/internal/color"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/simulator"
)

// Error codes carried in error replies.
const (
	CodeNoActiveBinding   = "no_active_binding"
	CodeUnknownDevice     = "unknown_device"
	CodeNoDeviceAvailable = "no_device_available"
	CodeRejected          = "rejected"
	CodeInternal          = "internal"
)

// ConnectRequest selects a keyboard by id.
type ConnectRequest struct {
	ID *int `json:"id" binding:"required,min=0"`
}

// LayerRequest selects the active layer.
type LayerRequest struct {
	Layer *int `json:"layer" binding:"required,min=0"`
}

// LEDRequest sets RGB LED color with an optional sustain in milliseconds.
type LEDRequest struct {
	Red     uint8 `json:"red"`
	Green   uint8 `json:"green"`
	Blue    uint8 `json:"blue"`
	Sustain int32 `json:"sustain"`
}

// Color returns the requested color.
func (r LEDRequest) Color() color.Color {
	return color.Color{R: r.Red, G: r.Green, B: r.Blue}
}

// StatusLEDRequest switches a status LED.
type StatusLEDRequest struct {
	On      bool  `json:"on"`
	Sustain int32 `json:"sustain"`
}

// BrightnessRequest steps brightness up or down.
type BrightnessRequest struct {
	Increase *bool `json:"increase" binding:"required"`
}

func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}

// respondDaemonError maps a daemon failure onto its wire code and status.
func respondDaemonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, simulator.ErrNoActiveBinding):
		respondError(c, http.StatusConflict, CodeNoActiveBinding, err.Error())
	case errors.Is(err, simulator.ErrUnknownDevice):
		respondError(c, http.StatusNotFound, CodeUnknownDevice, err.Error())
	case errors.Is(err, simulator.ErrNoDeviceAvailable):
		respondError(c, http.StatusNotFound, CodeNoDeviceAvailable, err.Error())
	case errors.Is(err, simulator.ErrRejected):
		respondError(c, http.StatusUnprocessableEntity, CodeRejected, err.Error())
	default:
		logging.Error("Unexpected daemon error: %v", err)
		respondError(c, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}

// bindBody decodes the JSON body, replying 400 on failure.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, CodeRejected, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// ledParam parses the :led path parameter, replying 400 on failure.
func ledParam(c *gin.Context) (int, bool) {
	led, err := strconv.Atoi(c.Param("led"))
	if err != nil || led < 0 {
		respondError(c, http.StatusBadRequest, CodeRejected, fmt.Sprintf("invalid LED index %q", c.Param("led")))
		return 0, false
	}
	return led, true
}

// HandleKeyboards lists discovered keyboards
func HandleKeyboards(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyboards := daemon.Keyboards()
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   keyboards,
			"count":  len(keyboards),
		})
	}
}

// HandleConnect binds the keyboard with the requested id
func HandleConnect(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConnectRequest
		if !bindBody(c, &req) {
			return
		}
		if err := daemon.Connect(*req.ID); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, gin.H{"id": *req.ID})
	}
}

// HandleConnectAny binds the first detected keyboard
func HandleConnectAny(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daemon.ConnectAny(); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, nil)
	}
}

// HandleDisconnect releases the current binding
func HandleDisconnect(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		daemon.Disconnect()
		respondSuccess(c, nil)
	}
}

// HandleKeyboardState returns the bound keyboard's state
func HandleKeyboardState(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := daemon.State()
		if err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, state)
	}
}

// HandleSetLayer switches the active layer
func HandleSetLayer(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LayerRequest
		if !bindBody(c, &req) {
			return
		}
		if err := daemon.SetLayer(*req.Layer); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, gin.H{"layer": *req.Layer})
	}
}

// HandleSetLED sets a single RGB LED
func HandleSetLED(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		led, ok := ledParam(c)
		if !ok {
			return
		}
		var req LEDRequest
		if !bindBody(c, &req) {
			return
		}
		if err := daemon.SetLED(led, req.Color(), req.Sustain); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, gin.H{"led": led, "color": req.Color().Hex()})
	}
}

// HandleSetAllLEDs sets every RGB LED
func HandleSetAllLEDs(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LEDRequest
		if !bindBody(c, &req) {
			return
		}
		if err := daemon.SetAllLEDs(req.Color(), req.Sustain); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, gin.H{"color": req.Color().Hex()})
	}
}

// HandleSetStatusLED switches a status LED
func HandleSetStatusLED(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		led, ok := ledParam(c)
		if !ok {
			return
		}
		var req StatusLEDRequest
		if !bindBody(c, &req) {
			return
		}
		if err := daemon.SetStatusLED(led, req.On, req.Sustain); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, gin.H{"led": led, "on": req.On})
	}
}

// HandleBrightness steps brightness
func HandleBrightness(daemon *simulator.Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BrightnessRequest
		if !bindBody(c, &req) {
			return
		}
		if err := daemon.StepBrightness(*req.Increase); err != nil {
			respondDaemonError(c, err)
			return
		}
		respondSuccess(c, nil)
	}
}
