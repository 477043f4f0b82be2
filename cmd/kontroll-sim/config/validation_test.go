package config

import (
	"strings"
	"testing"

	"github.com/kontroll-dev/kontroll/internal/api"
	"github.com/kontroll-dev/kontroll/internal/simulator"
)

// withDefaults resets Global to the flag defaults for one test
func withDefaults(t *testing.T) {
	t.Helper()
	saved := Global
	t.Cleanup(func() { Global = saved })

	opts := simulator.DefaultOptions()
	Global.Socket = "/tmp/kontroll.sock"
	Global.Addr = ""
	Global.Keyboards = opts.Keyboards
	Global.Layers = opts.Layers
	Global.LEDs = opts.LEDs
	Global.StatusLEDs = opts.StatusLEDs
	Global.BrightnessSteps = opts.BrightnessSteps
	Global.LogLevel = DefaultLogLevel
	Global.LogFile = ""
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		modify        func()
		expectError   bool
		errorContains string
	}{
		{name: "defaults_ok", modify: func() {}},
		{name: "lowercase_log_level_ok", modify: func() { Global.LogLevel = "debug" }},
		{name: "tcp_ok", modify: func() { Global.Addr = "127.0.0.1:7630" }},
		{name: "no_keyboards_ok", modify: func() { Global.Keyboards = nil }},
		{
			name:          "bad_log_level",
			modify:        func() { Global.LogLevel = "VERBOSE" },
			expectError:   true,
			errorContains: "log level",
		},
		{
			name:          "tcp_port_zero",
			modify:        func() { Global.Addr = "127.0.0.1:0" },
			expectError:   true,
			errorContains: "listen address",
		},
		{
			name:          "relative_socket",
			modify:        func() { Global.Socket = "kontroll.sock" },
			expectError:   true,
			errorContains: "absolute",
		},
		{
			name:          "zero_layers",
			modify:        func() { Global.Layers = 0 },
			expectError:   true,
			errorContains: "keyboard model",
		},
		{
			name:          "bad_keyboard_name",
			modify:        func() { Global.Keyboards = []string{"Voyager", ""} },
			expectError:   true,
			errorContains: "keyboard model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withDefaults(t)
			tt.modify()

			err := Validate()
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errorContains)
				}
				if !strings.Contains(strings.ToLower(err.Error()), tt.errorContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorContains)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestListener(t *testing.T) {
	withDefaults(t)

	if network, address := Listener(); network != api.NetworkUnix || address != "/tmp/kontroll.sock" {
		t.Errorf("Listener() = %s %s", network, address)
	}

	Global.Addr = "127.0.0.1:7630"
	if network, address := Listener(); network != api.NetworkTCP || address != "127.0.0.1:7630" {
		t.Errorf("Listener() = %s %s", network, address)
	}
}
