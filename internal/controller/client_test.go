package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kontroll-dev/kontroll/internal/api"
	"github.com/kontroll-dev/kontroll/internal/color"
	"github.com/kontroll-dev/kontroll/internal/simulator"
)

// newSimulator starts a simulated daemon over TCP and returns a client for it
func newSimulator(t *testing.T, keyboards ...string) (*Client, *simulator.Daemon) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	opts := simulator.DefaultOptions()
	opts.Keyboards = keyboards

	daemon, err := simulator.NewDaemon(opts)
	if err != nil {
		t.Fatalf("NewDaemon() error = %v", err)
	}
	t.Cleanup(daemon.Close)

	server, err := api.NewServer(&api.Config{Network: api.NetworkTCP, Daemon: daemon})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	endpoint := Endpoint{Addr: strings.TrimPrefix(ts.URL, "http://")}
	return NewClient(endpoint, 5*time.Second), daemon
}

// TestClient_Discover tests discovery ordering and fields
func TestClient_Discover(t *testing.T) {
	client, daemon := newSimulator(t, "Voyager", "Moonlander", "Ergodox EZ")
	if err := daemon.Connect(2); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	keyboards, err := client.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []Keyboard{
		{ID: 0, FriendlyName: "Voyager"},
		{ID: 1, FriendlyName: "Moonlander"},
		{ID: 2, FriendlyName: "Ergodox EZ", IsConnected: true},
	}
	if len(keyboards) != len(want) {
		t.Fatalf("Discover() returned %d keyboards, want %d", len(keyboards), len(want))
	}
	for i := range want {
		if keyboards[i] != want[i] {
			t.Errorf("keyboard %d = %+v, want %+v", i, keyboards[i], want[i])
		}
	}
}

// TestClient_DiscoverEmpty tests discovery with nothing attached
func TestClient_DiscoverEmpty(t *testing.T) {
	client, _ := newSimulator(t)

	keyboards, err := client.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(keyboards) != 0 {
		t.Errorf("Discover() = %+v, want empty", keyboards)
	}
}

// TestClient_Session tests every keyboard operation against the simulator
func TestClient_Session(t *testing.T) {
	client, daemon := newSimulator(t, "Voyager", "Moonlander")
	ctx := context.Background()

	if err := client.Bind(ctx, 1); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := client.SetLayer(ctx, 3); err != nil {
		t.Fatalf("SetLayer() error = %v", err)
	}
	if err := client.SetLEDColor(ctx, 5, color.Color{R: 0xFF, B: 0xFF}, 0); err != nil {
		t.Fatalf("SetLEDColor() error = %v", err)
	}
	if err := client.SetStatusLED(ctx, 0, true, 0); err != nil {
		t.Fatalf("SetStatusLED() error = %v", err)
	}
	if err := client.StepBrightness(ctx, false); err != nil {
		t.Fatalf("StepBrightness() error = %v", err)
	}

	state, err := daemon.State()
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if state.Keyboard.ID != 1 || state.Layer != 3 || state.LEDs[5] != "FF00FF" || !state.StatusLEDs[0] {
		t.Errorf("unexpected state after session: %+v", state)
	}

	if err := client.SetAllLEDColor(ctx, color.Color{B: 0x80}, 0); err != nil {
		t.Fatalf("SetAllLEDColor() error = %v", err)
	}
	state, _ = daemon.State()
	for i, led := range state.LEDs {
		if led != "000080" {
			t.Fatalf("LED %d = %s after SetAllLEDColor, want 000080", i, led)
		}
	}

	if err := client.BindAny(ctx); err != nil {
		t.Fatalf("BindAny() error = %v", err)
	}
	if state, _ := daemon.State(); state.Keyboard.ID != 0 {
		t.Errorf("BindAny() bound keyboard %d, want 0", state.Keyboard.ID)
	}

	if err := client.Unbind(ctx); err != nil {
		t.Fatalf("Unbind() error = %v", err)
	}
	if err := client.Health(ctx); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

// TestClient_Failures tests that daemon errors map to failure kinds
func TestClient_Failures(t *testing.T) {
	client, _ := newSimulator(t, "Voyager")
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		kind error
	}{
		{name: "layer while unbound", call: func() error { return client.SetLayer(ctx, 1) }, kind: ErrNoActiveBinding},
		{name: "LED while unbound", call: func() error { return client.SetLEDColor(ctx, 0, color.Color{}, 0) }, kind: ErrNoActiveBinding},
		{name: "brightness while unbound", call: func() error { return client.StepBrightness(ctx, true) }, kind: ErrNoActiveBinding},
		{name: "bind unknown id", call: func() error { return client.Bind(ctx, 42) }, kind: ErrUnknownDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error = %v, want kind %v", err, tt.kind)
			}

			var failure *Failure
			if !errors.As(err, &failure) || failure.Message == "" {
				t.Errorf("error %v is not a displayable *Failure", err)
			}
		})
	}

	if err := client.Bind(ctx, 0); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	err := client.SetLayer(ctx, 99)
	if !errors.Is(err, ErrDaemonRejected) {
		t.Errorf("SetLayer(99) error = %v, want ErrDaemonRejected", err)
	}
	if !strings.Contains(err.Error(), "layer 99") {
		t.Errorf("SetLayer(99) message = %q, want daemon text", err.Error())
	}
}

// TestClient_ConnectAnyWithoutKeyboards tests the no-device failure
func TestClient_ConnectAnyWithoutKeyboards(t *testing.T) {
	client, _ := newSimulator(t)

	if err := client.BindAny(context.Background()); !errors.Is(err, ErrDaemonRejected) {
		t.Errorf("BindAny() error = %v, want ErrDaemonRejected", err)
	}
}

// TestClient_Unreachable tests failures when nothing listens
func TestClient_Unreachable(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "missing.sock")
	client := NewClient(Endpoint{Socket: socket}, time.Second)

	_, err := client.Discover(context.Background())
	if !errors.Is(err, ErrDaemonUnreachable) {
		t.Fatalf("Discover() error = %v, want ErrDaemonUnreachable", err)
	}
	if !strings.Contains(err.Error(), socket) {
		t.Errorf("message %q does not name the socket", err.Error())
	}
}

// TestClient_NotADaemon tests a listener that does not speak the protocol
func TestClient_NotADaemon(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>hello</html>"))
	}))
	defer ts.Close()

	client := NewClient(Endpoint{Addr: strings.TrimPrefix(ts.URL, "http://")}, time.Second)
	if err := client.Unbind(context.Background()); !errors.Is(err, ErrDaemonUnreachable) {
		t.Errorf("Unbind() error = %v, want ErrDaemonUnreachable", err)
	}
}

// TestClient_NoRetry tests that a failing request is sent exactly once
func TestClient_NoRetry(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"error","message":"busy"}`))
	}))
	defer ts.Close()

	client := NewClient(Endpoint{Addr: strings.TrimPrefix(ts.URL, "http://")}, time.Second)
	err := client.StepBrightness(context.Background(), true)

	if !errors.Is(err, ErrDaemonRejected) || err.Error() != "busy" {
		t.Errorf("StepBrightness() error = %v, want rejected \"busy\"", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("daemon saw %d requests, want exactly 1", n)
	}
}

// TestClient_UnixSocket tests the default unix socket transport
func TestClient_UnixSocket(t *testing.T) {
	daemon, err := simulator.NewDaemon(simulator.DefaultOptions())
	if err != nil {
		t.Fatalf("NewDaemon() error = %v", err)
	}
	defer daemon.Close()

	socket := filepath.Join(t.TempDir(), "k.sock")
	config := api.DefaultConfig(socket)
	config.Daemon = daemon
	server, err := api.NewServer(config)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer server.Shutdown(context.Background())

	client := NewClient(Endpoint{Socket: socket}, 5*time.Second)
	if err := client.BindAny(context.Background()); err != nil {
		t.Fatalf("BindAny() over unix socket error = %v", err)
	}

	keyboards, err := client.Discover(context.Background())
	if err != nil || len(keyboards) != 1 || !keyboards[0].IsConnected {
		t.Errorf("Discover() = %+v, %v; want one connected keyboard", keyboards, err)
	}
}

// TestKindFor tests classification of error replies without a daemon
func TestKindFor(t *testing.T) {
	tests := []struct {
		code   string
		status int
		want   error
	}{
		{CodeNoActiveBinding, http.StatusConflict, ErrNoActiveBinding},
		{CodeUnknownDevice, http.StatusNotFound, ErrUnknownDevice},
		{CodeNoDeviceAvailable, http.StatusNotFound, ErrDaemonRejected},
		{CodeRejected, http.StatusUnprocessableEntity, ErrDaemonRejected},
		{"", http.StatusNotFound, ErrUnknownDevice},
		{"", http.StatusConflict, ErrNoActiveBinding},
		{"", http.StatusInternalServerError, ErrDaemonRejected},
		{"something_new", http.StatusConflict, ErrDaemonRejected},
	}

	for _, tt := range tests {
		if got := kindFor(tt.code, tt.status); got != tt.want {
			t.Errorf("kindFor(%q, %d) = %v, want %v", tt.code, tt.status, got, tt.want)
		}
	}
}

// TestEndpointString tests endpoint rendering
func TestEndpointString(t *testing.T) {
	if got := (Endpoint{Socket: "/tmp/k.sock"}).String(); got != "unix:/tmp/k.sock" {
		t.Errorf("String() = %q", got)
	}
	if got := (Endpoint{Socket: "/tmp/k.sock", Addr: "127.0.0.1:7630"}).String(); got != "127.0.0.1:7630" {
		t.Errorf("String() = %q", got)
	}
}

// newReplyServer serves a fixed status and body for every request
func newReplyServer(t *testing.T, status int, body string) *Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return NewClient(Endpoint{Addr: strings.TrimPrefix(ts.URL, "http://")}, time.Second)
}

// TestClient_DiscoverReplyShapes tests how non-list keyboard data is handled
func TestClient_DiscoverReplyShapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "null data", body: `{"status":"success","data":null}`},
		{name: "missing data", body: `{"status":"success"}`},
		{name: "empty array", body: `{"status":"success","data":[]}`},
		{name: "object data", body: `{"status":"success","data":{"a":1}}`, wantErr: ErrDaemonRejected},
		{name: "string data", body: `{"status":"success","data":"Voyager"}`, wantErr: ErrDaemonRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newReplyServer(t, http.StatusOK, tt.body)

			keyboards, err := client.Discover(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Discover() error = %v, want %v", err, tt.wantErr)
				}
				if keyboards != nil {
					t.Errorf("Discover() = %v alongside an error", keyboards)
				}
				return
			}

			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}
			if keyboards == nil || len(keyboards) != 0 {
				t.Errorf("Discover() = %#v, want an empty non-nil list", keyboards)
			}
		})
	}
}

// TestClient_EmptyErrorBody tests that a bodiless error reply is classified by status
func TestClient_EmptyErrorBody(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: ErrUnknownDevice},
		{status: http.StatusConflict, want: ErrNoActiveBinding},
		{status: http.StatusInternalServerError, want: ErrDaemonRejected},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newReplyServer(t, tt.status, "")

			err := client.Unbind(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Unbind() error = %v, want %v", err, tt.want)
			}
			if errors.Is(err, ErrDaemonUnreachable) {
				t.Error("a reply with a status was reported as unreachable")
			}
		})
	}
}

// TestClient_EmptySuccessBody tests that a bodiless success reply is accepted
func TestClient_EmptySuccessBody(t *testing.T) {
	client := newReplyServer(t, http.StatusNoContent, "")
	if err := client.Unbind(context.Background()); err != nil {
		t.Errorf("Unbind() error = %v", err)
	}
}

// TestDefaultSocketPath tests the runtime directory lookup
func TestDefaultSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	if got := DefaultSocketPath(); got != "/run/user/1000/kontroll.sock" {
		t.Errorf("DefaultSocketPath() = %q, want /run/user/1000/kontroll.sock", got)
	}

	t.Setenv("XDG_RUNTIME_DIR", "")
	if got := DefaultSocketPath(); got != "/tmp/kontroll.sock" {
		t.Errorf("DefaultSocketPath() = %q, want /tmp/kontroll.sock", got)
	}
}
