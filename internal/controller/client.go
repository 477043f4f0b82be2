package controller

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/kontroll-dev/kontroll/internal/color"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/version"
	"github.com/tidwall/gjson"
)

// socketHost is the placeholder host used in URLs when dialing a unix socket.
// The transport ignores it; it only needs to be a valid authority.
const socketHost = "kontroll"

// Endpoint names where the controller daemon listens.
// Addr wins when set; otherwise Socket is dialed.
type Endpoint struct {
	Socket string
	Addr   string
}

// String renders the endpoint for error messages and logs.
func (e Endpoint) String() string {
	if e.Addr != "" {
		return e.Addr
	}
	return "unix:" + e.Socket
}

// DefaultSocketName is the socket file name inside the runtime directory.
const DefaultSocketName = "kontroll.sock"

// DefaultSocketPath returns $XDG_RUNTIME_DIR/kontroll.sock, falling back to
// /tmp/kontroll.sock when no runtime dir is set. The CLI dials it and the
// simulator listens on it.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, DefaultSocketName)
	}
	return filepath.Join("/tmp", DefaultSocketName)
}

// Client is the resty-backed Controller talking to the daemon's /api/v1 surface.
type Client struct {
	client   *resty.Client
	endpoint Endpoint
}

// restyLogger routes resty's internal logging through the logging package.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) { logging.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...any)  { logging.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...any) { logging.Debug(format, v...) }

// NewClient creates a client for the daemon at endpoint. timeout bounds each
// request; callers may additionally bound it through the context.
//
// The client never retries. A state-changing request that timed out may have
// reached the daemon, and replaying it could apply the change twice.
func NewClient(endpoint Endpoint, timeout time.Duration) *Client {
	client := resty.New()
	client.SetLogger(restyLogger{})

	baseURL := fmt.Sprintf("http://%s/api/v1", endpoint.Addr)
	if endpoint.Addr == "" {
		baseURL = fmt.Sprintf("http://%s/api/v1", socketHost)
		socket := endpoint.Socket
		client.SetTransport(&http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socket)
			},
		})
	}

	client.
		SetTimeout(timeout).
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("kontroll/%s", version.KontrollVersion))

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		logging.Debug("Making controller request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Controller response: %d %s (took %v, request %s)",
			resp.StatusCode(), resp.Status(), resp.Time(), resp.Request.Header.Get("X-Request-ID"))
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Controller request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{client: client, endpoint: endpoint}
}

// do sends one request and returns the reply's data field.
// Error replies and transport failures come back as *Failure.
func (c *Client) do(ctx context.Context, method, path string, body any) (gjson.Result, error) {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return gjson.Result{}, unreachable(c.endpoint.String(), err)
	}

	raw := resp.Body()
	if len(raw) == 0 {
		if resp.IsError() {
			return gjson.Result{}, failureFromReply(resp.StatusCode(), gjson.Result{})
		}
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(raw) {
		message := fmt.Sprintf("unexpected reply from %s (status %d): not a controller daemon",
			c.endpoint, resp.StatusCode())
		return gjson.Result{}, &Failure{Kind: ErrDaemonUnreachable, Message: message}
	}

	reply := gjson.ParseBytes(raw)
	if resp.IsError() || reply.Get("status").String() == "error" {
		return gjson.Result{}, failureFromReply(resp.StatusCode(), reply)
	}

	return reply.Get("data"), nil
}

// Discover fetches the keyboards the daemon currently reports, preserving its order.
func (c *Client) Discover(ctx context.Context) ([]Keyboard, error) {
	data, err := c.do(ctx, http.MethodGet, "/keyboards", nil)
	if err != nil {
		return nil, err
	}

	// An empty list may be encoded as null or left out entirely
	if !data.Exists() || data.Type == gjson.Null {
		return []Keyboard{}, nil
	}
	if !data.IsArray() {
		return nil, &Failure{
			Kind:    ErrDaemonRejected,
			Message: fmt.Sprintf("malformed keyboard list from %s: expected an array", c.endpoint),
		}
	}

	entries := data.Array()
	keyboards := make([]Keyboard, 0, len(entries))
	for _, kb := range entries {
		keyboards = append(keyboards, Keyboard{
			ID:           int(kb.Get("id").Int()),
			FriendlyName: kb.Get("friendlyName").String(),
			IsConnected:  kb.Get("isConnected").Bool(),
		})
	}

	return keyboards, nil
}

// Bind asks the daemon to connect to the keyboard with the given id.
func (c *Client) Bind(ctx context.Context, id uint) error {
	_, err := c.do(ctx, http.MethodPost, "/keyboards/connect", map[string]any{"id": id})
	return err
}

// BindAny asks the daemon to connect to the first keyboard it detects.
func (c *Client) BindAny(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/keyboards/connect-any", nil)
	return err
}

// Unbind releases the current binding.
func (c *Client) Unbind(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/keyboards/disconnect", nil)
	return err
}

// SetLayer switches the active layer of the bound keyboard.
func (c *Client) SetLayer(ctx context.Context, index uint) error {
	_, err := c.do(ctx, http.MethodPut, "/keyboard/layer", map[string]any{"layer": index})
	return err
}

// ledBody is the payload shared by the single and all-LED color requests.
type ledBody struct {
	Red     uint8 `json:"red"`
	Green   uint8 `json:"green"`
	Blue    uint8 `json:"blue"`
	Sustain int32 `json:"sustain"`
}

func newLEDBody(col color.Color, sustain int32) ledBody {
	return ledBody{Red: col.R, Green: col.G, Blue: col.B, Sustain: sustain}
}

// SetLEDColor sets one RGB LED on the bound keyboard.
func (c *Client) SetLEDColor(ctx context.Context, led uint, col color.Color, sustain int32) error {
	path := "/keyboard/leds/" + strconv.FormatUint(uint64(led), 10)
	_, err := c.do(ctx, http.MethodPut, path, newLEDBody(col, sustain))
	return err
}

// SetAllLEDColor sets every RGB LED on the bound keyboard.
func (c *Client) SetAllLEDColor(ctx context.Context, col color.Color, sustain int32) error {
	_, err := c.do(ctx, http.MethodPut, "/keyboard/leds", newLEDBody(col, sustain))
	return err
}

// SetStatusLED switches a status LED on the bound keyboard.
func (c *Client) SetStatusLED(ctx context.Context, led uint, on bool, sustain int32) error {
	path := "/keyboard/status-leds/" + strconv.FormatUint(uint64(led), 10)
	_, err := c.do(ctx, http.MethodPut, path, map[string]any{"on": on, "sustain": sustain})
	return err
}

// StepBrightness moves brightness one step in the given direction.
func (c *Client) StepBrightness(ctx context.Context, increase bool) error {
	_, err := c.do(ctx, http.MethodPost, "/keyboard/brightness", map[string]any{"increase": increase})
	return err
}

// Health reports whether the daemon answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

var _ Controller = (*Client)(nil)
