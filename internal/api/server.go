// Package api provides the HTTP API server of the simulated controller daemon.
// The server exposes the keyboard model via REST endpoints under /api/v1 so
// the kontroll CLI can be exercised without real hardware.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kontroll-dev/kontroll/internal/api/handlers"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/simulator"
	"github.com/kontroll-dev/kontroll/internal/version"
)

// Represents the simulator API server
type Server struct {
	daemon     *simulator.Daemon
	httpServer *http.Server
	listener   net.Listener
	network    string
	address    string
	startTime  time.Time
}

// NewServer creates a new API server instance. The listen address is only
// checked by Start; config and its daemon must be non-nil.
func NewServer(config *Config) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Daemon == nil {
		return nil, fmt.Errorf("daemon cannot be nil")
	}

	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		daemon:    config.Daemon,
		network:   config.Network,
		address:   config.Address,
		startTime: time.Now(),
	}, nil
}

// NewServerWithListener creates a server that will serve on an existing
// listener instead of opening its own. Used by tests and socket activation.
func NewServerWithListener(config *Config, listener net.Listener) (*Server, error) {
	if listener == nil {
		return nil, fmt.Errorf("listener cannot be nil")
	}

	server, err := NewServer(config)
	if err != nil {
		return nil, err
	}
	server.listener = listener
	server.network = listener.Addr().Network()
	server.address = listener.Addr().String()
	return server, nil
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("DEBUG", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	router.Use(s.requestIDMiddleware())
	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)
	return router
}

// Start binds the listener (unless one was supplied) and serves in the background
func (s *Server) Start() error {
	if s.listener == nil {
		listener, err := net.Listen(s.network, s.address)
		if err != nil {
			return fmt.Errorf("failed to bind to %s %s: %w", s.network, s.address, err)
		}
		s.listener = listener
	}

	if s.network == NetworkUnix {
		// Clients run as the same user; keep other users off the keyboard.
		if err := os.Chmod(s.address, 0o600); err != nil {
			logging.Warn("Failed to restrict socket permissions on %s: %v", s.address, err)
		}
	}

	logging.Info("Starting controller API on %s %s", s.network, s.address)

	s.httpServer = &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("Controller API started successfully")
	return nil
}

// Address returns the address the server listens on
func (s *Server) Address() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.address
}

// Shutdown gracefully shuts down the HTTP server and removes the unix socket
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down controller API...")

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	if s.network == NetworkUnix {
		if rmErr := os.Remove(s.address); rmErr != nil && !os.IsNotExist(rmErr) {
			logging.Warn("Failed to remove socket %s: %v", s.address, rmErr)
		}
	}

	return err
}

// getHandlerHealth is a health endpoint handler factory
func (s *Server) getHandlerHealth() gin.HandlerFunc {
	return handlers.HandleHealth(s.daemon, version.SimulatorVersion, s.startTime)
}

// getHandlerKeyboards is a discovery endpoint handler factory
func (s *Server) getHandlerKeyboards() gin.HandlerFunc {
	return handlers.HandleKeyboards(s.daemon)
}

// getHandlerConnect is a connect endpoint handler factory
func (s *Server) getHandlerConnect() gin.HandlerFunc {
	return handlers.HandleConnect(s.daemon)
}

// getHandlerConnectAny is a connect-any endpoint handler factory
func (s *Server) getHandlerConnectAny() gin.HandlerFunc {
	return handlers.HandleConnectAny(s.daemon)
}

// getHandlerDisconnect is a disconnect endpoint handler factory
func (s *Server) getHandlerDisconnect() gin.HandlerFunc {
	return handlers.HandleDisconnect(s.daemon)
}

// getHandlerKeyboardState is a keyboard state endpoint handler factory
func (s *Server) getHandlerKeyboardState() gin.HandlerFunc {
	return handlers.HandleKeyboardState(s.daemon)
}

// getHandlerSetLayer is a layer endpoint handler factory
func (s *Server) getHandlerSetLayer() gin.HandlerFunc {
	return handlers.HandleSetLayer(s.daemon)
}

// getHandlerSetLED is a single LED endpoint handler factory
func (s *Server) getHandlerSetLED() gin.HandlerFunc {
	return handlers.HandleSetLED(s.daemon)
}

// getHandlerSetAllLEDs is an all-LED endpoint handler factory
func (s *Server) getHandlerSetAllLEDs() gin.HandlerFunc {
	return handlers.HandleSetAllLEDs(s.daemon)
}

// getHandlerSetStatusLED is a status LED endpoint handler factory
func (s *Server) getHandlerSetStatusLED() gin.HandlerFunc {
	return handlers.HandleSetStatusLED(s.daemon)
}

// getHandlerBrightness is a brightness endpoint handler factory
func (s *Server) getHandlerBrightness() gin.HandlerFunc {
	return handlers.HandleBrightness(s.daemon)
}
