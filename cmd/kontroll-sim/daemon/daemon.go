// Package daemon provides the simulated controller daemon lifecycle.
//
// Run builds the keyboard model from the configuration, claims the socket,
// starts the HTTP API, confirms it answers /health and blocks until its
// context is cancelled, then shuts everything down in reverse order.
//
// SOCKET OWNERSHIP:
// A unix socket left behind by a crashed daemon makes the next listen fail
// with "address already in use". Before listening, Run takes an exclusive
// flock on "<socket>.lock". Holding the lock proves no other simulator owns
// the socket, so any existing socket file is stale and is removed.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/kontroll-dev/kontroll/cmd/kontroll-sim/config"
	"github.com/kontroll-dev/kontroll/internal/api"
	"github.com/kontroll-dev/kontroll/internal/controller"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/simulator"
)

const (
	ShutdownTimeout    = 5 * time.Second // Bounds the graceful API shutdown
	HealthCheckTimeout = 2 * time.Second // Bounds the startup self check
)

// ErrAlreadyRunning is returned when another simulator holds the socket lock.
var ErrAlreadyRunning = errors.New("another controller daemon is already serving this socket")

// Run starts the simulator and blocks until ctx is cancelled.
// ready, when non-nil, receives the listen address once the API is serving.
func Run(ctx context.Context, ready chan<- string) error {
	logging.Info("Starting simulated keyboard controller v%s", config.Version)

	model, err := simulator.NewDaemon(config.Options())
	if err != nil {
		return fmt.Errorf("failed to create keyboard model: %w", err)
	}
	defer model.Close()

	for _, kb := range model.Keyboards() {
		logging.Info("Simulating keyboard %d: %s", kb.ID, kb.FriendlyName)
	}
	if len(model.Keyboards()) == 0 {
		logging.Warn("No keyboards configured, discovery will return an empty list")
	}

	network, address := config.Listener()
	apiConfig := &api.Config{Network: network, Address: address, Daemon: model}
	if err := apiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid API configuration: %w", err)
	}

	if network == api.NetworkUnix {
		lock, err := claimSocket(address)
		if err != nil {
			return err
		}
		defer releaseSocket(lock)
	}

	server, err := api.NewServer(apiConfig)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	if err := checkHealth(ctx, network, server.Address()); err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return fmt.Errorf("controller API failed its health check: %w", err)
	}

	logging.Success("Controller daemon ready on %s (%s)", server.Address(), network)
	if ready != nil {
		ready <- server.Address()
	}

	<-ctx.Done()
	logging.Info("Shutting down controller daemon...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
		return err
	}

	logging.Success("Controller daemon stopped")
	return nil
}

// checkHealth asks the freshly started API for its health endpoint through
// the same client kontroll uses, so "ready" means a CLI request would succeed.
func checkHealth(ctx context.Context, network, address string) error {
	endpoint := controller.Endpoint{Addr: address}
	if network == api.NetworkUnix {
		endpoint = controller.Endpoint{Socket: address}
	}
	return controller.NewClient(endpoint, HealthCheckTimeout).Health(ctx)
}

// LockPath returns the lock file guarding socket.
func LockPath(socket string) string {
	return socket + ".lock"
}

// claimSocket takes the socket lock and removes a stale socket file.
func claimSocket(socket string) (*flock.Flock, error) {
	lock := flock.New(LockPath(socket))

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire socket lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, socket)
	}

	if _, err := os.Stat(socket); err == nil {
		logging.Warn("Removing stale socket %s", socket)
		if err := os.Remove(socket); err != nil {
			_ = lock.Unlock()
			return nil, fmt.Errorf("remove stale socket: %w", err)
		}
	}

	return lock, nil
}

// releaseSocket unlocks and removes the lock file.
func releaseSocket(lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		logging.Warn("Failed to release socket lock: %v", err)
	}
	if err := os.Remove(lock.Path()); err != nil && !os.IsNotExist(err) {
		logging.Warn("Failed to remove lock file %s: %v", lock.Path(), err)
	}
}
