package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kontroll-dev/kontroll/internal/simulator"
)

// TestHandleHealth tests the health handler response
func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	version := "1.0.0"
	startTime := time.Now().Add(-30 * time.Minute) // 30 minutes ago
	daemon := newTestDaemon(t, "Voyager", "Moonlander")

	router := gin.New()
	router.GET("/health", HandleHealth(daemon, version, startTime))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("HandleHealth() status = %d, want %d", w.Code, http.StatusOK)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("HandleHealth() status = %q, want \"healthy\"", response.Status)
	}

	if response.Version != version {
		t.Errorf("HandleHealth() version = %q, want %q", response.Version, version)
	}

	if response.Keyboards != 2 {
		t.Errorf("HandleHealth() keyboards = %d, want 2", response.Keyboards)
	}

	// Check that timestamp is recent (within last 5 seconds)
	if time.Since(response.Timestamp) > 5*time.Second {
		t.Error("HandleHealth() timestamp is not recent")
	}

	if response.Uptime == "" {
		t.Error("HandleHealth() uptime is empty")
	}
}

// newTestDaemon creates a daemon with the given keyboards and default dimensions
func newTestDaemon(t *testing.T, names ...string) *simulator.Daemon {
	t.Helper()

	opts := simulator.DefaultOptions()
	opts.Keyboards = names

	daemon, err := simulator.NewDaemon(opts)
	if err != nil {
		t.Fatalf("NewDaemon() error = %v", err)
	}
	t.Cleanup(daemon.Close)

	return daemon
}
