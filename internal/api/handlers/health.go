package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kontroll-dev/kontroll/internal/simulator"
)

// Represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Keyboards int       `json:"keyboards"`
}

// HandleHealth returns the health status of the simulated daemon
func HandleHealth(daemon *simulator.Daemon, version string, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Keyboards: len(daemon.Keyboards()),
		}

		c.JSON(http.StatusOK, response)
	}
}
