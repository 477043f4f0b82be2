package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// API version prefix
	v1 := router.Group("/api/v1")

	// Health check endpoint
	v1.GET("/health", s.getHandlerHealth())

	// Discovery and session binding
	keyboards := v1.Group("/keyboards")
	{
		keyboards.GET("", s.getHandlerKeyboards())
		keyboards.POST("/connect", s.getHandlerConnect())
		keyboards.POST("/connect-any", s.getHandlerConnectAny())
		keyboards.POST("/disconnect", s.getHandlerDisconnect())
	}

	// Operations on the bound keyboard
	keyboard := v1.Group("/keyboard")
	{
		keyboard.GET("", s.getHandlerKeyboardState())
		keyboard.PUT("/layer", s.getHandlerSetLayer())
		keyboard.PUT("/leds", s.getHandlerSetAllLEDs())
		keyboard.PUT("/leds/:led", s.getHandlerSetLED())
		keyboard.PUT("/status-leds/:led", s.getHandlerSetStatusLED())
		keyboard.POST("/brightness", s.getHandlerBrightness())
	}
}
