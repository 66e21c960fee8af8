package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/events", mw.Auth(), mw.RateLimit(), h.ListMonth)
		cal.GET("/year", mw.Auth(), mw.RateLimit(), h.ListYear)
		cal.GET("/context", mw.Auth(), mw.RateLimit(), h.BuildContext)
	}
}
