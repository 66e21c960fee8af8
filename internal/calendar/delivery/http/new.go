package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	pkgLog "calendar-assistant/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	ListMonth(c *gin.Context)
	ListYear(c *gin.Context)
	BuildContext(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l pkgLog.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
