package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/gemini"
	pkgLog "calendar-assistant/pkg/log"
	"calendar-assistant/pkg/session"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Domain dependencies
	llm             *gemini.Client
	sessions        *session.Manager
	rateLimitPerMin int
	defaultTimezone string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	LLM             *gemini.Client
	Sessions        *session.Manager
	RateLimitPerMin int
	DefaultTimezone string
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		llm:             cfg.LLM,
		sessions:        cfg.Sessions,
		rateLimitPerMin: cfg.RateLimitPerMin,
		defaultTimezone: cfg.DefaultTimezone,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("model client is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	return nil
}
