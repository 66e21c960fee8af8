package middleware

import (
	pkgLog "calendar-assistant/pkg/log"
	"calendar-assistant/pkg/session"
)

type Middleware struct {
	l        pkgLog.Logger
	sessions *session.Manager
	limiter  *rateLimiter
}

func New(l pkgLog.Logger, sessions *session.Manager, rateLimitPerMin int) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		limiter:  newRateLimiter(rateLimitPerMin),
	}
}
