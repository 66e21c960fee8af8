package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "calendar-assistant/internal/calendar/delivery/http"
	calendarUC "calendar-assistant/internal/calendar/usecase"
	chatHTTP "calendar-assistant/internal/chat/delivery/http"
	chatUC "calendar-assistant/internal/chat/usecase"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.sessions, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Chat domain
	chatUseCase := chatUC.New(srv.l, srv.llm, chatUC.NewGoogleCalendarFactory(), srv.defaultTimezone)
	chatHandler := chatHTTP.New(srv.l, chatUseCase)
	chatHTTP.RegisterRoutes(api, chatHandler, mw)
	srv.l.Infof(ctx, "Chat domain registered")

	// Calendar read domain
	calUseCase := calendarUC.New(srv.l, calendarUC.NewGoogleReaderFactory())
	calHandler := calendarHTTP.New(srv.l, calUseCase)
	calendarHTTP.RegisterRoutes(api, calHandler, mw)
	srv.l.Infof(ctx, "Calendar domain registered")
}
