package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bannermatch/bannermatch/internal/http"
	"github.com/bannermatch/bannermatch/internal/http/handlers"
	"github.com/bannermatch/bannermatch/internal/http/middleware"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	userHandler *handlers.UserHandler,
	playerHandler *handlers.PlayerHandler,
	kingdomHandler *handlers.KingdomHandler,
	applicationHandler *handlers.ApplicationHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(userHandler, playerHandler, kingdomHandler, applicationHandler, errorHandler, log, port)
}

// RunHTTPServer ties the server to the fx lifecycle
func (a *application) RunHTTPServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
