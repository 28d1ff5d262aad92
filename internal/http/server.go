package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bannermatch/bannermatch/internal/http/handlers"
	"github.com/bannermatch/bannermatch/internal/http/middleware"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	router             *gin.Engine
	userHandler        *handlers.UserHandler
	playerHandler      *handlers.PlayerHandler
	kingdomHandler     *handlers.KingdomHandler
	applicationHandler *handlers.ApplicationHandler
	errorHandler       *middleware.ErrorHandler
	port               string
}

// NewServer creates a new HTTP server
func NewServer(
	userHandler *handlers.UserHandler,
	playerHandler *handlers.PlayerHandler,
	kingdomHandler *handlers.KingdomHandler,
	applicationHandler *handlers.ApplicationHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	server := &Server{
		router:             router,
		userHandler:        userHandler,
		playerHandler:      playerHandler,
		kingdomHandler:     kingdomHandler,
		applicationHandler: applicationHandler,
		errorHandler:       errorHandler,
		port:               port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", s.userHandler.Register)
			users.GET("/:id/player", s.userHandler.GetPlayerProfile)
			users.GET("/:id/kingdom", s.userHandler.GetKingdomListing)
		}

		players := api.Group("/players")
		{
			players.GET("", s.playerHandler.List)
			players.GET("/facets", s.playerHandler.Facets)
			players.GET("/:id", s.playerHandler.Get)
			players.POST("", s.playerHandler.Create)
			players.PATCH("/:id", s.playerHandler.Update)
			players.GET("/:id/applications", s.applicationHandler.ListByPlayer)
		}

		kingdoms := api.Group("/kingdoms")
		{
			kingdoms.GET("", s.kingdomHandler.List)
			kingdoms.GET("/facets", s.kingdomHandler.Facets)
			kingdoms.GET("/:id", s.kingdomHandler.Get)
			kingdoms.POST("", s.kingdomHandler.Create)
			kingdoms.PATCH("/:id", s.kingdomHandler.Update)
			kingdoms.GET("/:id/applications", s.applicationHandler.ListByKingdom)
		}

		applications := api.Group("/applications")
		{
			applications.POST("", s.applicationHandler.Submit)
			applications.PATCH("/:id", s.applicationHandler.Decide)
		}
	}
}

// Router returns the underlying gin engine, used by handler tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
