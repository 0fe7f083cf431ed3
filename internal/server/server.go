package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/auth"
	"github.com/gravadigital/eventi-api/internal/config"
	"github.com/gravadigital/eventi-api/internal/directory"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/handlers"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/services"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	db         *gorm.DB
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config: cfg,
		db:     db,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(s.config.Server.GinMode)

	router := gin.New()

	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{s.config.CORS.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Repositories
	repos := postgres.NewContainerWithDB(s.db)

	// External collaborators
	tokens := auth.NewTokenService(s.config.JWT.Secret, s.config.JWT.AccessTTL, s.config.JWT.RefreshTTL)
	verifier := auth.NewGoogleVerifier(s.config.Identity.Audience)
	gate := directory.New(s.config)

	// Services
	partecipationService := services.NewPartecipationService(repos.Partecipations(), repos.Events(), repos.Users())
	eventService := services.NewEventService(
		repos.Events(), repos.Users(), partecipationService,
		repos.Partecipations(), repos.Ferie(), repos.Activities(), repos.TeamBuilding())
	ferieService := services.NewFerieService(repos.Ferie(), repos.Events())
	activityService := services.NewActivityService(repos.Activities(), repos.Events())
	teamBuildingService := services.NewTeamBuildingService(repos.TeamBuilding(), repos.Events(), repos.Activities())
	userService := services.NewUserService(repos.Users(), repos.Groups())
	authService := services.NewAuthService(verifier, gate, tokens, repos.Users())

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	partecipationHandler := handlers.NewPartecipationHandler(partecipationService)
	ferieHandler := handlers.NewFerieHandler(ferieService)
	activityHandler := handlers.NewActivityHandler(activityService)
	teamBuildingHandler := handlers.NewTeamBuildingHandler(teamBuildingService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Eventi API is running",
			"status":  "healthy",
		})
	})

	authenticate := middleware.Authenticate(tokens, repos.Users())
	privileged := middleware.RequireRoles(user.RoleAdmin, user.RoleEditor)
	adminOnly := middleware.RequireRoles(user.RoleAdmin)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.Refresh)
			authRoutes.GET("/me", authenticate, authHandler.Me)
		}

		events := api.Group("/events", authenticate)
		{
			events.GET("", eventHandler.GetAllEvents)
			events.GET("/me", eventHandler.GetMyEvents)
			events.GET("/:event_id", eventHandler.GetEvent)
			events.POST("", privileged, eventHandler.CreateEvent)
			events.PUT("/:event_id", privileged, eventHandler.UpdateEvent)
			events.DELETE("/:event_id", privileged, eventHandler.DeleteEvent)

			events.GET("/:event_id/partecipations", partecipationHandler.GetByEvent)

			events.GET("/:event_id/activities", activityHandler.GetActivitiesByEvent)
			events.POST("/:event_id/activities", activityHandler.CreateActivity)

			events.GET("/:event_id/teambuilding", teamBuildingHandler.GetSignUps)
			events.GET("/:event_id/teambuilding/popularity", teamBuildingHandler.GetActivityPopularity)
			events.POST("/:event_id/teambuilding", teamBuildingHandler.CreateSignUp)
			events.DELETE("/:event_id/teambuilding", teamBuildingHandler.DeleteSignUp)
		}

		partecipations := api.Group("/partecipations", authenticate)
		{
			partecipations.GET("", privileged, partecipationHandler.GetAllPartecipations)
			partecipations.GET("/me", partecipationHandler.GetMine)
			partecipations.GET("/:partecipation_id", partecipationHandler.GetPartecipation)
			partecipations.POST("", privileged, partecipationHandler.CreatePartecipations)
			partecipations.PATCH("/:partecipation_id/status", partecipationHandler.UpdateStatus)
			partecipations.DELETE("/:partecipation_id", privileged, partecipationHandler.DeletePartecipation)
		}

		ferieRoutes := api.Group("/ferie", authenticate)
		{
			ferieRoutes.GET("", privileged, ferieHandler.GetAllFerie)
			ferieRoutes.GET("/me", ferieHandler.GetMyFerie)
			ferieRoutes.POST("", ferieHandler.CreateFerie)
			ferieRoutes.PUT("/:ferie_id", ferieHandler.UpdateFerie)
			ferieRoutes.PATCH("/:ferie_id/status", privileged, ferieHandler.UpdateStatus)
			ferieRoutes.DELETE("/:ferie_id", privileged, ferieHandler.DeleteFerie)
		}

		activities := api.Group("/activities", authenticate)
		{
			activities.GET("/:activity_id", activityHandler.GetActivity)
			activities.PUT("/:activity_id", activityHandler.UpdateActivity)
			activities.DELETE("/:activity_id", activityHandler.DeleteActivity)
		}

		users := api.Group("/users", authenticate)
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:user_id", userHandler.GetUser)
			users.PATCH("/:user_id/role", adminOnly, userHandler.UpdateRole)
		}

		groups := api.Group("/groups", authenticate)
		{
			groups.GET("", userHandler.GetAllGroups)
			groups.GET("/:group_id", userHandler.GetGroup)
			groups.POST("", privileged, userHandler.CreateGroup)
			groups.PUT("/:group_id", privileged, userHandler.UpdateGroup)
			groups.DELETE("/:group_id", privileged, userHandler.DeleteGroup)
		}
	}

	return router
}
