package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/naborsk/racequiz/config"
	"github.com/naborsk/racequiz/database"
	_ "github.com/naborsk/racequiz/docs" // Swagger docs
	adminctrl "github.com/naborsk/racequiz/internal/controller/admin"
	userctrl "github.com/naborsk/racequiz/internal/controller/user"
	"github.com/naborsk/racequiz/internal/identity"
	"github.com/naborsk/racequiz/internal/logger"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/naborsk/racequiz/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Race Quiz API
// @version 1.0
// @description Event registration quiz: participants answer QR-coded questions, organizers upload question and telemetry CSVs and read aggregated results.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewTelemetryRepository,
		),

		fx.Provide(
			identity.NewJWTProvider,
			service.NewAttemptService,
			service.NewQuestionService,
			service.NewSyncService,
			service.NewResultsService,
			service.NewUserService,
			func(attemptRepo repository.AttemptRepository, cfg *config.Config) service.RosterService {
				return service.NewRosterService(attemptRepo, cfg.Quiz.MaxQuestions)
			},
		),

		fx.Provide(
			userctrl.NewParticipantController,
			adminctrl.NewOrgController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Tag every request so a log line can be tied back to a client report.
	r.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	})

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	provider identity.Provider,
	participantCtrl *userctrl.ParticipantController,
	orgCtrl *adminctrl.OrgController,
) {
	api := router.Group("/api/v1")
	api.Use(identity.RequireAuth(provider))
	{
		api.GET("/questions/:org_id", participantCtrl.GetQuestion)
		api.POST("/answer", participantCtrl.SubmitAnswer)
		api.POST("/register", participantCtrl.RegisterNumber)

		org := api.Group("/org")
		org.Use(identity.RequireAdmin())
		{
			org.POST("/sync", orgCtrl.SyncQuestions)
			org.POST("/telemetry", orgCtrl.SyncTelemetry)
			org.GET("/results", orgCtrl.GetResults)
			org.GET("/users", orgCtrl.ListUsers)
			org.PATCH("/users/:user_id", orgCtrl.UpdateUserNumber)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Race Quiz API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Attempt{},
		&model.Telemetry{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
