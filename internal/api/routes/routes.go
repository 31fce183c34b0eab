package routes

import (
	"log"

	"contest-backend/internal/api/handlers"
	"contest-backend/internal/api/middleware"
	"contest-backend/internal/auth"
	"contest-backend/internal/config"
	"contest-backend/internal/repository"
	"contest-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	judgeRepo := repository.NewJudgeRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)

	// Initialize auth: prefer config/auth.yaml, fall back to the main config
	authConfig, err := auth.LoadConfig("config/auth.yaml")
	if err != nil {
		authConfig = auth.DefaultConfig(cfg.JWTSecret, cfg.JWTExpiryHours)
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	accountService := service.NewAccountService(accountRepo)
	registrationService := service.NewRegistrationService(db, accountRepo, memberRepo, projectRepo, cfg.Deadline())
	evaluationService := service.NewEvaluationService(db, evaluationRepo, accountRepo, judgeRepo, projectRepo)
	judgeService := service.NewJudgeService(judgeRepo, authService)
	mailService := service.NewMailService(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	accountHandler := handlers.NewAccountHandler(accountService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	judgeHandler := handlers.NewJudgeHandler(judgeService)
	mailHandler := handlers.NewMailHandler(mailService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/login", accountHandler.Login)
		api.POST("/judges/login", judgeHandler.Login)
		api.POST("/mail", mailHandler.Send)
		api.POST("/accounts/:id/registration", registrationHandler.Register)
		api.GET("/accounts/:id/registration", registrationHandler.GetRegistration)

		// Judge routes require a valid token
		judged := api.Group("")
		judged.Use(authMiddleware.RequireJudge())
		{
			judged.PUT("/accounts/:id/evaluation", evaluationHandler.Submit)
			judged.GET("/accounts/:id/evaluation", evaluationHandler.GetOwn)
			judged.GET("/accounts/:id/evaluations", evaluationHandler.ListByAccount)
		}

		// Admin routes additionally require the admin claim
		admin := api.Group("")
		admin.Use(authMiddleware.RequireJudge(), authMiddleware.RequireAdmin())
		{
			admin.GET("/accounts", accountHandler.ListAccounts)
			admin.DELETE("/accounts/:id", accountHandler.DeleteAccount)
			admin.GET("/evaluations", evaluationHandler.ListAll)
			admin.GET("/stats", evaluationHandler.Stats)
		}
	}

	return router
}
