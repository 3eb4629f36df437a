package app

import (
	"context"
	"fmt"

	"careerpilot_backend/database"
	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/email"
	"careerpilot_backend/internal/handlers"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/internal/routes"
	"careerpilot_backend/internal/services"
	"careerpilot_backend/internal/validator"
	"careerpilot_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := seedFeatureCosts(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed feature costs", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	insightWorker := workers.NewInsightWorker(repositories.NewInsightRepository(gormDB))
	insightWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles repositories, services and handlers on top of the
// given database handle. Tests call it directly with an in-memory DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
	} else {
		logger.Warn("SMTP is not configured, payment receipts are disabled")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	tokenRepo := repositories.NewTokenRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	insightRepo := repositories.NewInsightRepository(gormDB)
	assessmentRepo := repositories.NewAssessmentRepository(gormDB)
	resumeRepo := repositories.NewResumeRepository(gormDB)
	letterRepo := repositories.NewCoverLetterRepository(gormDB)
	featureCostRepo := repositories.NewFeatureCostRepository(gormDB)

	tokenService := services.NewTokenService(tokenRepo, featureCostRepo)

	return &services.ServiceContainer{
		UserService:        services.NewUserService(userRepo, insightRepo),
		TokenService:       tokenService,
		PaymentService:     services.NewPaymentService(paymentRepo, userRepo, emailProvider),
		InsightService:     services.NewInsightService(insightRepo),
		AssessmentService:  services.NewAssessmentService(assessmentRepo, tokenService),
		ResumeService:      services.NewResumeService(resumeRepo, tokenService),
		CoverLetterService: services.NewCoverLetterService(letterRepo, tokenService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFeatureCosts writes the default price list. Existing rows keep any
// manually adjusted cost.
func seedFeatureCosts(db *gorm.DB, cfg *config.Config) error {
	repo := repositories.NewFeatureCostRepository(db)

	defaults := []struct {
		feature     string
		cost        int
		description string
	}{
		{models.FeatureCareerQuiz, cfg.Tokens.DefaultFeatureCost, "Adaptive career readiness quiz"},
		{models.FeatureResumeAnalysis, cfg.Tokens.DefaultFeatureCost, "ATS scoring and feedback for a resume"},
		{models.FeatureCoverLetter, cfg.Tokens.DefaultFeatureCost, "Tailored cover letter generation"},
		{models.FeatureIndustryInsight, cfg.Tokens.DefaultFeatureCost, "On-demand industry insight refresh"},
	}

	for _, d := range defaults {
		if _, err := repo.FindByName(d.feature); err == nil {
			continue
		}
		if _, err := repo.Upsert(d.feature, d.cost, d.description); err != nil {
			return fmt.Errorf("failed to seed feature cost %q: %w", d.feature, err)
		}
		logger.Info("Seeded feature cost", "feature", d.feature, "cost", d.cost)
	}
	return nil
}
