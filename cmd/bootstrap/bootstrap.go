package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-records-api/config"
	deliveryHttp "medical-records-api/internal/delivery/http"
	"medical-records-api/internal/delivery/http/handler"
	"medical-records-api/internal/delivery/http/middleware"
	"medical-records-api/internal/infrastructure/cache"
	"medical-records-api/internal/infrastructure/database"
	infraStorage "medical-records-api/internal/infrastructure/storage"
	"medical-records-api/internal/repository"
	"medical-records-api/internal/service/storage"
	"medical-records-api/internal/usecase"
	"medical-records-api/pkg/jwt"
	"medical-records-api/pkg/validator"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	MinioClient *minio.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize MinIO
	minioClient, err := infraStorage.NewMinioClient(cfg.Minio)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	app.MinioClient = minioClient
	logrus.Info("Object storage connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, minioClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, minioClient *minio.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	receptionistRepo := repository.NewReceptionistRepository()
	patientRepo := repository.NewPatientRepository()
	caseRepo := repository.NewCaseRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize attachment store
	attachmentStore := storage.NewAttachmentStore(minioClient, cfg.Minio.Bucket)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorRepo, receptionistRepo, jwtService, redisClient)
	userAdminUsecase := usecase.NewUserAdminUsecase(db, log, userRepo, doctorRepo, receptionistRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, doctorRepo, receptionistRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	caseUsecase := usecase.NewCaseUsecase(db, log, caseRepo, patientRepo, doctorRepo, receptionistRepo, attachmentStore)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, caseRepo, doctorRepo, receptionistRepo, attachmentStore)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, caseRepo, receptionistRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userAdminHandler := handler.NewUserAdminHandler(userAdminUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	caseHandler := handler.NewCaseHandler(caseUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userAdminHandler,
		patientHandler,
		doctorHandler,
		caseHandler,
		prescriptionHandler,
		appointmentHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
