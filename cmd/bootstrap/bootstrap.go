package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetclinic-backoffice/config"
	deliveryHttp "vetclinic-backoffice/internal/delivery/http"
	"vetclinic-backoffice/internal/delivery/http/handler"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/infrastructure/cache"
	"vetclinic-backoffice/internal/infrastructure/database"
	"vetclinic-backoffice/internal/repository"
	"vetclinic-backoffice/internal/service"
	"vetclinic-backoffice/internal/usecase"
	"vetclinic-backoffice/pkg/jwt"
	"vetclinic-backoffice/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Sweeper     *service.Sweeper
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

	// Apply pending schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

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

	// Initialize all layers
	server, sweeper := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Sweeper = sweeper

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server and background sweeper
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.Sweeper) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	nurseProfileRepo := repository.NewNurseProfileRepository()
	moderatorProfileRepo := repository.NewModeratorProfileRepository()
	clientProfileRepo := repository.NewClientProfileRepository()
	petRepo := repository.NewPetRepository()
	serviceRepo := repository.NewServiceRepository()
	medicineRepo := repository.NewMedicineRepository()
	medicalCardRepo := repository.NewMedicalCardRepository()
	serviceSelectionRepo := repository.NewServiceSelectionRepository()
	stationaryRoomRepo := repository.NewStationaryRoomRepository()
	scheduleRepo := repository.NewScheduleRepository()
	taskRepo := repository.NewTaskRepository()
	doctorTaskRepo := repository.NewDoctorTaskRepository()
	nurseDailySalaryRepo := repository.NewNurseDailySalaryRepository()
	nurseIncomeRepo := repository.NewNurseIncomeRepository()
	doctorIncomeRepo := repository.NewDoctorIncomeRepository()
	paymentRepo := repository.NewPaymentRepository()
	paymentDayRepo := repository.NewPaymentDayRepository()
	jobRunRepo := repository.NewJobRunRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	auditService := service.NewAuditService(log, auditLogRepo)
	billingService := service.NewBillingService(log, medicalCardRepo, serviceSelectionRepo, serviceRepo, medicineRepo)
	roomService := service.NewRoomService(log, stationaryRoomRepo)
	incomeService := service.NewIncomeService(log, nurseProfileRepo, taskRepo, nurseDailySalaryRepo, nurseIncomeRepo, doctorIncomeRepo, jobRunRepo)
	settlementService := service.NewSettlementService(log, medicalCardRepo, paymentRepo, paymentDayRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	staffUsecase := usecase.NewStaffUsecase(db, log, userRepo, doctorProfileRepo, nurseProfileRepo, moderatorProfileRepo, clientProfileRepo, doctorIncomeRepo)
	petUsecase := usecase.NewPetUsecase(db, log, petRepo, clientProfileRepo)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, serviceRepo, medicineRepo)
	medicalCardUsecase := usecase.NewMedicalCardUsecase(db, log, medicalCardRepo, serviceSelectionRepo, clientProfileRepo, petRepo, doctorProfileRepo, nurseProfileRepo, billingService, roomService, auditService)
	roomUsecase := usecase.NewRoomUsecase(db, log, stationaryRoomRepo, petRepo, roomService, auditService)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, medicalCardRepo, doctorProfileRepo, nurseProfileRepo)
	taskUsecase := usecase.NewTaskUsecase(db, log, taskRepo, doctorTaskRepo, scheduleRepo, medicalCardRepo, nurseProfileRepo, doctorProfileRepo, serviceRepo, incomeService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, paymentDayRepo, medicalCardRepo, moderatorProfileRepo, settlementService, auditService)
	salaryUsecase := usecase.NewSalaryUsecase(db, log, nurseDailySalaryRepo, nurseIncomeRepo, doctorIncomeRepo, nurseProfileRepo, doctorProfileRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	staffHandler := handler.NewStaffHandler(staffUsecase, customValidator)
	petHandler := handler.NewPetHandler(petUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, customValidator)
	medicalCardHandler := handler.NewMedicalCardHandler(medicalCardUsecase, customValidator)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	taskHandler := handler.NewTaskHandler(taskUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	salaryHandler := handler.NewSalaryHandler(salaryUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		staffHandler,
		petHandler,
		catalogHandler,
		medicalCardHandler,
		roomHandler,
		scheduleHandler,
		taskHandler,
		paymentHandler,
		salaryHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Initialize background sweeper
	sweeper := service.NewSweeper(db, log, cfg.Scheduler, roomService, incomeService, medicalCardRepo, paymentDayRepo)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
	return server, sweeper
}

// Run starts the sweeper and HTTP server and handles graceful shutdown
func (app *App) Run() {
	if err := app.Sweeper.Start(); err != nil {
		logrus.Fatalf("Failed to start sweeper: %v", err)
	}

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

	// Wait for in-flight sweeper jobs
	app.Sweeper.Stop()

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
