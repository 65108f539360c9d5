package main

import (
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/handler"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/middleware"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/store"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/config"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/database"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/jwtutil"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/logger"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting RERA document tracking service...", zap.String("environment", cfg.Server.Env))

	// Initialize database (includes migrations)
	db, err := database.Init(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed")

	// Initialize token signing with configuration
	jwtutil.Init(cfg)

	// Wire the persistence port into the core components
	st := store.New(db)
	checklist := service.NewChecklistManager(st)
	registry := service.NewClientRegistry(st, checklist)
	ledger := service.NewPaymentLedger(st)
	tasks := service.NewTaskService(st)
	auth := service.NewAuthService(st)

	authHandler := handler.NewAuthHandler(auth)
	clientHandler := handler.NewClientHandler(registry)
	documentHandler := handler.NewDocumentHandler(checklist, registry)
	paymentHandler := handler.NewPaymentHandler(ledger)
	taskHandler := handler.NewTaskHandler(tasks)
	healthHandler := handler.NewHealthHandler(db)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/", handler.Hello)
	e.GET("/api/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// Protected routes - bearer token required
	api := e.Group("/api", middleware.AuthMiddleware)

	api.GET("/user", authHandler.CurrentUser)

	api.GET("/clients", clientHandler.List)
	api.POST("/clients", clientHandler.Create)
	api.GET("/clients/:id", clientHandler.Get)
	api.PUT("/clients/:id", clientHandler.Update)
	api.DELETE("/clients/:id", clientHandler.Delete)
	api.GET("/search/clients", clientHandler.Search)

	api.GET("/documents/:clientId", documentHandler.Get)
	api.PUT("/documents/:clientId", documentHandler.SetStatus)
	api.POST("/documents/:clientId/add", documentHandler.AddLabel)
	api.GET("/reports/pending-documents", documentHandler.PendingForOwner)
	api.GET("/reports/pending-documents/:clientId", documentHandler.PendingForClient)

	api.GET("/payments", paymentHandler.ListForOwner)
	api.POST("/payments", paymentHandler.Create)
	api.GET("/payments/:clientId", paymentHandler.ListForClient)
	api.PUT("/payments/:id/record", paymentHandler.Record)
	api.DELETE("/payments/:id", paymentHandler.Delete)

	api.POST("/tasks", taskHandler.Create)
	api.GET("/tasks/:clientId", taskHandler.ListForClient)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
