package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/gradpoint/gms-api/api/swagger"
	"github.com/gradpoint/gms-api/internal/handler"
	"github.com/gradpoint/gms-api/internal/middleware"
	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	"github.com/gradpoint/gms-api/internal/store"
	"github.com/gradpoint/gms-api/pkg/cache"
	"github.com/gradpoint/gms-api/pkg/config"
	"github.com/gradpoint/gms-api/pkg/export"
	"github.com/gradpoint/gms-api/pkg/jobs"
	"github.com/gradpoint/gms-api/pkg/logger"
	corsmiddleware "github.com/gradpoint/gms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gradpoint/gms-api/pkg/middleware/requestid"
)

const version = "0.1.0"

// @title GradPoint GMS API
// @version 0.1.0
// @description Graduation management dashboard backend
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores, seeded with the deterministic dataset.
	students := store.NewStudentStore()
	students.Seed(store.SeedStudents(cfg.Seed.StudentCount, cfg.Seed.GraduationYear))
	users := store.NewUserStore()
	for _, u := range store.SeedUsers() {
		users.Add(u)
	}
	ledger := store.NewPaymentLedger()
	attendees := store.NewCeremonyStore()
	for _, a := range store.SeedAttendees(students.All()) {
		attendees.Upsert(a)
	}
	documents := store.NewDocumentStore()
	alumni := store.NewAlumniStore()
	tasks := store.NewTaskStore()

	logr.Info("stores seeded",
		zap.Int("students", students.Count()),
		zap.Int("attendees", len(attendees.All())),
	)

	// Optional redis-backed cache for dashboard aggregates. The server runs
	// fine without it.
	metricsService := service.NewMetricsService()
	var cacheService *service.CacheService
	if client, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		cacheService = service.NewCacheService(nil, metricsService, cfg.Dashboard.CacheTTL, logr, false)
	} else {
		defer client.Close()
		cacheService = service.NewCacheService(store.NewRedisCache(client), metricsService, cfg.Dashboard.CacheTTL, logr, true)
	}

	// Task queue and the services riding on it.
	taskService := service.NewTaskService(tasks, nil, cfg.Tasks.SimulatedLatency, logr)
	taskService.AttachMetrics(metricsService)
	queue := jobs.NewQueue("tasks", taskService.Execute, jobs.QueueConfig{
		Workers:    cfg.Tasks.Workers,
		BufferSize: cfg.Tasks.BufferSize,
		Logger:     logr,
	})
	taskService.SetQueue(queue)
	queue.Start(ctx)
	defer queue.Stop()

	classification := store.DefaultClassification()
	validate := validator.New()

	studentService := service.NewStudentService(students, validate, logr)
	clearanceService := service.NewClearanceService(students, logr)
	graduationService := service.NewGraduationService(students, classification, logr)
	financeService := service.NewFinanceService(students, ledger, taskService, validate, logr)
	ceremonyService := service.NewCeremonyService(attendees, graduationService, logr)
	documentService := service.NewDocumentService(documents, students, taskService,
		export.NewDocumentRenderer("GradPoint University"), cfg.Documents.StorageDir, validate, logr)
	alumniService := service.NewAlumniService(alumni, graduationService, taskService, logr)
	authService := service.NewAuthService(users, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     "gms-api",
	})
	userService := service.NewUserService(users, validate, logr)
	reportService := service.NewReportService(students, graduationService, ledger, attendees,
		taskService, export.NewCSVExporter(), export.NewPDFExporter(), logr, service.ReportServiceConfig{
			StorageDir: cfg.Reports.StorageDir,
			ResultTTL:  cfg.Reports.ResultTTL,
		})
	reportService.StartCleanup(ctx, time.Hour)
	dashboardService := service.NewDashboardService(students, documents, cacheService, metricsService,
		cfg.Dashboard.CacheTTL, logr)
	settingsService := service.NewSettingsService(students, taskService, metricsService, cacheService,
		version, cfg.Env, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "students": students.Count()})
	})
	r.GET("/metrics", gin.WrapH(metricsService.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	authHandler := handler.NewAuthHandler(authService, userService)
	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(authService))
	// Every write invalidates the cached dashboard aggregates.
	secured.Use(func(c *gin.Context) {
		c.Next()
		if c.Request.Method != http.MethodGet && c.Writer.Status() < http.StatusBadRequest {
			dashboardService.Invalidate(c.Request.Context())
		}
	})

	secured.GET("/auth/me", authHandler.Me)

	studentHandler := handler.NewStudentHandler(studentService)
	secured.GET("/students", studentHandler.List)
	secured.GET("/students/:id", studentHandler.Get)
	secured.PUT("/students/:id", studentHandler.Update)
	secured.DELETE("/students/:id", studentHandler.Delete)

	clearanceHandler := handler.NewClearanceHandler(clearanceService)
	secured.GET("/clearance", clearanceHandler.Overview)
	secured.POST("/clearance/bulk-approve", clearanceHandler.BulkApprove)
	secured.POST("/clearance/:studentId/:department/approve", clearanceHandler.Approve)
	secured.POST("/clearance/:studentId/:department/reject", clearanceHandler.Reject)

	graduationHandler := handler.NewGraduationHandler(graduationService)
	secured.GET("/graduation/eligible", graduationHandler.Eligible)
	secured.GET("/graduation/list", graduationHandler.List)

	financeHandler := handler.NewFinanceHandler(financeService)
	secured.GET("/finance/payments", financeHandler.ListPayments)
	secured.POST("/finance/payments", financeHandler.Record)
	secured.POST("/finance/waive/:id", financeHandler.Waive)
	secured.POST("/finance/remind", financeHandler.Remind)
	secured.GET("/finance/summary", financeHandler.Summary)

	if cfg.Ceremony.Enabled {
		ceremonyHandler := handler.NewCeremonyHandler(ceremonyService)
		secured.GET("/ceremony/attendees", ceremonyHandler.List)
		secured.POST("/ceremony/sync", ceremonyHandler.Sync)
		secured.POST("/ceremony/attendees/:id/confirm", ceremonyHandler.Confirm)
		secured.POST("/ceremony/attendees/:id/gown", ceremonyHandler.CollectGown)
		secured.GET("/ceremony/summary", ceremonyHandler.Summary)
	}

	if cfg.Documents.Enabled {
		documentHandler := handler.NewDocumentHandler(documentService)
		secured.GET("/documents", documentHandler.List)
		secured.POST("/documents", documentHandler.Request)
		secured.POST("/documents/:id/generate", documentHandler.Generate)
		secured.GET("/documents/:id/download", documentHandler.Download)
	}

	if cfg.Alumni.Enabled {
		alumniHandler := handler.NewAlumniHandler(alumniService)
		secured.GET("/alumni", alumniHandler.List)
		secured.POST("/alumni/rollover", alumniHandler.Rollover)
	}

	if cfg.Reports.Enabled {
		reportHandler := handler.NewReportHandler(reportService)
		secured.POST("/reports/generate", reportHandler.Generate)
		secured.GET("/reports/:id/download", reportHandler.Download)
	}

	if cfg.Dashboard.Enabled {
		dashboardHandler := handler.NewDashboardHandler(dashboardService)
		secured.GET("/dashboard/summary", dashboardHandler.Summary)
	}

	settingsHandler := handler.NewSettingsHandler(settingsService)
	secured.GET("/settings/system", settingsHandler.Info)
	secured.POST("/settings/backup", settingsHandler.Backup)

	taskHandler := handler.NewTaskHandler(taskService)
	secured.GET("/tasks/:id", taskHandler.Get)

	admin := secured.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))
	userHandler := handler.NewUserHandler(userService)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Deactivate)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("shutdown incomplete", "error", err)
	}
}
