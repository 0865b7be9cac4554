package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/infrastructure/database"
	"github.com/sangkips/hotel-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/hotel-billing-api/internal/logger"
	"github.com/sangkips/hotel-billing-api/internal/metrics"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/response"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/handler"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/routes"
	"github.com/sangkips/hotel-billing-api/pkg/utils"
	"go.uber.org/zap"
)

const idempotencyCleanupInterval = time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hotel-billing-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, !cfg.IsProduction() && cfg.App.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.ConfigFileErr != nil {
		log.Info("no .env file loaded, using environment only", zap.Error(cfg.ConfigFileErr))
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	response.ExposeInternalErrors(cfg.App.Debug && !cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.AutoMigrate(db, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := database.SeedDefaultData(ctx, db, &cfg.Admin, log); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Initialize repositories
	tx := repository.NewTransactor(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserAccountRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceHistoryRepo := repository.NewPriceHistoryRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taxSlabRepo := repository.NewTaxSlabRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	invoiceQuery := service.NewInvoiceQueryService(invoiceRepo)
	invoiceService := service.NewInvoiceService(tx, invoiceRepo, paymentRepo, productRepo, invoiceQuery, auditService, cfg.Billing, m, log)
	paymentService := service.NewPaymentService(invoiceRepo, paymentRepo)
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	employeeService := service.NewEmployeeService(employeeRepo)
	productService := service.NewProductService(tx, productRepo, priceHistoryRepo, categoryRepo, taxSlabRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	taxSlabService := service.NewTaxSlabService(taxSlabRepo)
	reportService := service.NewReportService(reportRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Invoice:  handler.NewInvoiceHandler(invoiceService, invoiceQuery),
		Payment:  handler.NewPaymentHandler(paymentService, invoiceService),
		Employee: handler.NewEmployeeHandler(employeeService),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		TaxSlab:  handler.NewTaxSlabHandler(taxSlabService),
		Report:   handler.NewReportHandler(reportService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          log,
		Metrics:         m,
		Gatherer:        registry,
		DB:              db,
		Ctx:             ctx,
	})

	go purgeIdempotencyKeys(ctx, idempotencyRepo, log)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("port", port),
			zap.String("database", cfg.Database.Type),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

type expiredKeyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

func purgeIdempotencyKeys(ctx context.Context, repo expiredKeyPurger, log *zap.Logger) {
	ticker := time.NewTicker(idempotencyCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Warn("purge idempotency keys failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("purged idempotency keys", zap.Int64("count", n))
			}
		}
	}
}
