package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	domainRepo "github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/internal/metrics"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/handler"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/middleware"
	"github.com/sangkips/hotel-billing-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Invoice  *handler.InvoiceHandler
	Payment  *handler.PaymentHandler
	Employee *handler.EmployeeHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	TaxSlab  *handler.TaxSlabHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
	Metrics         *metrics.Metrics
	Gatherer        prometheus.Gatherer
	DB              *gorm.DB
	// Ctx bounds background work started by the router, such as the rate
	// limiter sweep.
	Ctx context.Context
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	handler.UseJSONFieldNames()

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx := deps.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware(deps.Metrics))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", healthHandler(deps))

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewActorRateLimiter(ctx,
			middleware.RateLimiterConfigFrom(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func healthHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		}

		if deps.DB != nil {
			sqlDB, err := deps.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body["database"] = "unreachable"
			} else {
				body["database"] = "ok"
			}
		}

		c.JSON(status, body)
	}
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.GetProfile)

	// Users (Admin)
	protected.POST("/users", middleware.RequireRole(enum.RoleAdmin), h.Auth.CreateUser)

	registerInvoiceRoutes(protected, h, deps)
	registerPaymentRoutes(protected, h)
	registerEmployeeRoutes(protected, h)
	registerCatalogRoutes(protected, h)

	// Reports
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(enum.RoleAdmin, enum.RoleCashier))
	{
		reports.GET("/sales", h.Report.Sales)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		// Invoice creation honours an optional Idempotency-Key header
		invoices.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/pay", h.Invoice.Pay)
		invoices.POST("/:id/cancel", h.Invoice.Cancel)
		invoices.PUT("/:id/status", h.Invoice.UpdateStatus)
	}
}

func registerPaymentRoutes(protected *gin.RouterGroup, h *Handlers) {
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.POST("/:invoice_id/pay", h.Payment.Pay)
	}
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
		employees.POST("", middleware.RequireRole(enum.RoleAdmin), h.Employee.Create)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	adminOnly := middleware.RequireRole(enum.RoleAdmin)

	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.GET("/:id/prices", h.Product.PriceHistory)
		products.POST("", adminOnly, h.Product.Create)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", adminOnly, h.Category.Create)
	}

	taxSlabs := protected.Group("/tax-slabs")
	{
		taxSlabs.GET("", h.TaxSlab.List)
		taxSlabs.POST("", adminOnly, h.TaxSlab.Ensure)
	}
}
