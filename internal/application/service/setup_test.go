package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/hotel-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/hotel-billing-api/internal/metrics"
	"github.com/sangkips/hotel-billing-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	metrics  *metrics.Metrics
	invoices *InvoiceService
	query    *InvoiceQueryService
	payments *PaymentService
	audit    *AuditService
	auth     *AuthService
	employee *EmployeeService
	products *ProductService
	category *CategoryService
	taxSlabs *TaxSlabService
	reports  *ReportService
	jwt      *utils.JWTManager
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	log := zap.NewNop()
	db, err := database.New(&config.DatabaseConfig{Type: "sqlite", Path: ":memory:"}, log)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, log))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	tx := infraRepo.NewTransactor(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	categoryRepo := infraRepo.NewCategoryRepository(db)
	taxSlabRepo := infraRepo.NewTaxSlabRepository(db)

	m := metrics.New(prometheus.NewRegistry())
	audit := NewAuditService(infraRepo.NewAuditLogRepository(db))
	query := NewInvoiceQueryService(invoiceRepo)
	jwt := utils.NewJWTManager("test-secret", "hotel-billing-test", time.Hour, 24*time.Hour)

	return &testEnv{
		db:      db,
		metrics: m,
		invoices: NewInvoiceService(tx, invoiceRepo, paymentRepo, productRepo, query, audit,
			config.BillingConfig{DefaultPaymentMethod: "cash", PaymentReferencePrefix: "PAY-"}, m, zap.NewNop()),
		query:    query,
		payments: NewPaymentService(invoiceRepo, paymentRepo),
		audit:    audit,
		auth:     NewAuthService(infraRepo.NewUserAccountRepository(db), infraRepo.NewRoleRepository(db), jwt),
		employee: NewEmployeeService(infraRepo.NewEmployeeRepository(db)),
		products: NewProductService(tx, productRepo, infraRepo.NewPriceHistoryRepository(db), categoryRepo, taxSlabRepo),
		category: NewCategoryService(categoryRepo),
		taxSlabs: NewTaxSlabService(taxSlabRepo),
		reports:  NewReportService(infraRepo.NewReportRepository(db)),
		jwt:      jwt,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}
