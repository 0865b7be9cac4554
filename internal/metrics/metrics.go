package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "hotel_billing"

// Metrics exposes the application instruments. A nil *Metrics is valid and
// records nothing, which keeps services usable without a registry.
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	invoicesCreated  *prometheus.CounterVec
	invoicedAmount   prometheus.Counter
	paymentsRecorded *prometheus.CounterVec
	collectedAmount  prometheus.Counter
	transitions      *prometheus.CounterVec
	operationErrors  *prometheus.CounterVec
}

// New registers the instruments on registerer (the default registerer when nil).
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		invoicesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_created_total",
			Help:      "Invoices created by order type.",
		}, []string{"order_type"}),
		invoicedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoiced_amount_total",
			Help:      "Sum of invoice totals at creation.",
		}),
		paymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Payments recorded by method.",
		}, []string{"method"}),
		collectedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collected_amount_total",
			Help:      "Sum of recorded payment amounts.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_status_transitions_total",
			Help:      "Invoice lifecycle transitions.",
		}, []string{"from", "to"}),
		operationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Failed invoice operations by low-cardinality reason.",
		}, []string{"operation", "reason"}),
	}

	registerer.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.invoicesCreated,
		m.invoicedAmount,
		m.paymentsRecorded,
		m.collectedAmount,
		m.transitions,
		m.operationErrors,
	)

	return m
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// InvoiceCreated records a committed invoice.
func (m *Metrics) InvoiceCreated(orderType string, total decimal.Decimal) {
	if m == nil {
		return
	}
	m.invoicesCreated.WithLabelValues(orderType).Inc()
	if f := total.InexactFloat64(); f > 0 {
		m.invoicedAmount.Add(f)
	}
}

// PaymentRecorded records a committed payment.
func (m *Metrics) PaymentRecorded(method string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(method).Inc()
	if f := amount.InexactFloat64(); f > 0 {
		m.collectedAmount.Add(f)
	}
}

// StatusTransition records an invoice moving between lifecycle states.
func (m *Metrics) StatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

// OperationFailed records a failed operation. reason must be low-cardinality.
func (m *Metrics) OperationFailed(operation, reason string) {
	if m == nil {
		return
	}
	m.operationErrors.WithLabelValues(operation, reason).Inc()
}
