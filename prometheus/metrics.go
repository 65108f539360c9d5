package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counters
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rera_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Registration counters
	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rera_register_total",
			Help: "Total number of user registrations",
		},
	)

	// Client record operations
	ClientOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rera_client_operations_total",
			Help: "Total number of client record operations",
		},
		[]string{"operation"}, // "create", "update", "delete", "search"
	)

	// Checklist mutations
	ChecklistUpdateCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rera_checklist_updates_total",
			Help: "Total number of document checklist mutations",
		},
		[]string{"operation"}, // "seed", "set_status", "add_label"
	)

	// Payment ledger operations
	PaymentOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rera_payment_operations_total",
			Help: "Total number of payment ledger operations",
		},
		[]string{"operation"}, // "create", "record", "delete"
	)

	// Overpayment attempts rejected by the ledger guard
	OverpaymentRejectedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rera_overpayment_rejected_total",
			Help: "Total number of payment recordings rejected for exceeding the remaining balance",
		},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rera_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rera_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // type can be "login_failure", "invalid_token", "db_error" etc.
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rera_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rera_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	// Active tokens
	ActiveTokensGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rera_active_tokens",
			Help: "Number of currently active authentication tokens",
		},
	)

	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rera_info",
			Help: "Information about the compliance tracking service",
		},
		[]string{"version"},
	)
)

func init() {
	// Register counters
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(ClientOperationCounter)
	prometheus.MustRegister(ChecklistUpdateCounter)
	prometheus.MustRegister(PaymentOperationCounter)
	prometheus.MustRegister(OverpaymentRejectedCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(AuthErrorCounter)

	// Register histograms
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	// Register gauges
	prometheus.MustRegister(ActiveTokensGauge)
	prometheus.MustRegister(InfoGauge)

	// Set initial service info
	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Execute the request handler
			err := next(c)

			// Record request duration
			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			// Record metrics
			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// IncreaseActiveTokens increments the active tokens gauge
func IncreaseActiveTokens() {
	ActiveTokensGauge.Inc()
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordClientOperation records a client record operation
func RecordClientOperation(operation string) {
	ClientOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordChecklistUpdate records a checklist mutation by kind
func RecordChecklistUpdate(operation string) {
	ChecklistUpdateCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordPaymentOperation records a payment ledger operation
func RecordPaymentOperation(operation string) {
	PaymentOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}
