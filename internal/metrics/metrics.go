package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business
	OrdersPlaced       *prometheus.CounterVec
	OrderStatusChanges *prometheus.CounterVec
	PointsAwarded      prometheus.Counter
	PointsRedeemed     prometheus.Counter
	PointsAdjustments  *prometheus.CounterVec
	RedemptionRejected *prometheus.CounterVec
	LoyaltySideEffects *prometheus.CounterVec

	// Database
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec

	// Validation
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		OrdersPlaced: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_placed_total",
				Help: "Total number of orders placed",
			},
			[]string{"checkout", "loyalty_applied"},
		),
		OrderStatusChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_order_status_changes_total",
				Help: "Total number of order status transitions",
			},
			[]string{"from", "to"},
		),
		PointsAwarded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_loyalty_points_awarded_total",
				Help: "Total loyalty points credited for delivered orders",
			},
		),
		PointsRedeemed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_loyalty_points_redeemed_total",
				Help: "Total loyalty points redeemed at checkout",
			},
		),
		PointsAdjustments: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_loyalty_adjustments_total",
				Help: "Total manual point adjustments",
			},
			[]string{"direction"},
		),
		RedemptionRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_redemption_rejected_total",
				Help: "Total redemption attempts rejected by policy",
			},
			[]string{"reason"},
		),
		LoyaltySideEffects: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_loyalty_side_effects_total",
				Help: "Outcome of best-effort loyalty writes after a committed order",
			},
			[]string{"effect", "status"},
		),

		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),

		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_validation_errors_total",
				Help: "Total number of request validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_validation_duration_seconds",
				Help:    "Duration of request validation in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"endpoint"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordOrderPlaced(checkout string, loyaltyApplied bool) {
	applied := "false"
	if loyaltyApplied {
		applied = "true"
	}
	m.OrdersPlaced.WithLabelValues(checkout, applied).Inc()
}

func (m *Metrics) RecordStatusChange(from, to string) {
	m.OrderStatusChanges.WithLabelValues(from, to).Inc()
}

func (m *Metrics) RecordPointsAwarded(points int64) {
	m.PointsAwarded.Add(float64(points))
}

func (m *Metrics) RecordPointsRedeemed(points int64) {
	m.PointsRedeemed.Add(float64(points))
}

func (m *Metrics) RecordPointsAdjusted(direction string) {
	m.PointsAdjustments.WithLabelValues(direction).Inc()
}

func (m *Metrics) RecordRedemptionRejected(reason string) {
	m.RedemptionRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordLoyaltySideEffect(effect, status string) {
	m.LoyaltySideEffects.WithLabelValues(effect, status).Inc()
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(endpoint string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
