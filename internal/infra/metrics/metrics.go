// Package metrics exposes order and cart counters through a Prometheus registry.
package metrics

import (
	"net/http"

	"jewelshop/config"
	"jewelshop/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry creates the registry served on /metrics, with runtime collectors attached
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler serves the registry in the Prometheus exposition format
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

type prometheusOrderMetrics struct {
	ordersCreated *prometheus.CounterVec
	orderRevenue  *prometheus.CounterVec
	ordersFailed  *prometheus.CounterVec
	statusChanges *prometheus.CounterVec
	cartMutations *prometheus.CounterVec
	stockLevel    *prometheus.GaugeVec
}

// NewOrderMetrics registers the business metrics, or returns a no-op recorder when metrics are disabled
func NewOrderMetrics(cfg *config.Config, registry *prometheus.Registry) service.OrderMetrics {
	if !cfg.Metrics.Enabled {
		return NoopOrderMetrics{}
	}

	namespace := cfg.Metrics.Namespace
	m := &prometheusOrderMetrics{
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Orders created, by payment method.",
		}, []string{"payment_method"}),
		orderRevenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "revenue_cents_total",
			Help:      "Sum of order totals in minor currency units, by payment method.",
		}, []string{"payment_method"}),
		ordersFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Order creations that failed, by reason.",
		}, []string{"reason"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status transitions, by target status.",
		}, []string{"status"}),
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart writes, by operation.",
		}, []string{"operation"}),
		stockLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "low_stock_remaining",
			Help:      "Remaining stock of products at or below their low stock threshold.",
		}, []string{"product_id"}),
	}

	registry.MustRegister(
		m.ordersCreated,
		m.orderRevenue,
		m.ordersFailed,
		m.statusChanges,
		m.cartMutations,
		m.stockLevel,
	)

	return m
}

func (m *prometheusOrderMetrics) OrderCreated(paymentMethod string, totalCents int64) {
	m.ordersCreated.WithLabelValues(paymentMethod).Inc()
	m.orderRevenue.WithLabelValues(paymentMethod).Add(float64(totalCents))
}

func (m *prometheusOrderMetrics) OrderRejected(reason string) {
	m.ordersFailed.WithLabelValues(reason).Inc()
}

func (m *prometheusOrderMetrics) OrderStatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *prometheusOrderMetrics) CartMutated(operation string) {
	m.cartMutations.WithLabelValues(operation).Inc()
}

func (m *prometheusOrderMetrics) LowStock(productID string, remaining int) {
	m.stockLevel.WithLabelValues(productID).Set(float64(remaining))
}

// NoopOrderMetrics discards every observation.
type NoopOrderMetrics struct{}

func (NoopOrderMetrics) OrderCreated(string, int64) {}
func (NoopOrderMetrics) OrderRejected(string) {}
func (NoopOrderMetrics) OrderStatusChanged(string) {}
func (NoopOrderMetrics) CartMutated(string) {}
func (NoopOrderMetrics) LowStock(string, int) {}
