package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"jewelshop/config"
	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(shippingCents, taxBasisPoints int64) *config.Config {
	return &config.Config{
		Order: &config.OrderConfig{
			Currency:       "KES",
			ShippingCents:  shippingCents,
			TaxBasisPoints: taxBasisPoints,
			IdempotencyTTL: 24 * time.Hour,
		},
	}
}

func newTestProduct(name string, price entity.Money, stock int) *entity.Product {
	return &entity.Product{
		ID:                uuid.New(),
		Name:              name,
		SKU:               "SKU-" + name,
		Price:             price,
		TrackInventory:    true,
		StockQuantity:     stock,
		LowStockThreshold: entity.DefaultLowStockThreshold,
		IsActive:          true,
	}
}

// recordingMetrics counts metric calls so tests can assert on them.
type recordingMetrics struct {
	mu       sync.Mutex
	created  int
	rejected []string
	statuses []string
	cartOps  []string
	lowStock map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{lowStock: make(map[string]int)}
}

func (m *recordingMetrics) OrderCreated(string, int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *recordingMetrics) OrderRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected = append(m.rejected, reason)
}

func (m *recordingMetrics) OrderStatusChanged(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, status)
}

func (m *recordingMetrics) CartMutated(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartOps = append(m.cartOps, operation)
}

func (m *recordingMetrics) LowStock(productID string, remaining int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lowStock[productID] = remaining
}

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
