package service

// OrderMetrics records business counters for carts and orders.
type OrderMetrics interface {
	OrderCreated(paymentMethod string, totalCents int64)
	OrderRejected(reason string)
	OrderStatusChanged(status string)
	CartMutated(operation string)
	LowStock(productID string, remaining int)
}
