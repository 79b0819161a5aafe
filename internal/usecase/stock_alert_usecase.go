package usecase

import (
	"context"

	"jewelshop/internal/domain/entity"
	"jewelshop/internal/domain/service"
)

// StockAlertUsecase reacts to order events delivered to the worker.
type StockAlertUsecase interface {
	// HandleOrderEvent reports tracked products of the order that are now low on stock.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) ([]*entity.Product, error)
}
