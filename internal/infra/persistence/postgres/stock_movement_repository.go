package postgres

import (
	"context"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository is the constructor for stockMovementRepository.
func NewStockMovementRepository(db *gorm.DB) repository.StockMovementRepository {
	return &stockMovementRepository{db: db}
}

// Record appends a row to the stock ledger.
func (repo *stockMovementRepository) Record(ctx context.Context, movement *entity.StockMovement) error {
	movementM := &model.StockMovementModel{
		ID:        movement.ID,
		ProductID: movement.ProductID,
		OrderID:   movement.OrderID,
		Change:    movement.Change,
		Reason:    string(movement.Reason),
		CreatedAt: movement.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(movementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record stock movement")
	}

	return nil
}

// ListByProduct returns the newest ledger rows of a product.
func (repo *stockMovementRepository) ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.StockMovement, error) {
	var movementModels []*model.StockMovementModel

	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&movementModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock movements")
	}

	movements := make([]*entity.StockMovement, 0, len(movementModels))
	for _, movementM := range movementModels {
		movements = append(movements, &entity.StockMovement{
			ID:        movementM.ID,
			ProductID: movementM.ProductID,
			OrderID:   movementM.OrderID,
			Change:    movementM.Change,
			Reason:    entity.StockMovementReason(movementM.Reason),
			CreatedAt: movementM.CreatedAt,
		})
	}

	return movements, nil
}
