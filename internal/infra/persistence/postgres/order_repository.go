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
	"gorm.io/gorm/clause"
)

const orderItemsUniqueIndex = "idx_order_items_order_product"

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateAddress persists an order address snapshot.
func (repo *orderRepository) CreateAddress(ctx context.Context, address *entity.OrderAddress) error {
	addressM := fromOrderAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// Create persists the order header.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid order address reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateItems persists the order lines in one statement.
func (repo *orderRepository) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&itemModels).Error; err != nil {
		if isUniqueConstraintViolation(err) && violatedConstraint(err) == orderItemsUniqueIndex {
			return domainerrors.ErrValidationFailed.WithDetails("product appears twice in the order")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	return nil
}

// UpdateTotals writes the money columns derived from the lines.
func (repo *orderRepository) UpdateTotals(ctx context.Context, order *entity.Order) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"subtotal_cents": order.Subtotal.Cents(),
			"shipping_cents": order.Shipping.Cents(),
			"tax_cents":      order.Tax.Cents(),
			"total_cents":    order.Total.Cents(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order totals")
	}

	return nil
}

// FindByID loads an order with its lines and address.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate loads an order holding a row lock until the transaction ends.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *orderRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := db.Where("id = ?", id).First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	// Relations are loaded separately so the row lock only covers the order itself.
	session := db.Session(&gorm.Session{NewDB: true})

	var addressM model.OrderAddressModel
	if err := session.Where("id = ?", orderM.AddressID).First(&addressM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order address")
	}
	orderM.Address = &addressM

	if err := session.Where("order_id = ?", orderM.ID).Order("created_at ASC").Find(&orderM.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus writes the lifecycle columns.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":         string(order.Status),
			"payment_status": string(order.PaymentStatus),
			"internal_notes": order.InternalNotes,
			"confirmed_at":   order.ConfirmedAt,
			"shipped_at":     order.ShippedAt,
			"delivered_at":   order.DeliveredAt,
			"cancelled_at":   order.CancelledAt,
			"updated_at":     order.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// List returns orders newest first with their lines.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderListFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	err := query.
		Preload("Address").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		CustomerID:    data.CustomerID,
		Address:       toOrderAddressDomain(data.Address),
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Subtotal:      entity.Money(data.SubtotalCents),
		Shipping:      entity.Money(data.ShippingCents),
		Tax:           entity.Money(data.TaxCents),
		Total:         entity.Money(data.TotalCents),
		Notes:         data.Notes,
		InternalNotes: data.InternalNotes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		ConfirmedAt:   data.ConfirmedAt,
		ShippedAt:     data.ShippedAt,
		DeliveredAt:   data.DeliveredAt,
		CancelledAt:   data.CancelledAt,
	}

	order.Items = make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Name:      itemM.ProductName,
			Quantity:  itemM.Quantity,
			Price:     entity.Money(itemM.PriceCents),
			Total:     entity.Money(itemM.TotalCents),
			CreatedAt: itemM.CreatedAt,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		CustomerID:    data.CustomerID,
		Status:        string(data.Status),
		PaymentStatus: string(data.PaymentStatus),
		PaymentMethod: string(data.PaymentMethod),
		SubtotalCents: data.Subtotal.Cents(),
		ShippingCents: data.Shipping.Cents(),
		TaxCents:      data.Tax.Cents(),
		TotalCents:    data.Total.Cents(),
		Notes:         data.Notes,
		InternalNotes: data.InternalNotes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Address != nil {
		orderM.AddressID = data.Address.ID
	}

	return orderM
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.Name,
		Quantity:    data.Quantity,
		PriceCents:  data.Price.Cents(),
		TotalCents:  data.Total.Cents(),
		CreatedAt:   data.CreatedAt,
	}
}

func toOrderAddressDomain(data *model.OrderAddressModel) *entity.OrderAddress {
	if data == nil {
		return nil
	}

	return &entity.OrderAddress{
		ID:         data.ID,
		FullName:   data.FullName,
		Phone:      data.Phone,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		County:     data.County,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}

func fromOrderAddressDomain(data *entity.OrderAddress) *model.OrderAddressModel {
	return &model.OrderAddressModel{
		ID:         data.ID,
		FullName:   data.FullName,
		Phone:      data.Phone,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		County:     data.County,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}
