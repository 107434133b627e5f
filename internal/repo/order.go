package repo

import (
	"context"

	"github.com/gamemart/orders-service/internal/models"
	"gorm.io/gorm"
)

// GormRepo is the order store. Every write commits its own
// transaction; gorm persists an Order and its items as one unit.
type GormRepo struct {
	DB *gorm.DB
}

func itemsByInsertion(db *gorm.DB) *gorm.DB {
	return db.Order("item_id")
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", itemsByInsertion).
		Order("order_id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) FindByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", itemsByInsertion).
		First(&order, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus overwrites status when one is given; a nil status is a
// no-op that still returns the stored record.
func (r *GormRepo) UpdateStatus(ctx context.Context, orderID uint, status *string) (*models.Order, error) {
	order, err := r.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if status == nil {
		return order, nil
	}

	err = r.DB.WithContext(ctx).
		Model(order).
		Update("status", *status).Error
	if err != nil {
		return nil, err
	}
	return order, nil
}
