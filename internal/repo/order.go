package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wheelmart/internal/models"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

// CreateOrder writes the order and its line items in one create; the unique
// index on order_id decides the loser when two placements race.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	tx := r.DB.WithContext(ctx).Where("order_id = ?", order.OrderID).FirstOrCreate(order)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrOrderAlreadyExists
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrOrderAlreadyExists
	}
	return order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	q := r.DB.WithContext(ctx).Preload("Items").Where("user_id = ?", userID)
	if err := q.Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrderByOrderID removes the order and its items by business id.
func (r *GormRepo) DeleteOrderByOrderID(ctx context.Context, orderID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("order_id = ?", orderID).First(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("order_uuid = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
