package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wheelmart/internal/models"
	"wheelmart/internal/repo"
	"wheelmart/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// PlaceOrder copies the line items verbatim; no catalog lookup and no price
// cross-check, the grand total is trusted as sent.
func (s *OrderService) PlaceOrder(ctx context.Context, req transport.CreateOrderRequest, userID uuid.UUID) (*models.Order, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: orderId required", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for i := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: req.Items[i].ProductID,
			Quantity:  req.Items[i].Quantity,
		})
	}

	order := &models.Order{
		OrderID:    req.OrderID,
		Name:       req.Name,
		Address:    req.Address,
		Contact:    req.Contact,
		Items:      items,
		GrandTotal: req.GrandTotal,
		UserID:     userID,
	}

	created, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, repo.ErrOrderAlreadyExists) {
			return nil, fmt.Errorf("%w: orderId already taken", ErrConflict)
		}
		return nil, err
	}
	return created, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.Repo.ListUserOrders(ctx, userID)
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID string) error {
	if err := s.Repo.DeleteOrderByOrderID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
