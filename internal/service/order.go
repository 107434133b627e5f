package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gamemart/orders-service/internal/events"
	"github.com/gamemart/orders-service/internal/logging"
	"github.com/gamemart/orders-service/internal/models"
	"github.com/gamemart/orders-service/internal/repo"
	"github.com/gamemart/orders-service/internal/transport"
	"gorm.io/gorm"
)

var (
	// ErrInvalidInput still maps to 500 on the wire, matching the
	// historical contract where bad payloads died inside the
	// persistence attempt.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (svc *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return svc.Repo.ListOrders(ctx)
}

func (svc *OrderService) FindByID(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := svc.Repo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrder persists a new order with status NEW and all cart items
// in one transaction. A present-but-empty cart_items array is allowed
// and yields an order with no items; an absent one is rejected.
func (svc *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customer_email required", ErrInvalidInput)
	}
	if req.CartItems == nil {
		return nil, fmt.Errorf("%w: cart_items required", ErrInvalidInput)
	}

	items := make([]models.OrderItem, 0, len(req.CartItems))
	for i := range req.CartItems {
		items = append(items, models.OrderItem{
			GameID:   req.CartItems[i].GameID,
			Quantity: req.CartItems[i].Quantity,
		})
	}

	order := &models.Order{
		CustomerEmail: req.CustomerEmail,
		Status:        models.StatusNew,
		Created:       time.Now().UTC(),
		Items:         items,
	}

	order, err := svc.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	svc.publish(ctx, events.OrderEvent{
		Type:     events.TypeOrderCreated,
		OrderID:  order.OrderID,
		Status:   order.Status,
		Occurred: time.Now().UTC(),
	})

	return order, nil
}

// UpdateStatus overwrites status when the request carries one; a nil
// status is a no-op that still succeeds with the stored record.
func (svc *OrderService) UpdateStatus(ctx context.Context, orderID uint, status *string) (*models.Order, error) {
	order, err := svc.Repo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if status != nil {
		svc.publish(ctx, events.OrderEvent{
			Type:     events.TypeOrderStatusChanged,
			OrderID:  order.OrderID,
			Status:   order.Status,
			Occurred: time.Now().UTC(),
		})
	}

	return order, nil
}

// publish is best-effort: a broker failure must never change the
// outcome of the request that triggered it.
func (svc *OrderService) publish(ctx context.Context, ev events.OrderEvent) {
	if svc.Producer == nil {
		return
	}
	if err := svc.Producer.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).Warn("order_event_publish_failed",
			"type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}
