package transport

import (
	"net/http"

	"github.com/gamemart/orders-service/internal/models"
)

type CartItem struct {
	GameID   int `json:"game_id"`
	Quantity int `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerEmail string     `json:"customer_email"`
	CartItems     []CartItem `json:"cart_items"`
}

// Status is a pointer so a PATCH body without the key is
// distinguishable from an explicit value.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

type OrderItemResponse struct {
	ItemID   uint `json:"item_id"`
	GameID   int  `json:"game_id"`
	Quantity int  `json:"quantity"`
}

type OrderResponse struct {
	OrderID       uint                `json:"order_id"`
	CustomerEmail string              `json:"customer_email"`
	Status        string              `json:"status"`
	Created       string              `json:"created"`
	OrderItems    []OrderItemResponse `json:"order_items"`
}

func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ItemID:   it.ItemID,
			GameID:   it.GameID,
			Quantity: it.Quantity,
		})
	}

	return OrderResponse{
		OrderID:       o.OrderID,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		Created:       o.Created.UTC().Format(http.TimeFormat),
		OrderItems:    items,
	}
}
