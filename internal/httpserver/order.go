package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gamemart/orders-service/internal/logging"
	"github.com/gamemart/orders-service/internal/service"
	"github.com/gamemart/orders-service/internal/transport"
	"github.com/labstack/echo/v4"
)

const (
	msgNoOrders      = "There are no orders."
	msgOrderNotFound = "Order not found."
	msgCreateFailed  = "An error occurred creating the order."
	msgUpdateFailed  = "An error occurred updating the order."
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Orders service is healthy.",
		"time":    time.Now().UTC().Format("2006-01-02 15:04:05.000000"),
	})
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "An error occurred retrieving orders.",
			"error":   err.Error(),
		})
	}

	// An empty store is reported as 404, not as an empty list. Odd,
	// but clients depend on it.
	if len(orders) == 0 {
		l.Info("get_orders_empty", "status", 404)
		return c.JSON(http.StatusNotFound, echo.Map{"message": msgNoOrders})
	}

	out := make([]transport.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, transport.NewOrderResponse(&orders[i]))
	}

	l.Info("get_orders_success", "count", len(out))
	return c.JSON(http.StatusOK, echo.Map{
		"data": echo.Map{"orders": out},
	})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	orderID, err := parseOrderID(c)
	if err != nil {
		l.Warn("get_order_error", "status", 404, "reason", "bad id", "id", c.Param("order_id"))
		return c.JSON(http.StatusNotFound, echo.Map{"message": msgOrderNotFound})
	}

	order, err := h.Svc.FindByID(ctx, orderID)
	if errors.Is(err, service.ErrNotFound) {
		l.Info("get_order_not_found", "status", 404, "order_id", orderID)
		return c.JSON(http.StatusNotFound, echo.Map{"message": msgOrderNotFound})
	}
	if err != nil {
		l.Error("get_order_error", "status", 500, "order_id", orderID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "An error occurred retrieving the order.",
			"error":   err.Error(),
		})
	}

	l.Info("get_order_success", "order_id", orderID)
	return c.JSON(http.StatusOK, echo.Map{
		"data": transport.NewOrderResponse(order),
	})
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 500, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": msgCreateFailed,
			"error":   err.Error(),
		})
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		l.Warn("create_order_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": msgCreateFailed,
			"error":   err.Error(),
		})
	}

	l.Info("create_order_success", "order_id", order.OrderID)
	return c.JSON(http.StatusCreated, echo.Map{
		"data": transport.NewOrderResponse(order),
	})
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	orderID, err := parseOrderID(c)
	if err != nil {
		l.Warn("update_order_error", "status", 404, "reason", "bad id", "id", c.Param("order_id"))
		return c.JSON(http.StatusNotFound, echo.Map{"message": msgOrderNotFound})
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 500, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": msgUpdateFailed,
			"error":   err.Error(),
		})
	}

	order, err := h.Svc.UpdateStatus(ctx, orderID, req.Status)
	if errors.Is(err, service.ErrNotFound) {
		l.Info("update_order_not_found", "status", 404, "order_id", orderID)
		return c.JSON(http.StatusNotFound, echo.Map{
			"data":    echo.Map{"order_id": orderID},
			"message": msgOrderNotFound,
		})
	}
	if err != nil {
		l.Error("update_order_error", "status", 500, "order_id", orderID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": msgUpdateFailed,
			"error":   err.Error(),
		})
	}

	l.Info("update_order_success", "order_id", orderID, "order_status", order.Status)
	return c.JSON(http.StatusOK, echo.Map{
		"data": transport.NewOrderResponse(order),
	})
}

func parseOrderID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
