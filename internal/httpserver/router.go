package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	OrderHandler *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", d.OrderHandler.Health)

	orders := e.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:order_id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PATCH("/:order_id", d.OrderHandler.UpdateOrder)
}
