package router

import (
	"lapakin/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/api/orders")
	orders.GET("", orderHandler.ListOrders)
	orders.POST("", orderHandler.CreateOrder)
}
