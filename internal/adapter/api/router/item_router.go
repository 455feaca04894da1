package router

import (
	"lapakin/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupItemRouter(e *echo.Echo) {
	itemHandler := handler.GetItemHandler()

	e.GET("/items", itemHandler.ListItems)
	e.POST("/items", itemHandler.CreateItem)
}
