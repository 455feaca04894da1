package router

import (
	"lapakin/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupUploadRouter(e *echo.Echo) {
	uploadHandler := handler.GetUploadHandler()

	e.POST("/upload", uploadHandler.UploadImage)
}
