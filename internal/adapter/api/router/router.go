package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupHealthRouter(e)
	SetupItemRouter(e)
	SetupOrderRouter(e)
	SetupUploadRouter(e)
}
