package handlers

import (
	"io/fs"

	"mylogin/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho assembles the mylogin HTTP surface: error handler, access log, panic recovery,
// request validation, POST /login and the static files.
func NewEcho(server ServerInterface, validator echo.MiddlewareFunc, static fs.FS, index string, logger log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	e.Use(service.AccessLog(logger))
	e.Use(middleware.Recover())
	if validator != nil {
		e.Use(validator)
	}
	RegisterHandlers(e, server)
	RegisterStatic(e, static, index)
	return e
}
