package service

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AccessLog logs every request at debug level once the response status is known.
func AccessLog(logger log.Logger) echo.MiddlewareFunc {
	logger = log.WithPrefix(logger, "component", "AccessLog")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level.Debug(logger).Log(
				"msg", "HTTP request",
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"duration", v.Latency,
			)
			return nil
		},
	})
}
