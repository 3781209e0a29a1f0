package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the mylogin error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// ErrResponse is the body of every failed request: {"success": false, "error": "<status text>"}.
type ErrResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HTTPErrorHandler turns errors returned by echo handlers into ErrResponse bodies.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler handles error returned by echo handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := ToMyErrorCode(err)
	statusCode := h.getStatusCode(code)

	var he *echo.HTTPError
	switch {
	case code != "":
	case errors.As(err, &he):
		if inner, ok := he.Internal.(*echo.HTTPError); ok {
			he = inner
		}
		var requestError *openapi3filter.RequestError
		switch {
		case errors.As(he.Internal, &requestError):
			code = ErrBadParameter
		case he.Code >= http.StatusInternalServerError:
			code = ErrInternalServerError
		default:
			code = ""
		}
		statusCode = he.Code
	default:
		code = ErrInternalServerError
	}

	logger := level.Info(h.logger)
	if statusCode >= http.StatusInternalServerError {
		logger = level.Error(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"error_code", code,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Success: false, Error: http.StatusText(statusCode)})
}
