package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the body of POST /login. Fields carry whatever JSON value the client sent.
type LoginRequest struct {
	Username interface{} `json:"username,omitempty"`
	Password interface{} `json:"password,omitempty"`
}

// LoginResponse is the body of a completed credential check.
type LoginResponse struct {
	Success bool `json:"success"`
}

// ServerInterface represents all server handlers of api/mylogin.openapi.yaml.
type ServerInterface interface {
	// (POST /login)
	Login(ctx echo.Context) error
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	Add(method string, path string, handler echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, prefixing each path with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	router.Add(http.MethodPost, baseURL+"/login", si.Login)
}
