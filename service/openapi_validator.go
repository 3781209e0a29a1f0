package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIRequestValidator returns echo middleware validating request parameters against doc.
// Bodies are left to the handlers. Requests for routes the document does not describe
// (static assets, other methods on documented paths) are passed through.
func OpenAPIRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("create openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		ExcludeRequestBody: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				switch routeErrorReason(err) {
				case routers.ErrPathNotFound.Error(), routers.ErrMethodNotAllowed.Error():
					return next(c)
				}
				return NewInternalServerError("openapi route lookup failed", err)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				he := echo.NewHTTPError(http.StatusBadRequest, "request does not match the API description")
				he.Internal = err
				return he
			}
			return next(c)
		}
	}, nil
}

// routeErrorReason returns the reason of a router lookup failure. Routers return both the
// shared sentinel values and fresh RouteError values, so the reason text is compared.
func routeErrorReason(err error) string {
	var routeErr *routers.RouteError
	if errors.As(err, &routeErr) {
		return routeErr.Reason
	}
	return ""
}
