package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestTimer logs method, route, status and duration of every request it wraps.
func RequestTimer(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			logger.InfoContext(req.Context(), "request handled",
				"method", req.Method,
				"route", c.Path(),
				"uri", req.RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start),
			)
			return nil
		}
	}
}

// OpenAPIValidator rejects requests that do not match the OpenAPI document spec with
// 400. Requests for paths the document does not describe pass through.
func OpenAPIValidator(spec []byte) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			switch {
			case isRouteError(findErr, routers.ErrPathNotFound):
				return next(c)
			case isRouteError(findErr, routers.ErrMethodNotAllowed):
				return c.JSON(http.StatusMethodNotAllowed, Error{
					Code:    http.StatusMethodNotAllowed,
					Message: findErr.Error(),
				})
			case findErr != nil:
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: findErr.Error(),
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(validateErr),
				})
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return err.Error()
}

func isRouteError(err, target error) bool {
	if errors.Is(err, target) {
		return true
	}

	var routeErr *routers.RouteError
	return errors.As(err, &routeErr) && routeErr.Reason == target.Error()
}
