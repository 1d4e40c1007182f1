package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	XRequestID     = "x-request-id"
	XCorrelationID = "x-correlation-id"
)

func GetRequestID(c echo.Context) string {
	if id := GetRequestIDFromEchoContext(c); id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}
	return GetRequestIDFromHeader(c.Request().Header)
}

func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(XCorrelationID).(string); ok {
		return id
	}
	if id, ok := ctx.Value(XRequestID).(string); ok {
		return id
	}
	return ""
}

func GetRequestIDFromEchoContext(c echo.Context) string {
	if id, ok := c.Get(XRequestID).(string); ok {
		return id
	}
	if id, ok := c.Get(XCorrelationID).(string); ok {
		return id
	}
	return ""
}

func GetRequestIDFromHeader(h http.Header) string {
	if id := h.Get(XRequestID); id != "" {
		return id
	}
	return h.Get(XCorrelationID)
}

func InjectRequestID(c echo.Context, reqID string) {
	ctx := c.Request().Context()
	//lint:ignore SA1029 we want to expose this key
	ctx = context.WithValue(ctx, XRequestID, reqID)
	//lint:ignore SA1029 we want to expose this key
	ctx = context.WithValue(ctx, XCorrelationID, reqID)

	c.SetRequest(c.Request().WithContext(ctx))
	c.Set(XRequestID, reqID)
	c.Set(XCorrelationID, reqID)
}

// RequestID propagates an inbound correlation ID, generating one when the
// caller did not supply any.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := GetRequestID(c)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			InjectRequestID(c, reqID)
			c.Response().Header().Set(XRequestID, reqID)
			return next(c)
		}
	}
}
