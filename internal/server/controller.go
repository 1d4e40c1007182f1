package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller interface {
	Health(c echo.Context) error
	Root(c echo.Context) error
}

type controller struct{}

func NewController() Controller {
	return &controller{}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hubspot-bridge",
	})
}

// Root lists the capabilities of this service.
func (h *controller) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data: map[string]any{
			"service": "hubspot-bridge",
			"endpoints": []string{
				"GET /health",
				"GET /api/properties",
				"POST /api/properties",
				"POST /api/properties/setup",
				"GET /api/properties/:name",
				"POST /api/contacts",
				"GET /api/contacts",
				"GET /api/contacts/:id",
				"PATCH /api/contacts/:id",
				"DELETE /api/contacts/:id",
				"POST /api/contacts/batch",
			},
		},
	})
}
