package server

import (
	"fmt"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/labstack/echo/v4"

	"github.com/hiresync/hubspot-bridge/internal/models"
	pkgmdw "github.com/hiresync/hubspot-bridge/internal/server/middleware"
)

// errorHandler maps the error taxonomy onto HTTP statuses and the error
// envelope: validation faults are 400, confirmed absence is 404, anything
// the remote side failed on is 500 with HubSpot's diagnostic payload.
func errorHandler() echo.HTTPErrorHandler {
	log := logger.MustNamed("http")

	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := map[string]any{"success": false}

		switch v := err.(type) {
		case *models.ValidationError:
			status = http.StatusBadRequest
			body["error"] = v.Message
			if v.Details != nil {
				body["details"] = v.Details
			}
		case *models.NotFoundError:
			status = http.StatusNotFound
			body["error"] = notFoundMessage(v.Resource)
			body[notFoundIDKey(v.Resource)] = v.ID
		case *models.RemoteOperationError:
			body["error"] = v.Message
			if v.Details != nil {
				body["details"] = v.Details
			}
		case *echo.HTTPError:
			status = v.Code
			body["error"] = fmt.Sprint(v.Message)
		default:
			body["error"] = err.Error()
		}

		if status == http.StatusNotFound && pkgmdw.IsNotFoundHandler(c.Handler()) {
			body["error"] = "Route not found"
			body["path"] = c.Request().URL.Path
		}

		if jerr := c.JSON(status, body); jerr != nil {
			log.Errorw("could not write error response", "status", status, "error", jerr)
		}
	}
}

func notFoundMessage(resource string) string {
	switch resource {
	case "property":
		return "Property not found"
	default:
		return "Contact not found"
	}
}

func notFoundIDKey(resource string) string {
	switch resource {
	case "property":
		return "propertyName"
	default:
		return "contactId"
	}
}
