// Package hubspot is the client for the HubSpot CRM v3 HTTP API. Every
// operation translates the transport outcome into the local error taxonomy;
// remote 404s on reads are reported as clean not-found results, not errors.
package hubspot

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/hiresync/hubspot-bridge/internal/config"
	"github.com/hiresync/hubspot-bridge/internal/models"
)

const (
	contactsPath   = "/crm/v3/objects/contacts"
	propertiesPath = "/crm/v3/properties/contacts"
)

type Client interface {
	CreateContact(ctx context.Context, props map[string]string) (*models.Contact, error)
	GetContact(ctx context.Context, id string, properties []string) (*models.Contact, error)
	UpdateContact(ctx context.Context, id string, props map[string]string) (*models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	SearchContacts(ctx context.Context, filters map[string]string, limit int) (*models.SearchResult, error)
	BatchCreateContacts(ctx context.Context, inputs []map[string]string) ([]*models.Contact, error)

	CreateProperty(ctx context.Context, prop models.Property) (*models.Property, bool, error)
	GetProperty(ctx context.Context, name string) (*models.Property, error)
}

type client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config, rc *resty.Client) Client {
	rc.SetBaseURL(cfg.HubSpot.BaseURL)
	rc.SetAuthToken(cfg.HubSpot.AccessToken)
	rc.SetHeader("Content-Type", "application/json")

	return &client{http: rc}
}

// remoteError converts a transport error or non-2xx response into a
// RemoteOperationError carrying HubSpot's diagnostic payload when present.
func remoteError(op models.RemoteOp, resp *resty.Response, err error) error {
	if err != nil {
		return &models.RemoteOperationError{Op: op, Message: err.Error()}
	}

	payload := parseRemoteError(resp.Body())
	msg := http.StatusText(resp.StatusCode())
	if payload != nil && payload.Message != "" {
		msg = payload.Message
	}
	return &models.RemoteOperationError{Op: op, Message: msg, Details: payload}
}

func parseRemoteError(body []byte) *models.RemoteErrorPayload {
	if len(body) == 0 {
		return nil
	}
	var payload models.RemoteErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return &payload
}
