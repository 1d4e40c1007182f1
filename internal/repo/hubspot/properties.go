package hubspot

import (
	"context"
	"net/http"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/hiresync/hubspot-bridge/internal/models"
)

// CreateProperty defines a custom contact property. A remote conflict
// means the property already exists and is reported as conflict=true with
// a nil error, so creation stays idempotent for callers.
func (c *client) CreateProperty(ctx context.Context, prop models.Property) (*models.Property, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	log.Infof(ctx, "Creating property %s", prop.Name)

	var created models.Property
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(prop).
		SetResult(&created).
		Post(propertiesPath)
	if err == nil && resp.StatusCode() == http.StatusConflict {
		log.Infof(ctx, "Property %s already exists", prop.Name)
		return nil, true, nil
	}
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpPropertyCreate, resp, err)
		log.Errorw(ctx, "property creation failed", "property", prop.Name, "error", rerr)
		return nil, false, rerr
	}

	log.Infof(ctx, "Created property %s", created.Name)
	return &created, false, nil
}

// GetProperty probes for a property definition. A remote 404 is mapped to
// a clean (nil, nil) "does not exist" result.
func (c *client) GetProperty(ctx context.Context, name string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var prop models.Property
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&prop).
		Get(propertiesPath + "/" + name)
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpPropertyGet, resp, err)
		log.Errorw(ctx, "property retrieval failed", "property", name, "error", rerr)
		return nil, rerr
	}

	return &prop, nil
}
