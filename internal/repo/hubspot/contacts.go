package hubspot

import (
	"context"
	"net/http"
	"strings"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/hiresync/hubspot-bridge/internal/mapper"
	"github.com/hiresync/hubspot-bridge/internal/models"
)

const callTimeout = 30 * time.Second

func (c *client) CreateContact(ctx context.Context, props map[string]string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	log.Infof(ctx, "Creating contact with %d properties", len(props))

	var created models.Contact
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.CreateContactRequest{Properties: props}).
		SetResult(&created).
		Post(contactsPath)
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpCreate, resp, err)
		log.Errorw(ctx, "contact creation failed", "error", rerr)
		return nil, rerr
	}

	log.Infof(ctx, "Created contact %s", created.ID)
	return &created, nil
}

func (c *client) GetContact(ctx context.Context, id string, properties []string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if len(properties) == 0 {
		properties = mapper.DefaultContactProperties
	}

	log.Infof(ctx, "Fetching contact %s", id)

	var contact models.Contact
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("properties", strings.Join(properties, ",")).
		SetResult(&contact).
		Get(contactsPath + "/" + id)
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		// Absence is an expected outcome, not a fault.
		log.Infof(ctx, "Contact %s does not exist", id)
		return nil, nil
	}
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpRetrieve, resp, err)
		log.Errorw(ctx, "contact retrieval failed", "contact_id", id, "error", rerr)
		return nil, rerr
	}

	return &contact, nil
}

func (c *client) UpdateContact(ctx context.Context, id string, props map[string]string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	log.Infof(ctx, "Updating contact %s with %d properties", id, len(props))

	var updated models.Contact
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.CreateContactRequest{Properties: props}).
		SetResult(&updated).
		Patch(contactsPath + "/" + id)
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return nil, &models.NotFoundError{Resource: "contact", ID: id}
	}
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpUpdate, resp, err)
		log.Errorw(ctx, "contact update failed", "contact_id", id, "error", rerr)
		return nil, rerr
	}

	log.Infof(ctx, "Updated contact %s", updated.ID)
	return &updated, nil
}

func (c *client) DeleteContact(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	log.Infof(ctx, "Deleting contact %s", id)

	resp, err := c.http.R().
		SetContext(ctx).
		Delete(contactsPath + "/" + id)
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpDelete, resp, err)
		log.Errorw(ctx, "contact deletion failed", "contact_id", id, "error", rerr)
		return rerr
	}

	log.Infof(ctx, "Deleted contact %s", id)
	return nil
}

func (c *client) SearchContacts(ctx context.Context, filters map[string]string, limit int) (*models.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	// All filters are combined as a single conjunctive group of equality
	// predicates.
	group := models.FilterGroup{Filters: make([]models.Filter, 0, len(filters))}
	for name, value := range filters {
		group.Filters = append(group.Filters, models.Filter{
			PropertyName: name,
			Operator:     "EQ",
			Value:        value,
		})
	}

	req := models.SearchRequest{
		FilterGroups: []models.FilterGroup{group},
		Properties:   mapper.DefaultContactProperties,
		Limit:        limit,
	}

	log.Infof(ctx, "Searching contacts with %d filters, limit %d", len(filters), limit)

	var result models.SearchResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(contactsPath + "/search")
	if err != nil || resp.IsError() {
		rerr := remoteError(models.OpSearch, resp, err)
		log.Errorw(ctx, "contact search failed", "error", rerr)
		return nil, rerr
	}

	log.Infof(ctx, "Search returned %d of %d contacts", len(result.Results), result.Total)
	return &result, nil
}

func (c *client) BatchCreateContacts(ctx context.Context, inputs []map[string]string) ([]*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req := models.BatchCreateRequest{
		Inputs: make([]models.CreateContactRequest, 0, len(inputs)),
	}
	for _, props := range inputs {
		req.Inputs = append(req.Inputs, models.CreateContactRequest{Properties: props})
	}

	log.Infof(ctx, "Batch creating %d contacts", len(inputs))

	var result models.BatchCreateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(contactsPath + "/batch/create")
	if err != nil || resp.IsError() {
		// A partial batch failure surfaces as one aggregate error; HubSpot
		// does not report per-item outcomes for failed batches.
		rerr := remoteError(models.OpBatchCreate, resp, err)
		log.Errorw(ctx, "batch contact creation failed", "error", rerr)
		return nil, rerr
	}

	log.Infof(ctx, "Batch created %d contacts", len(result.Results))
	return result.Results, nil
}
