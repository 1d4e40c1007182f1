package usecase

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/hiresync/hubspot-bridge/internal/mapper"
	"github.com/hiresync/hubspot-bridge/internal/models"
	"github.com/hiresync/hubspot-bridge/internal/repo/hubspot"
)

// DefaultSearchLimit applies when the caller does not supply a limit.
const DefaultSearchLimit = 10

type ContactUsecase interface {
	Create(ctx context.Context, in models.ContactInput) (*models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	Update(ctx context.Context, id string, in models.ContactUpdate) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filters map[string]string, limit int) (*models.SearchResult, error)
	BatchCreate(ctx context.Context, inputs []models.ContactInput) ([]*models.Contact, error)
}

type contactUsecase struct {
	client hubspot.Client
}

func NewContactUsecase(client hubspot.Client) ContactUsecase {
	return &contactUsecase{client: client}
}

func (uc *contactUsecase) Create(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	return uc.client.CreateContact(ctx, mapper.MapContactCreate(in))
}

func (uc *contactUsecase) Get(ctx context.Context, id string) (*models.Contact, error) {
	contact, err := uc.client.GetContact(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, &models.NotFoundError{Resource: "contact", ID: id}
	}
	return contact, nil
}

func (uc *contactUsecase) Update(ctx context.Context, id string, in models.ContactUpdate) (*models.Contact, error) {
	props := mapper.MapContactUpdate(in)
	if len(props) == 0 {
		return nil, models.NewValidationError("at least one updatable field is required")
	}
	return uc.client.UpdateContact(ctx, id, props)
}

func (uc *contactUsecase) Delete(ctx context.Context, id string) error {
	return uc.client.DeleteContact(ctx, id)
}

// Search translates recognized filter keys to remote property names and
// silently drops anything it does not recognize.
func (uc *contactUsecase) Search(ctx context.Context, filters map[string]string, limit int) (*models.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	remote := make(map[string]string, len(filters))
	for key, value := range filters {
		if name, ok := mapper.SearchFilterProperty(key); ok && value != "" {
			remote[name] = value
		}
	}

	return uc.client.SearchContacts(ctx, remote, limit)
}

func (uc *contactUsecase) BatchCreate(ctx context.Context, inputs []models.ContactInput) ([]*models.Contact, error) {
	bags := make([]map[string]string, 0, len(inputs))
	for _, in := range inputs {
		bags = append(bags, mapper.MapContactCreate(in))
	}

	log.Infof(ctx, "Submitting batch of %d contacts", len(bags))
	return uc.client.BatchCreateContacts(ctx, bags)
}
