package usecase

import (
	"context"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"golang.org/x/time/rate"

	"github.com/hiresync/hubspot-bridge/internal/mapper"
	"github.com/hiresync/hubspot-bridge/internal/models"
	"github.com/hiresync/hubspot-bridge/internal/repo/hubspot"
)

// PropertyGroup is the schema group holding every catalog property.
const PropertyGroup = "contactinformation"

// provisionInterval paces successive property creations. HubSpot rate
// limits schema writes; this is a fixed throttle, not adaptive backoff.
const provisionInterval = 100 * time.Millisecond

// Catalog is the fixed set of custom properties this service requires.
var Catalog = []models.Property{
	{
		Name:        mapper.PropCandidateExperience,
		Label:       "Candidate Experience (Years)",
		Type:        models.PropertyTypeNumber,
		FieldType:   "number",
		Description: "Total years of professional experience",
		GroupName:   PropertyGroup,
	},
	{
		Name:        mapper.PropCandidateDateOfJoining,
		Label:       "Candidate Date of Joining",
		Type:        models.PropertyTypeDate,
		FieldType:   "date",
		Description: "Date the candidate joined or will join",
		GroupName:   PropertyGroup,
	},
	{
		Name:        mapper.PropCandidateName,
		Label:       "Candidate Full Name",
		Type:        models.PropertyTypeString,
		FieldType:   "text",
		Description: "Full name of the candidate",
		GroupName:   PropertyGroup,
	},
	{
		Name:        mapper.PropCandidatePastCompany,
		Label:       "Candidate Past Company",
		Type:        models.PropertyTypeString,
		FieldType:   "text",
		Description: "Most recent past employer",
		GroupName:   PropertyGroup,
	},
}

type PropertyUsecase interface {
	EnsureProperty(ctx context.Context, prop models.Property) (models.ProvisionResult, error)
	ProvisionAll(ctx context.Context) (*models.ProvisionSummary, error)
	CatalogStatus(ctx context.Context) ([]models.PropertyStatus, error)
	GetProperty(ctx context.Context, name string) (*models.Property, error)
}

type propertyUsecase struct {
	client  hubspot.Client
	limiter *rate.Limiter
}

func NewPropertyUsecase(client hubspot.Client) PropertyUsecase {
	return &propertyUsecase{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(provisionInterval), 1),
	}
}

// EnsureProperty creates a property definition, treating a remote conflict
// as a successful already_exists outcome. Callers may pass non-catalog
// definitions.
func (uc *propertyUsecase) EnsureProperty(ctx context.Context, prop models.Property) (models.ProvisionResult, error) {
	if prop.GroupName == "" {
		prop.GroupName = PropertyGroup
	}

	_, conflict, err := uc.client.CreateProperty(ctx, prop)
	if err != nil {
		return models.ProvisionResult{
			Name:   prop.Name,
			Status: models.ProvisionFailed,
			Error:  err.Error(),
		}, err
	}
	if conflict {
		return models.ProvisionResult{Name: prop.Name, Status: models.ProvisionAlreadyExists}, nil
	}
	return models.ProvisionResult{Name: prop.Name, Status: models.ProvisionCreated}, nil
}

// ProvisionAll walks the fixed catalog sequentially behind the interval
// limiter. One item's failure is recorded but does not abort the rest.
func (uc *propertyUsecase) ProvisionAll(ctx context.Context) (*models.ProvisionSummary, error) {
	summary := &models.ProvisionSummary{
		Total:   len(Catalog),
		Results: make([]models.ProvisionResult, 0, len(Catalog)),
	}

	log.Infof(ctx, "Provisioning %d custom properties", len(Catalog))

	for _, prop := range Catalog {
		if err := uc.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := uc.EnsureProperty(ctx, prop)
		summary.Results = append(summary.Results, result)
		if err != nil {
			summary.Failed++
			continue
		}
		summary.Successful++
	}

	log.Infow(ctx, "provisioning finished",
		"total", summary.Total,
		"successful", summary.Successful,
		"failed", summary.Failed,
	)
	return summary, nil
}

// CatalogStatus probes each catalog property for existence.
func (uc *propertyUsecase) CatalogStatus(ctx context.Context) ([]models.PropertyStatus, error) {
	statuses := make([]models.PropertyStatus, 0, len(Catalog))
	for _, prop := range Catalog {
		found, err := uc.client.GetProperty(ctx, prop.Name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, models.PropertyStatus{
			Name:   prop.Name,
			Exists: found != nil,
		})
	}
	return statuses, nil
}

func (uc *propertyUsecase) GetProperty(ctx context.Context, name string) (*models.Property, error) {
	prop, err := uc.client.GetProperty(ctx, name)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, &models.NotFoundError{Resource: "property", ID: name}
	}
	return prop, nil
}
