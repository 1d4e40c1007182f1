package server

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hiresync/hubspot-bridge/internal/models"
	"github.com/hiresync/hubspot-bridge/internal/usecase"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// searchFilterKeys are the query parameters recognized by contact search.
var searchFilterKeys = []string{
	"firstName",
	"lastName",
	"email",
	"ownerId",
	"candidateExperience",
	"candidatePastCompany",
}

type ContactController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Search(c echo.Context) error
	Delete(c echo.Context) error
	BatchCreate(c echo.Context) error
}

type contactController struct {
	contacts usecase.ContactUsecase
}

func NewContactController(contacts usecase.ContactUsecase) ContactController {
	return &contactController{contacts: contacts}
}

func (cc *contactController) Create(c echo.Context) error {
	var in models.ContactInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validateContactInput(in); err != nil {
		return err
	}

	contact, err := cc.contacts.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Contact created successfully",
		Data:    contactData(contact),
	})
}

func (cc *contactController) Get(c echo.Context) error {
	contact, err := cc.contacts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    contactData(contact),
	})
}

func (cc *contactController) Update(c echo.Context) error {
	var in models.ContactUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if in.Email != nil && !emailPattern.MatchString(*in.Email) {
		return models.NewValidationError("invalid email format")
	}

	contact, err := cc.contacts.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Contact updated successfully",
		Data:    contactData(contact),
	})
}

func (cc *contactController) Search(c echo.Context) error {
	filters := make(map[string]string)
	for _, key := range searchFilterKeys {
		if v := c.QueryParam(key); v != "" {
			filters[key] = v
		}
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	result, err := cc.contacts.Search(c.Request().Context(), filters, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

func (cc *contactController) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := cc.contacts.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Contact deleted successfully",
		Data:    map[string]string{"contactId": id},
	})
}

func (cc *contactController) BatchCreate(c echo.Context) error {
	var body struct {
		Contacts []models.ContactInput `json:"contacts"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Contacts == nil {
		return models.NewValidationError("contacts must be an array")
	}

	// The whole batch is rejected before any remote call when one element
	// is invalid.
	for i, in := range body.Contacts {
		if err := validateContactInput(in); err != nil {
			return models.NewValidationError("contact at index %d: %s", i, err.Message)
		}
	}

	created, err := cc.contacts.BatchCreate(c.Request().Context(), body.Contacts)
	if err != nil {
		return err
	}

	results := make([]map[string]any, 0, len(created))
	for _, contact := range created {
		results = append(results, contactData(contact))
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Contacts created successfully",
		Data: map[string]any{
			"count":    len(results),
			"contacts": results,
		},
	})
}

func validateContactInput(in models.ContactInput) *models.ValidationError {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(in.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(in.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return models.NewValidationError("missing required fields: %s", strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(in.Email) {
		return models.NewValidationError("invalid email format")
	}
	return nil
}

func contactData(contact *models.Contact) map[string]any {
	data := map[string]any{
		"contactId":  contact.ID,
		"properties": contact.Properties,
	}
	if contact.CreatedAt != "" {
		data["createdAt"] = contact.CreatedAt
	}
	if contact.UpdatedAt != "" {
		data["updatedAt"] = contact.UpdatedAt
	}
	return data
}
