package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hiresync/hubspot-bridge/internal/models"
	"github.com/hiresync/hubspot-bridge/internal/usecase"
)

type PropertyController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Setup(c echo.Context) error
	Get(c echo.Context) error
}

type propertyController struct {
	properties usecase.PropertyUsecase
}

func NewPropertyController(properties usecase.PropertyUsecase) PropertyController {
	return &propertyController{properties: properties}
}

// List reports which catalog properties exist on the remote schema.
func (pc *propertyController) List(c echo.Context) error {
	statuses, err := pc.properties.CatalogStatus(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    statuses,
	})
}

type CreatePropertyRequest struct {
	Name        string `json:"name" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=string number date"`
	FieldType   string `json:"fieldType"`
	Description string `json:"description"`
	GroupName   string `json:"groupName"`
}

// Create defines one ad-hoc property beyond the fixed catalog.
func (pc *propertyController) Create(c echo.Context) error {
	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.FieldType == "" {
		req.FieldType = defaultFieldType(req.Type)
	}

	result, err := pc.properties.EnsureProperty(c.Request().Context(), models.Property{
		Name:        req.Name,
		Label:       req.Label,
		Type:        req.Type,
		FieldType:   req.FieldType,
		Description: req.Description,
		GroupName:   req.GroupName,
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.Status == models.ProvisionAlreadyExists {
		status = http.StatusOK
	}
	return c.JSON(status, Response{
		Success: true,
		Data:    result,
	})
}

// Setup provisions the fixed catalog: 201 when every item succeeded,
// 207 when the run was only partially successful.
func (pc *propertyController) Setup(c echo.Context) error {
	summary, err := pc.properties.ProvisionAll(c.Request().Context())
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if summary.Failed > 0 {
		status = http.StatusMultiStatus
	}
	return c.JSON(status, Response{
		Success: summary.Failed == 0,
		Data:    summary,
	})
}

func (pc *propertyController) Get(c echo.Context) error {
	prop, err := pc.properties.GetProperty(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    prop,
	})
}

func defaultFieldType(propType string) string {
	switch propType {
	case models.PropertyTypeNumber:
		return "number"
	case models.PropertyTypeDate:
		return "date"
	default:
		return "text"
	}
}
