package models

// Property is a custom field definition in the HubSpot contact schema.
type Property struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	FieldType   string `json:"fieldType"`
	Description string `json:"description,omitempty"`
	GroupName   string `json:"groupName"`
}

// Valid property value types accepted by the generic creation endpoint.
const (
	PropertyTypeString = "string"
	PropertyTypeNumber = "number"
	PropertyTypeDate   = "date"
)

// ProvisionStatus tags the outcome of one idempotent property creation.
type ProvisionStatus string

const (
	ProvisionCreated       ProvisionStatus = "created"
	ProvisionAlreadyExists ProvisionStatus = "already_exists"
	ProvisionFailed        ProvisionStatus = "failed"
)

// ProvisionResult is the per-item outcome of a catalog provisioning run.
type ProvisionResult struct {
	Name   string          `json:"name"`
	Status ProvisionStatus `json:"status"`
	Error  string          `json:"error,omitempty"`
}

// ProvisionSummary aggregates a provisioning run. An already_exists
// outcome counts as successful.
type ProvisionSummary struct {
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Results    []ProvisionResult `json:"results"`
}

// PropertyStatus reports whether one catalog property exists remotely.
// Existence is modeled as an explicit result, not an error path.
type PropertyStatus struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}
