package models

// Wire shapes for the HubSpot CRM v3 API.

// CreateContactRequest is the body of POST /crm/v3/objects/contacts.
type CreateContactRequest struct {
	Properties map[string]string `json:"properties"`
}

// BatchCreateRequest is the body of POST /crm/v3/objects/contacts/batch/create.
type BatchCreateRequest struct {
	Inputs []CreateContactRequest `json:"inputs"`
}

// BatchCreateResponse is HubSpot's acknowledgement of a batch create.
type BatchCreateResponse struct {
	Status  string     `json:"status"`
	Results []*Contact `json:"results"`
}

// SearchRequest is the body of POST /crm/v3/objects/contacts/search.
type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
}

// FilterGroup combines its filters with AND.
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

// Filter is a single property predicate.
type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

// RemoteErrorPayload is the structured error body HubSpot attaches to
// failed requests.
type RemoteErrorPayload struct {
	Status        string `json:"status,omitempty"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
	Category      string `json:"category,omitempty"`
	SubCategory   string `json:"subCategory,omitempty"`
}

// Error categories HubSpot uses that we act on.
const (
	CategoryConflict       = "CONFLICT"
	CategoryObjectNotFound = "OBJECT_NOT_FOUND"
)
