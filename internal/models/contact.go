package models

import "encoding/json"

// Contact is a HubSpot contact object as returned by the CRM v3 API.
// HubSpot is the sole store of record; we never persist contacts locally.
type Contact struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
	Archived   bool              `json:"archived,omitempty"`
}

// ContactInput is the inbound shape for contact creation. Experience is
// kept as json.Number so numeric values pass through to the wire exactly
// as the caller provided them.
type ContactInput struct {
	FirstName              string      `json:"firstName"`
	LastName               string      `json:"lastName"`
	Email                  string      `json:"email"`
	Phone                  string      `json:"phone,omitempty"`
	OwnerID                string      `json:"ownerId,omitempty"`
	CandidateExperience    json.Number `json:"candidateExperience,omitempty"`
	CandidateDateOfJoining string      `json:"candidateDateOfJoining,omitempty"`
	CandidateName          string      `json:"candidateName,omitempty"`
	CandidatePastCompany   string      `json:"candidatePastCompany,omitempty"`
}

// ContactUpdate is the inbound shape for partial updates. A nil field was
// absent from the request and must not be touched remotely; a non-nil
// empty string is forwarded and clears the remote value.
type ContactUpdate struct {
	FirstName              *string      `json:"firstName,omitempty"`
	LastName               *string      `json:"lastName,omitempty"`
	Email                  *string      `json:"email,omitempty"`
	Phone                  *string      `json:"phone,omitempty"`
	OwnerID                *string      `json:"ownerId,omitempty"`
	CandidateExperience    *json.Number `json:"candidateExperience,omitempty"`
	CandidateDateOfJoining *string      `json:"candidateDateOfJoining,omitempty"`
	CandidateName          *string      `json:"candidateName,omitempty"`
	CandidatePastCompany   *string      `json:"candidatePastCompany,omitempty"`
}

// SearchResult holds one page of search matches plus the total count
// reported by HubSpot, which may exceed the returned page.
type SearchResult struct {
	Total   int        `json:"total"`
	Results []*Contact `json:"results"`
}
