// Package mapper translates the application-level contact shape into the
// flat snake_case property bag HubSpot expects.
package mapper

import "github.com/hiresync/hubspot-bridge/internal/models"

// Remote property names for the contact schema.
const (
	PropFirstName              = "firstname"
	PropLastName               = "lastname"
	PropEmail                  = "email"
	PropPhone                  = "phone"
	PropOwnerID                = "hubspot_owner_id"
	PropCandidateExperience    = "candidate_experience"
	PropCandidateDateOfJoining = "candidate_date_of_joining"
	PropCandidateName          = "candidate_name"
	PropCandidatePastCompany   = "candidate_past_company"
)

// DefaultContactProperties is the projection requested on reads and
// searches when the caller does not ask for specific properties.
var DefaultContactProperties = []string{
	PropFirstName,
	PropLastName,
	PropEmail,
	PropPhone,
	PropOwnerID,
	PropCandidateExperience,
	PropCandidateDateOfJoining,
	PropCandidateName,
	PropCandidatePastCompany,
}

// searchFilterProps maps recognized inbound filter keys to remote names.
var searchFilterProps = map[string]string{
	"firstName":            PropFirstName,
	"lastName":             PropLastName,
	"email":                PropEmail,
	"ownerId":              PropOwnerID,
	"candidateExperience":  PropCandidateExperience,
	"candidatePastCompany": PropCandidatePastCompany,
}

// MapContactCreate builds the outbound property bag for a creation.
// Empty values are stripped: HubSpot rejects empty strings for some
// property types, and an absent key means "unset" anyway.
func MapContactCreate(in models.ContactInput) map[string]string {
	props := map[string]string{
		PropFirstName:              in.FirstName,
		PropLastName:               in.LastName,
		PropEmail:                  in.Email,
		PropPhone:                  in.Phone,
		PropOwnerID:                in.OwnerID,
		PropCandidateExperience:    in.CandidateExperience.String(),
		PropCandidateDateOfJoining: in.CandidateDateOfJoining,
		PropCandidateName:          in.CandidateName,
		PropCandidatePastCompany:   in.CandidatePastCompany,
	}
	for k, v := range props {
		if v == "" {
			delete(props, k)
		}
	}
	return props
}

// MapContactUpdate builds the outbound property bag for a partial update.
// Only fields present in the request are mapped; a present empty string IS
// forwarded and clears the remote value. This asymmetry with create is
// deliberate and must not be unified.
func MapContactUpdate(in models.ContactUpdate) map[string]string {
	props := make(map[string]string)
	setString := func(key string, v *string) {
		if v != nil {
			props[key] = *v
		}
	}
	setString(PropFirstName, in.FirstName)
	setString(PropLastName, in.LastName)
	setString(PropEmail, in.Email)
	setString(PropPhone, in.Phone)
	setString(PropOwnerID, in.OwnerID)
	if in.CandidateExperience != nil {
		props[PropCandidateExperience] = in.CandidateExperience.String()
	}
	setString(PropCandidateDateOfJoining, in.CandidateDateOfJoining)
	setString(PropCandidateName, in.CandidateName)
	setString(PropCandidatePastCompany, in.CandidatePastCompany)
	return props
}

// SearchFilterProperty resolves an inbound filter key to its remote
// property name. Unrecognized keys are ignored by the caller.
func SearchFilterProperty(key string) (string, bool) {
	name, ok := searchFilterProps[key]
	return name, ok
}
