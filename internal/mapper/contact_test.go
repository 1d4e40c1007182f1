package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiresync/hubspot-bridge/internal/models"
	"github.com/hiresync/hubspot-bridge/pkg/util"
)

func TestMapContactCreate(t *testing.T) {
	t.Parallel()

	t.Run("maps all fields to remote names", func(t *testing.T) {
		in := models.ContactInput{
			FirstName:              "Ada",
			LastName:               "Lovelace",
			Email:                  "ada@example.com",
			Phone:                  "+6598765432",
			OwnerID:                "142",
			CandidateExperience:    json.Number("7.5"),
			CandidateDateOfJoining: "2025-03-01",
			CandidateName:          "Ada Lovelace",
			CandidatePastCompany:   "Analytical Engines Ltd",
		}

		props := MapContactCreate(in)

		assert.Equal(t, map[string]string{
			"firstname":                 "Ada",
			"lastname":                  "Lovelace",
			"email":                     "ada@example.com",
			"phone":                     "+6598765432",
			"hubspot_owner_id":          "142",
			"candidate_experience":      "7.5",
			"candidate_date_of_joining": "2025-03-01",
			"candidate_name":            "Ada Lovelace",
			"candidate_past_company":    "Analytical Engines Ltd",
		}, props)
	})

	t.Run("strips empty values", func(t *testing.T) {
		in := models.ContactInput{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
		}

		props := MapContactCreate(in)

		assert.Equal(t, map[string]string{
			"firstname": "A",
			"lastname":  "B",
			"email":     "a@b.com",
		}, props)
		assert.NotContains(t, props, "candidate_experience")
		assert.NotContains(t, props, "candidate_name")
		assert.NotContains(t, props, "phone")
	})
}

func TestMapContactUpdate(t *testing.T) {
	t.Parallel()

	t.Run("absent fields are never mentioned", func(t *testing.T) {
		props := MapContactUpdate(models.ContactUpdate{
			Phone: util.Ptr("+84123456"),
		})

		assert.Equal(t, map[string]string{"phone": "+84123456"}, props)
	})

	t.Run("present empty string is forwarded", func(t *testing.T) {
		props := MapContactUpdate(models.ContactUpdate{
			Phone:         util.Ptr(""),
			CandidateName: util.Ptr("Grace Hopper"),
		})

		assert.Equal(t, map[string]string{
			"phone":          "",
			"candidate_name": "Grace Hopper",
		}, props)
	})

	t.Run("empty update maps to empty bag", func(t *testing.T) {
		assert.Empty(t, MapContactUpdate(models.ContactUpdate{}))
	})

	t.Run("numeric experience passes through as provided", func(t *testing.T) {
		exp := json.Number("10")
		props := MapContactUpdate(models.ContactUpdate{CandidateExperience: &exp})

		assert.Equal(t, map[string]string{"candidate_experience": "10"}, props)
	})
}

func TestSearchFilterProperty(t *testing.T) {
	t.Parallel()

	name, ok := SearchFilterProperty("ownerId")
	assert.True(t, ok)
	assert.Equal(t, "hubspot_owner_id", name)

	_, ok = SearchFilterProperty("limit")
	assert.False(t, ok)
}
