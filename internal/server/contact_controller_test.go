package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiresync/hubspot-bridge/internal/models"
)

func TestContactCreateEndpoint(t *testing.T) {
	t.Run("camelCase input lands as internal property names", func(t *testing.T) {
		client := newStubClient()
		e := newTestServer(client)

		rec, body := doJSON(t, e, http.MethodPost, "/api/contacts", `{
			"firstName": "Ada",
			"lastName": "Lovelace",
			"email": "ada@example.com",
			"candidateExperience": 7,
			"candidatePastCompany": "Analytical Engines"
		}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Contact created successfully", body["message"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "9001", data["contactId"])

		props := data["properties"].(map[string]any)
		assert.Equal(t, "Ada", props["firstname"])
		assert.Equal(t, "7", props["candidate_experience"])
		assert.Equal(t, "Analytical Engines", props["candidate_past_company"])
		assert.NotContains(t, props, "firstName")
		assert.NotContains(t, props, "candidateExperience")
	})

	t.Run("bad email is rejected before any remote call", func(t *testing.T) {
		client := newStubClient()
		e := newTestServer(client)

		rec, body := doJSON(t, e, http.MethodPost, "/api/contacts", `{
			"firstName": "Ada",
			"lastName": "Lovelace",
			"email": "not-an-email"
		}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "invalid email format", body["error"])
		assert.Zero(t, client.createCalls)
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		e := newTestServer(newStubClient())

		rec, body := doJSON(t, e, http.MethodPost, "/api/contacts", `{"email": "a@b.co"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing required fields: firstName, lastName", body["error"])
	})

	t.Run("minimal valid email passes", func(t *testing.T) {
		e := newTestServer(newStubClient())

		rec, _ := doJSON(t, e, http.MethodPost, "/api/contacts", `{
			"firstName": "A", "lastName": "B", "email": "a@b.co"
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestContactGetEndpoint(t *testing.T) {
	client := newStubClient()
	client.contacts["777"] = &models.Contact{
		ID:         "777",
		Properties: map[string]string{"email": "ada@example.com"},
	}
	e := newTestServer(client)

	t.Run("found", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodGet, "/api/contacts/777", "")
		require.Equal(t, http.StatusOK, rec.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "777", data["contactId"])
	})

	t.Run("missing contact echoes the id", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodGet, "/api/contacts/999", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Contact not found", body["error"])
		assert.Equal(t, "999", body["contactId"])
	})
}

func TestContactUpdateEndpoint(t *testing.T) {
	e := newTestServer(newStubClient())

	t.Run("partial update succeeds", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPatch, "/api/contacts/777", `{"phone": "+659999"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Contact updated successfully", body["message"])

		data := body["data"].(map[string]any)
		props := data["properties"].(map[string]any)
		assert.Equal(t, "+659999", props["phone"])
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPatch, "/api/contacts/777", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "at least one updatable field is required", body["error"])
	})

	t.Run("bad email is rejected", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPatch, "/api/contacts/777", `{"email": "nope"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid email format", body["error"])
	})
}

func TestContactSearchEndpoint(t *testing.T) {
	client := newStubClient()
	e := newTestServer(client)

	rec, body := doJSON(t, e, http.MethodGet, "/api/contacts?firstName=Ada&ownerId=142&bogus=x", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	assert.Equal(t, map[string]string{
		"firstname":        "Ada",
		"hubspot_owner_id": "142",
	}, client.lastFilters)
	assert.Equal(t, 10, client.lastLimit)
}

func TestContactDeleteEndpoint(t *testing.T) {
	e := newTestServer(newStubClient())

	rec, body := doJSON(t, e, http.MethodDelete, "/api/contacts/777", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Contact deleted successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "777", data["contactId"])
}

func TestContactBatchEndpoint(t *testing.T) {
	t.Run("whole batch is created", func(t *testing.T) {
		client := newStubClient()
		e := newTestServer(client)

		rec, body := doJSON(t, e, http.MethodPost, "/api/contacts/batch", `{"contacts": [
			{"firstName": "A", "lastName": "B", "email": "a@b.co"},
			{"firstName": "C", "lastName": "D", "email": "c@d.co"}
		]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(2), data["count"])
		assert.Equal(t, 1, client.batchCalls)
	})

	t.Run("one invalid element rejects the whole batch", func(t *testing.T) {
		client := newStubClient()
		e := newTestServer(client)

		rec, body := doJSON(t, e, http.MethodPost, "/api/contacts/batch", `{"contacts": [
			{"firstName": "A", "lastName": "B", "email": "a@b.co"},
			{"firstName": "C", "lastName": "D", "email": "broken"}
		]}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "contact at index 1: invalid email format", body["error"])
		assert.Zero(t, client.batchCalls)
	})

	t.Run("contacts must be an array", func(t *testing.T) {
		e := newTestServer(newStubClient())

		rec, body := doJSON(t, e, http.MethodPost, "/api/contacts/batch", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "contacts must be an array", body["error"])
	})
}
