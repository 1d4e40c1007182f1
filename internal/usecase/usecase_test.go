package usecase

import (
	"context"

	"github.com/hiresync/hubspot-bridge/internal/models"
)

// fakeClient is a hand-rolled hubspot.Client for usecase tests.
type fakeClient struct {
	// canned responses
	contacts   map[string]*models.Contact
	properties map[string]models.Property
	failProps  map[string]bool

	// captured calls
	createdProps   []string
	searchedProps  map[string]string
	searchedLimit  int
	updatedProps   map[string]string
	batchedInputs  []map[string]string
	deletedIDs     []string
	createdContact map[string]string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		contacts:   make(map[string]*models.Contact),
		properties: make(map[string]models.Property),
		failProps:  make(map[string]bool),
	}
}

func (f *fakeClient) CreateContact(ctx context.Context, props map[string]string) (*models.Contact, error) {
	f.createdContact = props
	return &models.Contact{ID: "9001", Properties: props}, nil
}

func (f *fakeClient) GetContact(ctx context.Context, id string, properties []string) (*models.Contact, error) {
	return f.contacts[id], nil
}

func (f *fakeClient) UpdateContact(ctx context.Context, id string, props map[string]string) (*models.Contact, error) {
	f.updatedProps = props
	return &models.Contact{ID: id, Properties: props}, nil
}

func (f *fakeClient) DeleteContact(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeClient) SearchContacts(ctx context.Context, filters map[string]string, limit int) (*models.SearchResult, error) {
	f.searchedProps = filters
	f.searchedLimit = limit
	return &models.SearchResult{Total: 0, Results: []*models.Contact{}}, nil
}

func (f *fakeClient) BatchCreateContacts(ctx context.Context, inputs []map[string]string) ([]*models.Contact, error) {
	f.batchedInputs = inputs
	out := make([]*models.Contact, 0, len(inputs))
	for i, props := range inputs {
		out = append(out, &models.Contact{ID: string(rune('a' + i)), Properties: props})
	}
	return out, nil
}

func (f *fakeClient) CreateProperty(ctx context.Context, prop models.Property) (*models.Property, bool, error) {
	if f.failProps[prop.Name] {
		return nil, false, &models.RemoteOperationError{
			Op:      models.OpPropertyCreate,
			Message: "remote unavailable",
		}
	}
	if _, exists := f.properties[prop.Name]; exists {
		return nil, true, nil
	}
	f.properties[prop.Name] = prop
	f.createdProps = append(f.createdProps, prop.Name)
	return &prop, false, nil
}

func (f *fakeClient) GetProperty(ctx context.Context, name string) (*models.Property, error) {
	prop, ok := f.properties[name]
	if !ok {
		return nil, nil
	}
	return &prop, nil
}
