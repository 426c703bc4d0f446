package branch

import (
	"context"

	"directory-backend/internal/docstore"
	"directory-backend/internal/models"
)

const collection = "branches"

// CreateInput carries the validated fields for a new branch.
type CreateInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateInput is a partial update. A nil field was absent from the payload and
// keeps its stored value; a non-nil field replaces it, empty string included.
type UpdateInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// Service translates branch operations into document store calls. Not-found
// is reported as a nil record, never as an error; store errors pass through
// unchanged.
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetAll(ctx context.Context) ([]models.Branch, error) {
	docs, err := s.store.GetDocuments(ctx, collection)
	if err != nil {
		return nil, err
	}
	branches := make([]models.Branch, 0, len(docs))
	for _, doc := range docs {
		var b models.Branch
		if err := docstore.Decode(doc, &b); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Branch, error) {
	doc, err := s.store.GetDocumentByID(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var b models.Branch
	if err := docstore.Decode(*doc, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Branch, error) {
	data, err := docstore.Encode(input)
	if err != nil {
		return nil, err
	}
	id, err := s.store.CreateDocument(ctx, collection, data)
	if err != nil {
		return nil, err
	}
	return &models.Branch{
		ID:      id,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}, nil
}

// Update read-merges-writes: the existing record is loaded, provided fields
// are overlaid, and the full result is persisted. Nothing is written when the
// id is unknown.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*models.Branch, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Address != nil {
		existing.Address = *input.Address
	}
	if input.Phone != nil {
		existing.Phone = *input.Phone
	}

	data, err := docstore.Encode(existing)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateDocument(ctx, collection, id, data); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete returns false without touching the store when the id is unknown.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	doc, err := s.store.GetDocumentByID(ctx, collection, id)
	if err != nil {
		return false, err
	}
	if doc == nil {
		return false, nil
	}
	if err := s.store.DeleteDocument(ctx, collection, id); err != nil {
		return false, err
	}
	return true, nil
}
