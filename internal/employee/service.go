package employee

import (
	"context"

	"directory-backend/internal/docstore"
	"directory-backend/internal/models"
	"directory-backend/internal/validation"
)

const collection = "employees"

// CreateInput carries the validated fields for a new employee. BranchID is a
// soft reference, never checked against the branches collection; it binds as
// validation.Int because the schema declares it numeric and the rule coerces
// numeric strings.
type CreateInput struct {
	Name       string         `json:"name"`
	Position   string         `json:"position"`
	Department string         `json:"department"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	BranchID   validation.Int `json:"branchId"`
}

// UpdateInput is a partial update; nil fields keep their stored value.
type UpdateInput struct {
	Name       *string         `json:"name"`
	Position   *string         `json:"position"`
	Department *string         `json:"department"`
	Email      *string         `json:"email"`
	Phone      *string         `json:"phone"`
	BranchID   *validation.Int `json:"branchId"`
}

// Service translates employee operations into document store calls. Same
// contract as the branch service: nil record for not-found, store errors pass
// through unchanged.
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetAll(ctx context.Context) ([]models.Employee, error) {
	docs, err := s.store.GetDocuments(ctx, collection)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByBranch lists employees whose branchId equals the given id. An empty
// result is not an error at this layer.
func (s *Service) GetByBranch(ctx context.Context, branchID int) ([]models.Employee, error) {
	docs, err := s.store.GetDocumentsByFieldValues(ctx, collection, []docstore.FieldValue{
		{Field: "branchId", Value: branchID},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

func (s *Service) GetByDepartment(ctx context.Context, department string) ([]models.Employee, error) {
	docs, err := s.store.GetDocumentsByFieldValues(ctx, collection, []docstore.FieldValue{
		{Field: "department", Value: department},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	doc, err := s.store.GetDocumentByID(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var e models.Employee
	if err := docstore.Decode(*doc, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Employee, error) {
	data, err := docstore.Encode(input)
	if err != nil {
		return nil, err
	}
	id, err := s.store.CreateDocument(ctx, collection, data)
	if err != nil {
		return nil, err
	}
	return &models.Employee{
		ID:         id,
		Name:       input.Name,
		Position:   input.Position,
		Department: input.Department,
		Email:      input.Email,
		Phone:      input.Phone,
		BranchID:   int(input.BranchID),
	}, nil
}

// Update read-merges-writes the full record; nothing is written when the id
// is unknown.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*models.Employee, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Position != nil {
		existing.Position = *input.Position
	}
	if input.Department != nil {
		existing.Department = *input.Department
	}
	if input.Email != nil {
		existing.Email = *input.Email
	}
	if input.Phone != nil {
		existing.Phone = *input.Phone
	}
	if input.BranchID != nil {
		existing.BranchID = int(*input.BranchID)
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

func decodeAll(docs []docstore.Document) ([]models.Employee, error) {
	employees := make([]models.Employee, 0, len(docs))
	for _, doc := range docs {
		var e models.Employee
		if err := docstore.Decode(doc, &e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}
