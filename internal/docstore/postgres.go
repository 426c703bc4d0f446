package docstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentRow is the storage shape: one row per document, payload as jsonb.
type documentRow struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:36"`
	Data       string `gorm:"type:jsonb;not null"`
}

func (documentRow) TableName() string { return "documents" }

// PostgresStore keeps documents in a single jsonb-backed table.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore migrates the documents table on the given connection.
func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetDocuments(ctx context.Context, collection string) ([]Document, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToDocuments(rows)
}

func (s *PostgresStore) GetDocumentByID(ctx context.Context, collection, id string) (*Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).First(&row, "collection = ? AND id = ?", collection, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	doc, err := rowToDocument(row)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *PostgresStore) CreateDocument(ctx context.Context, collection string, data map[string]any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	row := documentRow{Collection: collection, ID: id, Data: string(raw)}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("collection = ? AND id = ?", collection, id).
		Update("data", string(raw)).Error
}

func (s *PostgresStore) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.db.WithContext(ctx).
		Delete(&documentRow{}, "collection = ? AND id = ?", collection, id).Error
}

func (s *PostgresStore) GetDocumentsByFieldValues(ctx context.Context, collection string, filters []FieldValue) ([]Document, error) {
	// jsonb containment does the equality conjunction server-side.
	conditions := make(map[string]any, len(filters))
	for _, f := range filters {
		conditions[f.Field] = f.Value
	}
	raw, err := json.Marshal(conditions)
	if err != nil {
		return nil, err
	}
	var rows []documentRow
	err = s.db.WithContext(ctx).
		Where("collection = ? AND data @> ?", collection, string(raw)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToDocuments(rows)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func rowToDocument(row documentRow) (Document, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return Document{}, err
	}
	return Document{ID: row.ID, Data: data}, nil
}

func rowsToDocuments(rows []documentRow) ([]Document, error) {
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := rowToDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
