// Package docstore is a thin adapter over an id-keyed, schema-less document
// database. Documents live in named collections and carry arbitrary JSON
// payloads; absence of a document is a normal outcome, not an error. Backend
// errors are returned to the caller unmodified.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
)

// Document is a single record in a collection.
type Document struct {
	ID   string
	Data map[string]any
}

// FieldValue is one equality condition for filtered queries.
type FieldValue struct {
	Field string
	Value any
}

type Store interface {
	// GetDocuments returns the full collection. No ordering is promised.
	GetDocuments(ctx context.Context, collection string) ([]Document, error)
	// GetDocumentByID returns (nil, nil) when the id is unknown.
	GetDocumentByID(ctx context.Context, collection, id string) (*Document, error)
	// CreateDocument stores data under a freshly generated id and returns it.
	// The data shape is not validated here.
	CreateDocument(ctx context.Context, collection string, data map[string]any) (string, error)
	// UpdateDocument overwrites the document; the caller supplies the complete
	// merged record.
	UpdateDocument(ctx context.Context, collection, id string, data map[string]any) error
	// DeleteDocument deletes unconditionally; missing-id handling is the
	// caller's responsibility.
	DeleteDocument(ctx context.Context, collection, id string) error
	// GetDocumentsByFieldValues returns documents matching every listed
	// field/value equality condition.
	GetDocumentsByFieldValues(ctx context.Context, collection string, filters []FieldValue) ([]Document, error)
	// Ping checks backend connectivity.
	Ping(ctx context.Context) error
}

// Decode maps a document onto a typed record, filling its "id" field.
func Decode(doc Document, v any) error {
	data := make(map[string]any, len(doc.Data)+1)
	for k, val := range doc.Data {
		data[k] = val
	}
	data["id"] = doc.ID
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Encode turns a typed record into document data. The id is never part of the
// stored payload, it lives in the document key.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	delete(data, "id")
	return data, nil
}

// matches reports whether the document satisfies every filter.
func matches(doc Document, filters []FieldValue) bool {
	for _, f := range filters {
		got, ok := doc.Data[f.Field]
		if !ok || !jsonEqual(got, f.Value) {
			return false
		}
	}
	return true
}

// jsonEqual compares values by their JSON form, so an int filter matches the
// float64 a decoded document carries.
func jsonEqual(a, b any) bool {
	ra, err := json.Marshal(a)
	if err != nil {
		return false
	}
	rb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ra, rb)
}
