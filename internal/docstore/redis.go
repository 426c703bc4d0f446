package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per collection, document id -> JSON payload.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(collection string) string {
	return "documents:" + collection
}

func (s *RedisStore) GetDocuments(ctx context.Context, collection string) ([]Document, error) {
	values, err := s.client.HGetAll(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(values))
	for id, raw := range values {
		var data map[string]any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	// HGetAll yields map order; keep output stable.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *RedisStore) GetDocumentByID(ctx context.Context, collection, id string) (*Document, error) {
	raw, err := s.client.HGet(ctx, s.key(collection), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return &Document{ID: id, Data: data}, nil
}

func (s *RedisStore) CreateDocument(ctx context.Context, collection string, data map[string]any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := s.client.HSet(ctx, s.key(collection), id, raw).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, s.key(collection), id, raw).Err()
}

func (s *RedisStore) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.client.HDel(ctx, s.key(collection), id).Err()
}

func (s *RedisStore) GetDocumentsByFieldValues(ctx context.Context, collection string, filters []FieldValue) ([]Document, error) {
	docs, err := s.GetDocuments(ctx, collection)
	if err != nil {
		return nil, err
	}
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if matches(doc, filters) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
