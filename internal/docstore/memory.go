// internal/docstore/memory.go
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/bitloft/orgkit/internal/domain"
)

// MemoryStore is an in-memory Store used by tests and local development.
// Documents are held as decoded JSON objects so merge semantics match the
// Postgres implementation: top-level fields only.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]map[string]any

	// FailWrites forces every write to fail, for exercising store-failure
	// paths in tests.
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]map[string]any)}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return raw, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc any, merge bool) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("document must be a JSON object: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return fmt.Errorf("forced write failure: %w", domain.ErrStore)
	}

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]any)
	}

	existing, ok := s.data[collection][id]
	if !merge || !ok {
		s.data[collection][id] = fields
		return nil
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return s.Set(ctx, collection, id, fields, true)
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data[collection]))
	for id := range s.data[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		raw, err := json.Marshal(s.data[collection][id])
		if err != nil {
			return nil, fmt.Errorf("encoding document: %w", err)
		}
		docs = append(docs, Document{Collection: collection, ID: id, Data: raw})
	}
	return docs, nil
}
