// internal/docstore/postgres.go
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bitloft/orgkit/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// record is the row shape backing one document.
type record struct {
	Collection string          `gorm:"primaryKey;type:text"`
	ID         string          `gorm:"primaryKey;type:text"`
	Data       json.RawMessage `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time
}

func (record) TableName() string { return "documents" }

// PostgresStore keeps documents in a single JSONB-backed table. Merge writes
// use jsonb concatenation, so concurrent writers are last-writer-wins per
// top-level field.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrating documents table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var rec record
	result := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("getting document", result.Error)
	}
	return rec.Data, nil
}

func (s *PostgresStore) Set(ctx context.Context, collection, id string, doc any, merge bool) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	var query string
	if merge {
		query = `INSERT INTO documents (collection, id, data, updated_at)
			VALUES (?, ?, ?, now())
			ON CONFLICT (collection, id)
			DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()`
	} else {
		query = `INSERT INTO documents (collection, id, data, updated_at)
			VALUES (?, ?, ?, now())
			ON CONFLICT (collection, id)
			DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	}

	if err := s.db.WithContext(ctx).Exec(query, collection, id, data).Error; err != nil {
		return storeError("writing document", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return s.Set(ctx, collection, id, fields, true)
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	var recs []record
	result := s.db.WithContext(ctx).Where("collection = ?", collection).Find(&recs)
	if result.Error != nil {
		return nil, storeError("listing documents", result.Error)
	}

	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, Document{Collection: rec.Collection, ID: rec.ID, Data: rec.Data})
	}
	return docs, nil
}

// storeError wraps a transport error as domain.ErrStore, keeping the
// Postgres error code when one is present.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s (%s): %v: %w", op, pgErr.Code, err, domain.ErrStore)
	}
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStore)
}
