// internal/docstore/docstore.go
package docstore

import (
	"context"
	"encoding/json"
)

// Collection names used by the service.
const (
	Charts   = "charts"
	Invites  = "invites"
	Users    = "users"
	Projects = "projects"
)

// Document is a raw stored document with its key.
type Document struct {
	Collection string
	ID         string
	Data       json.RawMessage
}

// Store is the document database collaborator. Implementations report a
// missing document as domain.ErrNotFound and transport or permission
// failures as domain.ErrStore.
type Store interface {
	// Get returns the raw document for collection/id.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)

	// Set writes doc under collection/id. With merge, top-level fields of an
	// existing document that doc does not name are preserved; without it the
	// document is replaced wholesale.
	Set(ctx context.Context, collection, id string, doc any, merge bool) error

	// Update merge-writes the given fields into an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// List returns every document in a collection.
	List(ctx context.Context, collection string) ([]Document, error)
}
