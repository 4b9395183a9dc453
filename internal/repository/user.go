// internal/repository/user.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bitloft/orgkit/internal/docstore"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/model"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

// UserRepository persists membership records keyed by user ID.
type UserRepository struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.store.Set(ctx, docstore.Users, user.ID, user, false); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	raw, err := r.store.Get(ctx, docstore.Users, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &user, nil
}

// FindByEmail scans the users collection. Documents are keyed by user ID and
// the store exposes no secondary index.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	docs, err := r.store.List(ctx, docstore.Users)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	for _, doc := range docs {
		var user model.User
		if err := json.Unmarshal(doc.Data, &user); err != nil {
			return nil, fmt.Errorf("decoding user %s: %w", doc.ID, err)
		}
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.store.Set(ctx, docstore.Users, user.ID, user, false); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// UpdateFields merge-writes a partial membership update.
func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, docstore.Users, id, fields); err != nil {
		return fmt.Errorf("updating user fields: %w", err)
	}
	return nil
}
