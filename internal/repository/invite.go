// internal/repository/invite.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitloft/orgkit/internal/docstore"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/model"
)

type InviteRepositoryIface interface {
	Create(ctx context.Context, invite *model.Invite) error
	FindByCode(ctx context.Context, code string) (*model.Invite, error)
	Update(ctx context.Context, invite *model.Invite) error
	ListByStatus(ctx context.Context, status model.InviteStatus) ([]*model.Invite, error)
}

// InviteRepository persists invite records keyed by invite code.
type InviteRepository struct {
	store docstore.Store
}

func NewInviteRepository(store docstore.Store) *InviteRepository {
	return &InviteRepository{store: store}
}

func (r *InviteRepository) Create(ctx context.Context, invite *model.Invite) error {
	if invite.Code == "" {
		return fmt.Errorf("%w: invite code is required", domain.ErrInvalidInput)
	}
	if err := r.store.Set(ctx, docstore.Invites, invite.Code, invite, false); err != nil {
		return fmt.Errorf("creating invite: %w", err)
	}
	return nil
}

func (r *InviteRepository) FindByCode(ctx context.Context, code string) (*model.Invite, error) {
	raw, err := r.store.Get(ctx, docstore.Invites, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, fmt.Errorf("finding invite: %w", err)
	}

	var invite model.Invite
	if err := json.Unmarshal(raw, &invite); err != nil {
		return nil, fmt.Errorf("decoding invite: %w", err)
	}
	return &invite, nil
}

func (r *InviteRepository) Update(ctx context.Context, invite *model.Invite) error {
	if err := r.store.Set(ctx, docstore.Invites, invite.Code, invite, false); err != nil {
		return fmt.Errorf("updating invite: %w", err)
	}
	return nil
}

// ListByStatus scans the invites collection. The collection is small and
// short-lived; a scan is fine for the admin tooling that uses this.
func (r *InviteRepository) ListByStatus(ctx context.Context, status model.InviteStatus) ([]*model.Invite, error) {
	docs, err := r.store.List(ctx, docstore.Invites)
	if err != nil {
		return nil, fmt.Errorf("listing invites: %w", err)
	}

	var invites []*model.Invite
	for _, doc := range docs {
		var invite model.Invite
		if err := json.Unmarshal(doc.Data, &invite); err != nil {
			return nil, fmt.Errorf("decoding invite %s: %w", doc.ID, err)
		}
		if status == "" || invite.Status == status {
			invites = append(invites, &invite)
		}
	}
	return invites, nil
}
