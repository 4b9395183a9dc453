// internal/repository/project.go
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

type ProjectRepositoryIface interface {
	Save(ctx context.Context, project *model.Project) error
	Load(ctx context.Context, orgID string) (*model.Project, error)
	SavePlan(ctx context.Context, orgID string, plan *model.ProjectPlan) error
}

// ProjectRepository persists requirements-intake documents keyed by
// organization ID.
type ProjectRepository struct {
	store docstore.Store
}

func NewProjectRepository(store docstore.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) Save(ctx context.Context, project *model.Project) error {
	if project.OrganizationID == "" {
		return fmt.Errorf("%w: organization id is required", domain.ErrInvalidInput)
	}
	if err := r.store.Set(ctx, docstore.Projects, project.OrganizationID, project, true); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Load(ctx context.Context, orgID string) (*model.Project, error) {
	raw, err := r.store.Get(ctx, docstore.Projects, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	var project model.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}
	return &project, nil
}

// SavePlan merge-writes only the generated plan onto the project document.
func (r *ProjectRepository) SavePlan(ctx context.Context, orgID string, plan *model.ProjectPlan) error {
	if err := r.store.Update(ctx, docstore.Projects, orgID, map[string]any{"plan": plan}); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}
