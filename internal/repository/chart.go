// internal/repository/chart.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitloft/orgkit/internal/chartdoc"
	"github.com/bitloft/orgkit/internal/docstore"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/model"
)

type ChartRepositoryIface interface {
	Save(ctx context.Context, orgID string, chart *model.Chart, userID string) (*model.Chart, error)
	Load(ctx context.Context, orgID string) (*model.Chart, error)
}

// ChartRepository persists chart documents keyed by organization ID.
type ChartRepository struct {
	store docstore.Store
	now   func() time.Time
}

func NewChartRepository(store docstore.Store) *ChartRepository {
	return &ChartRepository{store: store, now: time.Now}
}

// Save merge-writes the chart. The stored version becomes the previously
// stored version plus one (zero when no document exists); no version check
// guards the write, so concurrent editors are last-writer-wins.
func (r *ChartRepository) Save(ctx context.Context, orgID string, chart *model.Chart, userID string) (*model.Chart, error) {
	if orgID == "" || userID == "" {
		return nil, fmt.Errorf("%w: organization id and user id are required", domain.ErrInvalidInput)
	}

	existing, err := r.Load(ctx, orgID)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	out := *chart
	out.UpdatedAt = now
	if existing != nil {
		out.CreatedAt = existing.CreatedAt
		if out.CreatedBy == "" {
			out.CreatedBy = existing.CreatedBy
		}
		out.Metadata.Version = existing.Metadata.Version + 1
	} else {
		out.CreatedAt = now
		if out.CreatedBy == "" {
			out.CreatedBy = userID
		}
		out.Metadata.Version = 1
	}
	out.Metadata.LastModifiedBy = userID

	if err := r.store.Set(ctx, docstore.Charts, orgID, &out, true); err != nil {
		return nil, fmt.Errorf("saving chart: %w", err)
	}
	return &out, nil
}

// Load returns the stored chart, or nil when the organization has none.
func (r *ChartRepository) Load(ctx context.Context, orgID string) (*model.Chart, error) {
	raw, err := r.store.Get(ctx, docstore.Charts, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading chart: %w", err)
	}
	return chartdoc.Decode(raw)
}
