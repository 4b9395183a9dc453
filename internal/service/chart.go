// internal/service/chart.go
package service

import (
	"context"
	"fmt"

	"github.com/bitloft/orgkit/internal/chartdoc"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/bitloft/orgkit/internal/repository"
	"github.com/go-playground/validator/v10"
)

// ChartService orchestrates the save flow: normalize the graph, persist the
// document, fan out invites, then flip the acting user's membership record.
// The steps are sequential; invite dispatch is internally concurrent.
type ChartService struct {
	charts   repository.ChartRepositoryIface
	invites  *InviteService
	users    *UserService
	validate *validator.Validate
}

func NewChartService(charts repository.ChartRepositoryIface, invites *InviteService, users *UserService) *ChartService {
	return &ChartService{
		charts:   charts,
		invites:  invites,
		users:    users,
		validate: validator.New(),
	}
}

type SaveChartInput struct {
	OrganizationID   string `validate:"required"`
	OrganizationCode string
	OrganizationName string `validate:"required"`
	UserID           string `validate:"required"`
	UserEmail        string `validate:"required,email"`
	Nodes            []model.Node
	Edges            []model.Edge
}

type SaveChartOutput struct {
	Chart   *model.Chart    `json:"chart"`
	Invites []InviteOutcome `json:"invites"`
}

// SaveChart runs the whole save flow. A failed chart write or membership
// update fails the flow; individual invite failures do not, they come back
// in the outcome list for the caller to surface.
//
// The membership update runs after the chart write, so a failure there
// leaves a durably saved chart behind a failed flow. Callers retry the save;
// both steps are idempotent apart from the version counter.
func (s *ChartService) SaveChart(ctx context.Context, input SaveChartInput) (*SaveChartOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	nodes, edges := chartdoc.Normalize(input.Nodes, input.Edges)
	chart := &model.Chart{
		Name:      input.OrganizationName,
		Nodes:     nodes,
		Edges:     edges,
		CreatedBy: input.UserID,
	}

	saved, err := s.charts.Save(ctx, input.OrganizationID, chart, input.UserID)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.invites.InviteAll(ctx, InviteOrg{
		ID:   input.OrganizationID,
		Code: input.OrganizationCode,
		Name: input.OrganizationName,
	}, input.UserID, input.UserEmail, saved.Nodes)
	if err != nil {
		return nil, err
	}

	if err := s.users.MarkOrganizationSetupComplete(ctx, input.UserID, input.OrganizationID, input.OrganizationCode); err != nil {
		return nil, fmt.Errorf("completing organization setup: %w", err)
	}

	return &SaveChartOutput{Chart: saved, Invites: outcomes}, nil
}

// LoadChart returns the organization's chart, or nil when none was saved.
func (s *ChartService) LoadChart(ctx context.Context, orgID string) (*model.Chart, error) {
	if orgID == "" {
		return nil, fmt.Errorf("%w: organization id is required", domain.ErrInvalidInput)
	}
	return s.charts.Load(ctx, orgID)
}
