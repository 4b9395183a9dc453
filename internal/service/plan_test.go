// internal/service/plan_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bitloft/orgkit/internal/docstore"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/repository"
	"github.com/bitloft/orgkit/internal/service"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter returns a canned completion and records the last request.
type fakeCompleter struct {
	content string
	err     error
	empty   bool
	lastReq openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	if f.empty {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newPlanFixture(ai service.ChatCompleter) (*service.PlanService, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	svc := service.NewPlanService(
		repository.NewProjectRepository(store),
		repository.NewChartRepository(store),
		ai,
		"gpt-4o",
	)
	return svc, store
}

func submitRequirements(t *testing.T, svc *service.PlanService) {
	t.Helper()
	_, err := svc.SubmitRequirements(context.Background(), service.RequirementsInput{
		OrganizationID: "org-1",
		UserID:         "u1",
		Name:           "Orders API",
		Description:    "Rebuild the order intake pipeline",
		Goals:          []string{"cut p99 latency"},
		Timeline:       "8 weeks",
	})
	require.NoError(t, err)
}

const goodPlanJSON = `{"summary":"Three phase delivery","phases":[{"name":"Foundation","description":"Schema and scaffolding","duration_weeks":2,"tasks":["define schema"]}]}`

func TestSubmitRequirements(t *testing.T) {
	svc, _ := newPlanFixture(&fakeCompleter{})

	t.Run("rejects incomplete intake", func(t *testing.T) {
		_, err := svc.SubmitRequirements(context.Background(), service.RequirementsInput{
			OrganizationID: "org-1",
			UserID:         "u1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("stores the intake document", func(t *testing.T) {
		submitRequirements(t, svc)

		project, err := svc.SubmitRequirements(context.Background(), service.RequirementsInput{
			OrganizationID: "org-1",
			UserID:         "u1",
			Name:           "Orders API",
			Description:    "Updated description",
		})
		require.NoError(t, err)
		assert.Equal(t, "Updated description", project.Description)
	})
}

func TestGeneratePlan(t *testing.T) {
	t.Run("parses a clean JSON response", func(t *testing.T) {
		ai := &fakeCompleter{content: goodPlanJSON}
		svc, _ := newPlanFixture(ai)
		submitRequirements(t, svc)

		plan, err := svc.GeneratePlan(context.Background(), "org-1")
		require.NoError(t, err)
		assert.Equal(t, "Three phase delivery", plan.Summary)
		require.Len(t, plan.Phases, 1)
		assert.Equal(t, "Foundation", plan.Phases[0].Name)
		assert.Equal(t, 2, plan.Phases[0].DurationWeeks)
		assert.False(t, plan.GeneratedAt.IsZero())

		assert.Equal(t, "gpt-4o", ai.lastReq.Model)
		require.Len(t, ai.lastReq.Messages, 2)
		assert.Contains(t, ai.lastReq.Messages[1].Content, "Orders API")
	})

	t.Run("tolerates markdown fences", func(t *testing.T) {
		ai := &fakeCompleter{content: "```json\n" + goodPlanJSON + "\n```"}
		svc, _ := newPlanFixture(ai)
		submitRequirements(t, svc)

		plan, err := svc.GeneratePlan(context.Background(), "org-1")
		require.NoError(t, err)
		assert.Equal(t, "Three phase delivery", plan.Summary)
	})

	t.Run("malformed response fails with generation error", func(t *testing.T) {
		ai := &fakeCompleter{content: "Sure! Here's a plan for you:"}
		svc, _ := newPlanFixture(ai)
		submitRequirements(t, svc)

		_, err := svc.GeneratePlan(context.Background(), "org-1")
		assert.ErrorIs(t, err, domain.ErrGeneration)
	})

	t.Run("parsed response without a summary fails", func(t *testing.T) {
		ai := &fakeCompleter{content: `{"phases":[]}`}
		svc, _ := newPlanFixture(ai)
		submitRequirements(t, svc)

		_, err := svc.GeneratePlan(context.Background(), "org-1")
		assert.ErrorIs(t, err, domain.ErrGeneration)
	})

	t.Run("empty choice list fails", func(t *testing.T) {
		ai := &fakeCompleter{empty: true}
		svc, _ := newPlanFixture(ai)
		submitRequirements(t, svc)

		_, err := svc.GeneratePlan(context.Background(), "org-1")
		assert.ErrorIs(t, err, domain.ErrGeneration)
	})

	t.Run("transport errors are not generation errors", func(t *testing.T) {
		ai := &fakeCompleter{err: errors.New("connection reset")}
		svc, _ := newPlanFixture(ai)
		submitRequirements(t, svc)

		_, err := svc.GeneratePlan(context.Background(), "org-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrGeneration)
	})

	t.Run("no requirements submitted", func(t *testing.T) {
		svc, _ := newPlanFixture(&fakeCompleter{content: goodPlanJSON})

		_, err := svc.GeneratePlan(context.Background(), "org-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
