// internal/service/plan.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/bitloft/orgkit/internal/repository"
	"github.com/go-playground/validator/v10"
	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the plan service uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// PlanService persists project requirements and generates a project
// summary/workflow from them through the LLM collaborator.
type PlanService struct {
	projects repository.ProjectRepositoryIface
	charts   repository.ChartRepositoryIface
	ai       ChatCompleter
	model    string
	validate *validator.Validate
	now      func() time.Time
}

func NewPlanService(projects repository.ProjectRepositoryIface, charts repository.ChartRepositoryIface, ai ChatCompleter, aiModel string) *PlanService {
	if aiModel == "" {
		aiModel = openai.GPT4o
	}
	return &PlanService{
		projects: projects,
		charts:   charts,
		ai:       ai,
		model:    aiModel,
		validate: validator.New(),
		now:      time.Now,
	}
}

type RequirementsInput struct {
	OrganizationID  string   `json:"organization_id" validate:"required"`
	UserID          string   `json:"-" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Goals           []string `json:"goals"`
	Timeline        string   `json:"timeline"`
	TechPreferences []string `json:"tech_preferences"`
}

// SubmitRequirements stores the intake form for an organization.
func (s *PlanService) SubmitRequirements(ctx context.Context, input RequirementsInput) (*model.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	now := s.now().UTC()
	project := &model.Project{
		OrganizationID:  input.OrganizationID,
		Name:            input.Name,
		Description:     input.Description,
		Goals:           input.Goals,
		Timeline:        input.Timeline,
		TechPreferences: input.TechPreferences,
		CreatedBy:       input.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

const planSystemPrompt = `You are a software delivery planner. Given project requirements and a team roster, respond with JSON only, no prose and no markdown fences, in this shape:
{"summary": "...", "phases": [{"name": "...", "description": "...", "duration_weeks": 1, "tasks": ["..."]}]}`

// GeneratePlan builds a prompt from the stored requirements and the saved
// team chart, asks the completion service, and stores the parsed plan. A
// response that does not parse into the expected structure fails with
// domain.ErrGeneration.
func (s *PlanService) GeneratePlan(ctx context.Context, orgID string) (*model.ProjectPlan, error) {
	if orgID == "" {
		return nil, fmt.Errorf("%w: organization id is required", domain.ErrInvalidInput)
	}

	project, err := s.projects.Load(ctx, orgID)
	if err != nil {
		return nil, err
	}

	chart, err := s.charts.Load(ctx, orgID)
	if err != nil {
		return nil, err
	}

	resp, err := s.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPlanPrompt(project, chart)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion response", domain.ErrGeneration)
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)

	var plan model.ProjectPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	if plan.Summary == "" {
		return nil, fmt.Errorf("%w: missing summary", domain.ErrGeneration)
	}
	plan.GeneratedAt = s.now().UTC()

	if err := s.projects.SavePlan(ctx, orgID, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func buildPlanPrompt(project *model.Project, chart *model.Chart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\nDescription: %s\n", project.Name, project.Description)
	if project.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", project.Timeline)
	}
	if len(project.Goals) > 0 {
		fmt.Fprintf(&b, "Goals: %s\n", strings.Join(project.Goals, "; "))
	}
	if len(project.TechPreferences) > 0 {
		fmt.Fprintf(&b, "Tech preferences: %s\n", strings.Join(project.TechPreferences, ", "))
	}

	if chart != nil {
		b.WriteString("Team:\n")
		for _, n := range chart.Nodes {
			if n.Kind != model.NodePersonnel || n.Personnel == nil {
				continue
			}
			p := n.Personnel
			skills := strings.Join(p.Proficiencies.PrimarySkills, ", ")
			fmt.Fprintf(&b, "- %s (%s) skills: %s, timezone: %s\n", p.Name, p.PositionTitle, skills, p.Timezone)
		}
	}
	return b.String()
}

// stripCodeFences removes a ```json ... ``` wrapper some models emit despite
// instructions.
func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
