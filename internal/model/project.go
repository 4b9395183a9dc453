// internal/model/project.go
package model

import "time"

// Project is the requirements-intake document, keyed by organization ID in
// the projects collection.
type Project struct {
	OrganizationID  string    `json:"organization_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Goals           []string  `json:"goals"`
	Timeline        string    `json:"timeline"`
	TechPreferences []string  `json:"tech_preferences"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Plan *ProjectPlan `json:"plan,omitempty"`
}

// ProjectPlan is the AI-generated summary and workflow for a project.
type ProjectPlan struct {
	Summary     string          `json:"summary"`
	Phases      []WorkflowPhase `json:"phases"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type WorkflowPhase struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	DurationWeeks int      `json:"duration_weeks"`
	Tasks         []string `json:"tasks"`
}
