// internal/model/chart.go
package model

import "time"

type NodeKind string

const (
	NodePersonnel  NodeKind = "personnel"
	NodeAnnotation NodeKind = "annotation"
)

type EdgeKind string

const (
	EdgeTeam      EdgeKind = "team"
	EdgeHierarchy EdgeKind = "hierarchy"
)

type RelationshipType string

const (
	RelationshipCollaborator RelationshipType = "collaborator"
	RelationshipDirectReport RelationshipType = "direct-report"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteExpired  InviteStatus = "expired"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// Position is a node's canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a vertex in the organization chart. Exactly one of the payload
// pointers is set, matching Kind.
type Node struct {
	ID         string          `json:"id"`
	Kind       NodeKind        `json:"kind"`
	Position   Position        `json:"position"`
	Personnel  *PersonnelData  `json:"personnel,omitempty"`
	Annotation *AnnotationData `json:"annotation,omitempty"`
}

// Proficiencies groups a person's declared skills.
type Proficiencies struct {
	Languages     []string `json:"languages"`
	Frameworks    []string `json:"frameworks"`
	PrimarySkills []string `json:"primary_skills"`
}

// DaySchedule is one day's working window.
type DaySchedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability holds a person's status and weekly schedule.
type Availability struct {
	Status   AvailabilityStatus     `json:"status"`
	Schedule map[string]DaySchedule `json:"schedule"`
	Notes    string                 `json:"notes"`
}

type PersonnelData struct {
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	PositionTitle   string        `json:"position_title"`
	Timezone        string        `json:"timezone"`
	Proficiencies   Proficiencies `json:"proficiencies"`
	TeamConnections []string      `json:"team_connections"`
	ReportsTo       *string       `json:"reports_to"`
	IsObserver      bool          `json:"is_observer"`
	IsAdmin         bool          `json:"is_admin"`
	Availability    Availability  `json:"availability"`
	InviteStatus    InviteStatus  `json:"invite_status"`
}

type AnnotationData struct {
	Text  string  `json:"text"`
	Color *string `json:"color"`
}

// EdgeStyle is the rendering style persisted with an edge.
type EdgeStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Edge is a directed connection between two nodes.
type Edge struct {
	ID           string           `json:"id"`
	Source       string           `json:"source"`
	Target       string           `json:"target"`
	SourceHandle *string          `json:"source_handle"`
	TargetHandle *string          `json:"target_handle"`
	Kind         EdgeKind         `json:"kind"`
	Relationship RelationshipType `json:"relationship"`
	Animated     bool             `json:"animated"`
	Style        EdgeStyle        `json:"style"`
}

// ChartMetadata tracks write provenance. Version increments on every save but
// is not checked before writing; concurrent editors are last-writer-wins.
type ChartMetadata struct {
	Version        int64  `json:"version"`
	LastModifiedBy string `json:"last_modified_by"`
}

// Chart is the persisted aggregate for one organization, keyed by
// organization ID in the charts collection. Never hard-deleted.
type Chart struct {
	Name      string        `json:"name"`
	Nodes     []Node        `json:"nodes"`
	Edges     []Edge        `json:"edges"`
	CreatedBy string        `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Metadata  ChartMetadata `json:"metadata"`
}
