// internal/chartdoc/normalize.go

// Package chartdoc converts the in-memory graph to and from the document
// shape the store accepts, defensively normalizing every field. The store
// rejects nothing, but downstream readers assume lists are present, edges
// have ids and styles, and no edge references a deleted node.
package chartdoc

import (
	"encoding/json"
	"fmt"

	"github.com/bitloft/orgkit/internal/model"
	"github.com/google/uuid"
)

// Edge styles applied when a connection has none.
var (
	teamStyle      = model.EdgeStyle{Stroke: "#3b82f6", StrokeWidth: 2}
	hierarchyStyle = model.EdgeStyle{Stroke: "#10b981", StrokeWidth: 2}
)

// Normalize returns persistence-ready copies of the node and edge lists:
// every list field is non-nil, missing positions default to the origin,
// edges get generated ids, kind-appropriate styles and relationship types,
// and self-loops or edges whose endpoints no longer exist are pruned.
func Normalize(nodes []model.Node, edges []model.Edge) ([]model.Node, []model.Edge) {
	outNodes := make([]model.Node, 0, len(nodes))
	known := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		known[n.ID] = true
		outNodes = append(outNodes, normalizeNode(n))
	}

	outEdges := make([]model.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		if !known[e.Source] || !known[e.Target] {
			continue
		}
		outEdges = append(outEdges, normalizeEdge(e))
	}

	return outNodes, outEdges
}

func normalizeNode(n model.Node) model.Node {
	switch n.Kind {
	case model.NodeAnnotation:
		if n.Annotation == nil {
			data := model.NewAnnotationData()
			n.Annotation = &data
		}
		n.Personnel = nil
	default:
		n.Kind = model.NodePersonnel
		if n.Personnel == nil {
			data := model.NewPersonnelData()
			n.Personnel = &data
		} else {
			p := *n.Personnel
			p.Proficiencies.Languages = orEmpty(p.Proficiencies.Languages)
			p.Proficiencies.Frameworks = orEmpty(p.Proficiencies.Frameworks)
			p.Proficiencies.PrimarySkills = orEmpty(p.Proficiencies.PrimarySkills)
			p.TeamConnections = orEmpty(p.TeamConnections)
			if p.Availability.Status == "" {
				p.Availability.Status = model.AvailabilityAvailable
			}
			if p.Availability.Schedule == nil {
				p.Availability.Schedule = map[string]model.DaySchedule{}
			}
			if p.InviteStatus == "" {
				p.InviteStatus = model.InvitePending
			}
			n.Personnel = &p
		}
		n.Annotation = nil
	}
	return n
}

func normalizeEdge(e model.Edge) model.Edge {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Kind == "" {
		e.Kind = model.EdgeTeam
	}
	if e.Relationship == "" {
		switch e.Kind {
		case model.EdgeHierarchy:
			e.Relationship = model.RelationshipDirectReport
		default:
			e.Relationship = model.RelationshipCollaborator
		}
	}
	if e.Style == (model.EdgeStyle{}) {
		switch e.Kind {
		case model.EdgeHierarchy:
			e.Style = hierarchyStyle
		default:
			e.Style = teamStyle
		}
	}
	return e
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// Decode parses a stored chart document.
func Decode(raw json.RawMessage) (*model.Chart, error) {
	var c model.Chart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decoding chart document: %w", err)
	}
	if c.Nodes == nil {
		c.Nodes = []model.Node{}
	}
	if c.Edges == nil {
		c.Edges = []model.Edge{}
	}
	return &c, nil
}
