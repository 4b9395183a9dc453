// internal/chart/graph.go

// Package chart holds the in-memory organization chart being edited: the
// node/edge graph and the editor session that drives it. Nothing in this
// package performs I/O.
package chart

import (
	"github.com/bitloft/orgkit/internal/model"
	"github.com/google/uuid"
)

// Graph is the canonical in-memory node/edge set for one editing session.
// All mutations are synchronous and local.
type Graph struct {
	nodes []model.Node
	edges []model.Edge
}

func NewGraph() *Graph {
	return &Graph{}
}

// FromChart builds a graph from a loaded chart document.
func FromChart(c *model.Chart) *Graph {
	g := &Graph{
		nodes: make([]model.Node, len(c.Nodes)),
		edges: make([]model.Edge, len(c.Edges)),
	}
	copy(g.nodes, c.Nodes)
	copy(g.edges, c.Edges)
	return g
}

// Nodes returns a copy of the node list.
func (g *Graph) Nodes() []model.Node {
	out := make([]model.Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []model.Edge {
	out := make([]model.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (model.Node, bool) {
	for _, n := range g.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Node{}, false
}

// AddNode constructs a node of the given kind at the given canvas position
// with a fresh id and kind-appropriate default payload.
func (g *Graph) AddNode(kind model.NodeKind, pos model.Position) model.Node {
	node := model.Node{
		ID:       uuid.NewString(),
		Kind:     kind,
		Position: pos,
	}

	switch kind {
	case model.NodeAnnotation:
		data := model.NewAnnotationData()
		node.Annotation = &data
	default:
		data := model.NewPersonnelData()
		node.Kind = model.NodePersonnel
		node.Personnel = &data
	}

	g.nodes = append(g.nodes, node)
	return node
}

// AddEdge connects two existing nodes. Self-loops and edges to unknown nodes
// are rejected.
func (g *Graph) AddEdge(source, target string, kind model.EdgeKind) (model.Edge, bool) {
	if source == target {
		return model.Edge{}, false
	}
	if _, ok := g.Node(source); !ok {
		return model.Edge{}, false
	}
	if _, ok := g.Node(target); !ok {
		return model.Edge{}, false
	}

	edge := model.Edge{
		ID:     uuid.NewString(),
		Source: source,
		Target: target,
		Kind:   kind,
	}
	g.edges = append(g.edges, edge)
	return edge, true
}

// MoveNode updates a node's canvas position. No-op for an unknown id.
func (g *Graph) MoveNode(id string, pos model.Position) {
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			g.nodes[i].Position = pos
			return
		}
	}
}

// SetPersonnel replaces the payload of a personnel node. No-op if the id is
// unknown or the node is not a personnel node.
func (g *Graph) SetPersonnel(id string, data model.PersonnelData) bool {
	for i := range g.nodes {
		if g.nodes[i].ID == id && g.nodes[i].Kind == model.NodePersonnel {
			clone := clonePersonnel(data)
			g.nodes[i].Personnel = &clone
			return true
		}
	}
	return false
}

// SetAnnotation replaces the payload of an annotation node.
func (g *Graph) SetAnnotation(id string, data model.AnnotationData) bool {
	for i := range g.nodes {
		if g.nodes[i].ID == id && g.nodes[i].Kind == model.NodeAnnotation {
			clone := cloneAnnotation(data)
			g.nodes[i].Annotation = &clone
			return true
		}
	}
	return false
}

// RemoveNode deletes a node by id. Edges referencing the node are left in
// place; the persistence layer prunes dangling edges before save.
func (g *Graph) RemoveNode(id string) {
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}

// RemoveEdge deletes an edge by id.
func (g *Graph) RemoveEdge(id string) {
	for i := range g.edges {
		if g.edges[i].ID == id {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}

func clonePersonnel(p model.PersonnelData) model.PersonnelData {
	out := p
	out.Proficiencies.Languages = append([]string{}, p.Proficiencies.Languages...)
	out.Proficiencies.Frameworks = append([]string{}, p.Proficiencies.Frameworks...)
	out.Proficiencies.PrimarySkills = append([]string{}, p.Proficiencies.PrimarySkills...)
	out.TeamConnections = append([]string{}, p.TeamConnections...)
	if p.ReportsTo != nil {
		v := *p.ReportsTo
		out.ReportsTo = &v
	}
	out.Availability.Schedule = make(map[string]model.DaySchedule, len(p.Availability.Schedule))
	for day, window := range p.Availability.Schedule {
		out.Availability.Schedule[day] = window
	}
	return out
}

func cloneAnnotation(a model.AnnotationData) model.AnnotationData {
	out := a
	if a.Color != nil {
		v := *a.Color
		out.Color = &v
	}
	return out
}
