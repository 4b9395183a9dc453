// internal/chart/graph_test.go
package chart_test

import (
	"testing"

	"github.com/bitloft/orgkit/internal/chart"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddNode(t *testing.T) {
	g := chart.NewGraph()

	t.Run("personnel node gets default payload", func(t *testing.T) {
		node := g.AddNode(model.NodePersonnel, model.Position{X: 10, Y: 20})

		assert.NotEmpty(t, node.ID)
		assert.Equal(t, model.NodePersonnel, node.Kind)
		assert.Equal(t, model.Position{X: 10, Y: 20}, node.Position)
		require.NotNil(t, node.Personnel)
		assert.Nil(t, node.Annotation)
		assert.NotNil(t, node.Personnel.Proficiencies.Languages)
		assert.NotNil(t, node.Personnel.TeamConnections)
		assert.Equal(t, model.AvailabilityAvailable, node.Personnel.Availability.Status)
		assert.Equal(t, model.InvitePending, node.Personnel.InviteStatus)
	})

	t.Run("annotation node gets annotation payload", func(t *testing.T) {
		node := g.AddNode(model.NodeAnnotation, model.Position{})

		assert.Equal(t, model.NodeAnnotation, node.Kind)
		assert.NotNil(t, node.Annotation)
		assert.Nil(t, node.Personnel)
	})

	t.Run("unknown kind defaults to personnel", func(t *testing.T) {
		node := g.AddNode(model.NodeKind("whatever"), model.Position{})

		assert.Equal(t, model.NodePersonnel, node.Kind)
		assert.NotNil(t, node.Personnel)
	})
}

func TestGraphAddEdge(t *testing.T) {
	g := chart.NewGraph()
	a := g.AddNode(model.NodePersonnel, model.Position{})
	b := g.AddNode(model.NodePersonnel, model.Position{X: 100})

	t.Run("connects two existing nodes", func(t *testing.T) {
		edge, ok := g.AddEdge(a.ID, b.ID, model.EdgeTeam)

		require.True(t, ok)
		assert.NotEmpty(t, edge.ID)
		assert.Equal(t, a.ID, edge.Source)
		assert.Equal(t, b.ID, edge.Target)
		assert.Equal(t, model.EdgeTeam, edge.Kind)
	})

	t.Run("rejects self-loop", func(t *testing.T) {
		_, ok := g.AddEdge(a.ID, a.ID, model.EdgeTeam)
		assert.False(t, ok)
	})

	t.Run("rejects unknown endpoints", func(t *testing.T) {
		_, ok := g.AddEdge(a.ID, "missing", model.EdgeHierarchy)
		assert.False(t, ok)

		_, ok = g.AddEdge("missing", b.ID, model.EdgeHierarchy)
		assert.False(t, ok)
	})
}

func TestGraphRemoveNodeLeavesEdges(t *testing.T) {
	g := chart.NewGraph()
	a := g.AddNode(model.NodePersonnel, model.Position{})
	b := g.AddNode(model.NodePersonnel, model.Position{})
	_, ok := g.AddEdge(a.ID, b.ID, model.EdgeTeam)
	require.True(t, ok)

	g.RemoveNode(b.ID)

	// Dangling edges stay in the session; normalization prunes them at save.
	assert.Len(t, g.Nodes(), 1)
	assert.Len(t, g.Edges(), 1)
}

func TestGraphSetPersonnelClones(t *testing.T) {
	g := chart.NewGraph()
	node := g.AddNode(model.NodePersonnel, model.Position{})

	data := model.NewPersonnelData()
	data.Name = "Ada"
	data.Proficiencies.Languages = []string{"go"}
	require.True(t, g.SetPersonnel(node.ID, data))

	// Mutating the caller's copy must not leak into the graph.
	data.Proficiencies.Languages[0] = "cobol"

	stored, ok := g.Node(node.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, stored.Personnel.Proficiencies.Languages)
}

func TestGraphSetPersonnelKindMismatch(t *testing.T) {
	g := chart.NewGraph()
	note := g.AddNode(model.NodeAnnotation, model.Position{})

	assert.False(t, g.SetPersonnel(note.ID, model.NewPersonnelData()))
	assert.True(t, g.SetAnnotation(note.ID, model.AnnotationData{Text: "hi"}))
}

func TestGraphFromChart(t *testing.T) {
	c := &model.Chart{
		Nodes: []model.Node{{ID: "n1", Kind: model.NodePersonnel}},
		Edges: []model.Edge{{ID: "e1", Source: "n1", Target: "n2"}},
	}

	g := chart.FromChart(c)

	assert.Len(t, g.Nodes(), 1)
	assert.Len(t, g.Edges(), 1)

	g.RemoveEdge("e1")
	assert.Len(t, g.Edges(), 0)
	assert.Len(t, c.Edges, 1)
}
