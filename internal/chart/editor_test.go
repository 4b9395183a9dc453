// internal/chart/editor_test.go
package chart_test

import (
	"testing"

	"github.com/bitloft/orgkit/internal/chart"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorConnectionStateMachine(t *testing.T) {
	g := chart.NewGraph()
	a := g.AddNode(model.NodePersonnel, model.Position{})
	b := g.AddNode(model.NodePersonnel, model.Position{})
	e := chart.NewEditor(g)

	t.Run("starts idle and connect is a no-op", func(t *testing.T) {
		assert.Equal(t, chart.StateIdle, e.State())

		_, ok := e.Connect(a.ID, b.ID)
		assert.False(t, ok)
		assert.Empty(t, g.Edges())
	})

	t.Run("begin then connect draws the armed kind and returns to idle", func(t *testing.T) {
		e.BeginConnection(model.EdgeHierarchy)
		assert.Equal(t, chart.StateConnectingHierarchy, e.State())

		edge, ok := e.Connect(a.ID, b.ID)
		require.True(t, ok)
		assert.Equal(t, model.EdgeHierarchy, edge.Kind)
		assert.Equal(t, chart.StateIdle, e.State())
	})

	t.Run("failed connect keeps the editor armed", func(t *testing.T) {
		e.BeginConnection(model.EdgeTeam)

		_, ok := e.Connect(a.ID, a.ID)
		assert.False(t, ok)
		assert.Equal(t, chart.StateConnectingTeam, e.State())
	})

	t.Run("reselecting a palette arrow replaces the pending kind", func(t *testing.T) {
		e.BeginConnection(model.EdgeTeam)
		e.BeginConnection(model.EdgeHierarchy)
		assert.Equal(t, chart.StateConnectingHierarchy, e.State())
	})

	t.Run("cancel returns to idle without drawing", func(t *testing.T) {
		before := len(g.Edges())
		e.CancelConnection()

		assert.Equal(t, chart.StateIdle, e.State())
		assert.Len(t, g.Edges(), before)
	})
}

func TestViewportToCanvas(t *testing.T) {
	view := chart.Viewport{OffsetX: 100, OffsetY: 50, Zoom: 2}

	pos := view.ToCanvas(model.Position{X: 300, Y: 250})
	assert.Equal(t, model.Position{X: 100, Y: 100}, pos)

	// Zero zoom is treated as 1 rather than dividing by zero.
	flat := chart.Viewport{OffsetX: 10}
	assert.Equal(t, model.Position{X: 0, Y: 5}, flat.ToCanvas(model.Position{X: 10, Y: 5}))
}

func TestEditorDropNode(t *testing.T) {
	g := chart.NewGraph()
	e := chart.NewEditor(g)
	view := chart.Viewport{OffsetX: 20, OffsetY: 20, Zoom: 1}

	node := e.DropNode(model.NodeAnnotation, model.Position{X: 120, Y: 70}, view)

	assert.Equal(t, model.Position{X: 100, Y: 50}, node.Position)
	assert.Len(t, g.Nodes(), 1)
}

func TestEditorDraftEdits(t *testing.T) {
	g := chart.NewGraph()
	node := g.AddNode(model.NodePersonnel, model.Position{})
	e := chart.NewEditor(g)

	t.Run("draft mutations stay out of the graph until commit", func(t *testing.T) {
		draft, ok := e.BeginEdit(node.ID)
		require.True(t, ok)
		require.NotNil(t, draft.Personnel)

		draft.Personnel.Name = "Grace"
		draft.Personnel.Email = "grace@example.com"

		current, _ := g.Node(node.ID)
		assert.Empty(t, current.Personnel.Name)

		require.True(t, e.CommitEdit(draft))
		current, _ = g.Node(node.ID)
		assert.Equal(t, "Grace", current.Personnel.Name)
		assert.Equal(t, "grace@example.com", current.Personnel.Email)
	})

	t.Run("discarding a draft leaves the node unchanged", func(t *testing.T) {
		draft, ok := e.BeginEdit(node.ID)
		require.True(t, ok)

		draft.Personnel.Name = "Nobody"
		// Dropped without commit.

		current, _ := g.Node(node.ID)
		assert.Equal(t, "Grace", current.Personnel.Name)
	})

	t.Run("unknown node yields no draft", func(t *testing.T) {
		_, ok := e.BeginEdit("missing")
		assert.False(t, ok)
		assert.False(t, e.CommitEdit(nil))
	})
}
