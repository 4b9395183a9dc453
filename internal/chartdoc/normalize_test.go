// internal/chartdoc/normalize_test.go
package chartdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/bitloft/orgkit/internal/chartdoc"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNodes(t *testing.T) {
	t.Run("fills missing ids and payloads", func(t *testing.T) {
		nodes, _ := chartdoc.Normalize([]model.Node{
			{Kind: model.NodePersonnel},
			{ID: "note-1", Kind: model.NodeAnnotation},
		}, nil)

		require.Len(t, nodes, 2)
		assert.NotEmpty(t, nodes[0].ID)
		require.NotNil(t, nodes[0].Personnel)
		assert.Equal(t, "note-1", nodes[1].ID)
		require.NotNil(t, nodes[1].Annotation)
	})

	t.Run("personnel lists come back non-nil with defaults", func(t *testing.T) {
		nodes, _ := chartdoc.Normalize([]model.Node{
			{ID: "p1", Kind: model.NodePersonnel, Personnel: &model.PersonnelData{Name: "Ada"}},
		}, nil)

		p := nodes[0].Personnel
		require.NotNil(t, p)
		assert.Equal(t, "Ada", p.Name)
		assert.NotNil(t, p.Proficiencies.Languages)
		assert.NotNil(t, p.Proficiencies.Frameworks)
		assert.NotNil(t, p.Proficiencies.PrimarySkills)
		assert.NotNil(t, p.TeamConnections)
		assert.NotNil(t, p.Availability.Schedule)
		assert.Equal(t, model.AvailabilityAvailable, p.Availability.Status)
		assert.Equal(t, model.InvitePending, p.InviteStatus)
	})

	t.Run("mismatched payload is dropped", func(t *testing.T) {
		nodes, _ := chartdoc.Normalize([]model.Node{
			{ID: "n1", Kind: model.NodeAnnotation, Personnel: &model.PersonnelData{}},
		}, nil)

		assert.Nil(t, nodes[0].Personnel)
		assert.NotNil(t, nodes[0].Annotation)
	})

	t.Run("unknown kind is coerced to personnel", func(t *testing.T) {
		nodes, _ := chartdoc.Normalize([]model.Node{{ID: "n1", Kind: "mystery"}}, nil)

		assert.Equal(t, model.NodePersonnel, nodes[0].Kind)
		assert.NotNil(t, nodes[0].Personnel)
	})
}

func TestNormalizeEdges(t *testing.T) {
	nodes := []model.Node{
		{ID: "a", Kind: model.NodePersonnel},
		{ID: "b", Kind: model.NodePersonnel},
	}

	t.Run("prunes self-loops and dangling edges", func(t *testing.T) {
		_, edges := chartdoc.Normalize(nodes, []model.Edge{
			{ID: "keep", Source: "a", Target: "b"},
			{ID: "loop", Source: "a", Target: "a"},
			{ID: "dangling", Source: "a", Target: "gone"},
		})

		require.Len(t, edges, 1)
		assert.Equal(t, "keep", edges[0].ID)
	})

	t.Run("applies kind defaults", func(t *testing.T) {
		_, edges := chartdoc.Normalize(nodes, []model.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "a", Kind: model.EdgeHierarchy},
		})

		require.Len(t, edges, 2)

		team := edges[0]
		assert.NotEmpty(t, team.ID)
		assert.Equal(t, model.EdgeTeam, team.Kind)
		assert.Equal(t, model.RelationshipCollaborator, team.Relationship)
		assert.Equal(t, "#3b82f6", team.Style.Stroke)

		hier := edges[1]
		assert.Equal(t, model.RelationshipDirectReport, hier.Relationship)
		assert.Equal(t, "#10b981", hier.Style.Stroke)
		assert.Equal(t, float64(2), hier.Style.StrokeWidth)
	})

	t.Run("explicit style and relationship are preserved", func(t *testing.T) {
		_, edges := chartdoc.Normalize(nodes, []model.Edge{{
			Source:       "a",
			Target:       "b",
			Kind:         model.EdgeHierarchy,
			Relationship: model.RelationshipCollaborator,
			Style:        model.EdgeStyle{Stroke: "#000000", StrokeWidth: 4},
		}})

		assert.Equal(t, model.RelationshipCollaborator, edges[0].Relationship)
		assert.Equal(t, "#000000", edges[0].Style.Stroke)
	})
}

func TestNormalizeRoundTrip(t *testing.T) {
	nodes, edges := chartdoc.Normalize([]model.Node{
		{ID: "a", Kind: model.NodePersonnel, Personnel: &model.PersonnelData{Email: "a@example.com"}},
		{ID: "b", Kind: model.NodeAnnotation, Annotation: &model.AnnotationData{Text: "note"}},
	}, []model.Edge{{Source: "a", Target: "b", Kind: model.EdgeTeam}})

	again, edgesAgain := chartdoc.Normalize(nodes, edges)

	// Normalization is idempotent once applied.
	assert.Equal(t, nodes, again)
	assert.Equal(t, edges, edgesAgain)
}

func TestDecode(t *testing.T) {
	t.Run("missing lists decode as empty", func(t *testing.T) {
		c, err := chartdoc.Decode(json.RawMessage(`{"name":"Acme"}`))

		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Name)
		assert.NotNil(t, c.Nodes)
		assert.NotNil(t, c.Edges)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := chartdoc.Decode(json.RawMessage(`not json`))
		assert.Error(t, err)
	})
}
