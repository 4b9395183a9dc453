// internal/chart/editor.go
package chart

import "github.com/bitloft/orgkit/internal/model"

// ConnectionState is the editor's connection-drawing state.
type ConnectionState string

const (
	StateIdle                ConnectionState = "idle"
	StateConnectingTeam      ConnectionState = "connecting_team"
	StateConnectingHierarchy ConnectionState = "connecting_hierarchy"
)

// Viewport maps screen coordinates to canvas coordinates.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// ToCanvas translates a screen position into canvas space.
func (v Viewport) ToCanvas(screen model.Position) model.Position {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return model.Position{
		X: (screen.X - v.OffsetX) / zoom,
		Y: (screen.Y - v.OffsetY) / zoom,
	}
}

// Editor drives a Graph from user gestures and owns the transient
// connection-drawing state machine:
//
//	Idle -> ConnectingTeam | ConnectingHierarchy   (palette arrow dropped)
//	Connecting* -> Idle                            (connection made or cancelled)
//
// A canvas click while connecting leaves the state unchanged; only a
// completed connection, a new palette selection, or CancelConnection
// returns the editor to Idle.
type Editor struct {
	graph *Graph
	state ConnectionState
}

func NewEditor(g *Graph) *Editor {
	return &Editor{graph: g, state: StateIdle}
}

func (e *Editor) Graph() *Graph { return e.graph }

func (e *Editor) State() ConnectionState { return e.state }

// BeginConnection arms the editor with a pending connection kind. Selecting
// a new palette arrow while already connecting replaces the pending kind.
func (e *Editor) BeginConnection(kind model.EdgeKind) {
	switch kind {
	case model.EdgeHierarchy:
		e.state = StateConnectingHierarchy
	default:
		e.state = StateConnectingTeam
	}
}

// CancelConnection aborts a pending connection without drawing an edge.
func (e *Editor) CancelConnection() {
	e.state = StateIdle
}

// Connect completes a node-to-node connect gesture. Without a pending
// connection kind this is a no-op; on success the pending kind is consumed
// and the editor returns to Idle.
func (e *Editor) Connect(source, target string) (model.Edge, bool) {
	var kind model.EdgeKind
	switch e.state {
	case StateConnectingTeam:
		kind = model.EdgeTeam
	case StateConnectingHierarchy:
		kind = model.EdgeHierarchy
	default:
		return model.Edge{}, false
	}

	edge, ok := e.graph.AddEdge(source, target, kind)
	if ok {
		e.state = StateIdle
	}
	return edge, ok
}

// DropNode creates a node from a palette drop at screen coordinates.
func (e *Editor) DropNode(kind model.NodeKind, screen model.Position, view Viewport) model.Node {
	return e.graph.AddNode(kind, view.ToCanvas(screen))
}

// NodeDraft stages edits to one node so they can be committed or discarded
// without touching the graph mid-edit.
type NodeDraft struct {
	nodeID     string
	Personnel  *model.PersonnelData
	Annotation *model.AnnotationData
}

// BeginEdit opens a draft bound to one node. The draft holds deep copies;
// mutating it leaves the graph untouched until CommitEdit.
func (e *Editor) BeginEdit(id string) (*NodeDraft, bool) {
	node, ok := e.graph.Node(id)
	if !ok {
		return nil, false
	}

	draft := &NodeDraft{nodeID: node.ID}
	if node.Personnel != nil {
		clone := clonePersonnel(*node.Personnel)
		draft.Personnel = &clone
	}
	if node.Annotation != nil {
		clone := cloneAnnotation(*node.Annotation)
		draft.Annotation = &clone
	}
	return draft, true
}

// CommitEdit writes a draft back to its node. Discarding an edit is simply
// dropping the draft.
func (e *Editor) CommitEdit(draft *NodeDraft) bool {
	if draft == nil {
		return false
	}
	if draft.Personnel != nil {
		return e.graph.SetPersonnel(draft.nodeID, *draft.Personnel)
	}
	if draft.Annotation != nil {
		return e.graph.SetAnnotation(draft.nodeID, *draft.Annotation)
	}
	return false
}
