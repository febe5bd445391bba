// Package graph holds the in-memory debug graph: an unweighted, append-only
// directed multigraph of entities. Node identifiers are dense integers
// assigned by graph size at creation time; edges carry monotonically
// assigned integer ids. Nothing is ever removed.
package graph

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sapphire-arches/mccraft/domain/events"
)

// Entity is a graph node's payload. Immutable after creation.
type Entity struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
}

// Node pairs a node id with its entity payload.
type Node struct {
	ID int `json:"id"`
	Entity
}

// Edge is a directed connection between two nodes. Parallel edges between
// the same pair are allowed and distinguished by id.
type Edge struct {
	ID     int `json:"id"`
	Source int `json:"source"`
	Target int `json:"target"`
}

// Graph is the aggregate root for the debug graph.
// It ensures the dense-id and sequential-edge-id invariants.
type Graph struct {
	nodes     []Entity
	adjacency map[int][]Edge
	edgeCount int
	events    []events.DomainEvent
}

// Snapshot is an immutable copy of the graph's contents.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[int][]Edge),
		events:    []events.DomainEvent{},
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// NodeDrawBounds returns the inclusive bounds for the next node draw.
// The drawn value only feeds the new node's payload; the id is always the
// pre-insertion size.
func (g *Graph) NodeDrawBounds() (lo, hi int) {
	return len(g.nodes), len(g.nodes) + 1
}

// LinkDrawBounds returns the inclusive bounds for the next link draw as
// (source range, raw target range). The raw target range is one narrower
// than the node range; Connect folds the draw around the source to rule
// out self-loops without skewing the distribution.
func (g *Graph) LinkDrawBounds() (sourceHi, rawHi int) {
	return len(g.nodes) - 1, len(g.nodes) - 2
}

// CanLink reports whether the graph has enough nodes to draw a link.
func (g *Graph) CanLink() bool {
	return len(g.nodes) >= 2
}

// AddNode appends a node whose id is the current graph size. The drawn
// value becomes the entity's rank and, in decimal form, its name.
func (g *Graph) AddNode(drawn int) Node {
	node := Node{
		ID: len(g.nodes),
		Entity: Entity{
			Rank: drawn,
			Name: strconv.Itoa(drawn),
		},
	}
	g.nodes = append(g.nodes, node.Entity)

	g.addEvent(events.NewNodeAdded(node.ID, node.Rank, node.Name))
	return node
}

// Connect appends an edge from source to the target derived from the raw
// draw: raw values at or above the source fold forward by one, modulo the
// node count, so the target is never the source itself. The edge id is the
// count of existing edges.
//
// Connect is a silent no-op when the source node is absent.
func (g *Graph) Connect(source, raw int) (Edge, bool) {
	size := len(g.nodes)
	if source < 0 || source >= size {
		return Edge{}, false
	}

	target := raw
	if raw >= source {
		target = (raw + 1) % size
	}

	edge := Edge{
		ID:     g.edgeCount,
		Source: source,
		Target: target,
	}
	g.adjacency[source] = append(g.adjacency[source], edge)
	g.edgeCount++

	g.addEvent(events.NewEdgeAdded(edge.ID, edge.Source, edge.Target))
	return edge, true
}

// Node retrieves a node by id.
func (g *Graph) Node(id int) (Node, bool) {
	if id < 0 || id >= len(g.nodes) {
		return Node{}, false
	}
	return Node{ID: id, Entity: g.nodes[id]}, true
}

// Nodes returns all nodes in id order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.nodes))
	for i, e := range g.nodes {
		nodes[i] = Node{ID: i, Entity: e}
	}
	return nodes
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for _, out := range g.adjacency {
		edges = append(edges, out...)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges
}

// EdgesFrom returns the outgoing edges of a node in creation order.
func (g *Graph) EdgesFrom(source int) []Edge {
	out := g.adjacency[source]
	edges := make([]Edge, len(out))
	copy(edges, out)
	return edges
}

// TakeSnapshot returns an immutable copy of the graph's contents.
func (g *Graph) TakeSnapshot() Snapshot {
	return Snapshot{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	}
}

// Validate ensures graph invariants
func (g *Graph) Validate() error {
	size := len(g.nodes)
	seen := make(map[int]bool, g.edgeCount)

	for source, out := range g.adjacency {
		if source < 0 || source >= size {
			return fmt.Errorf("adjacency references non-existent source node %d", source)
		}
		for _, edge := range out {
			if edge.Source != source {
				return fmt.Errorf("edge %d filed under wrong source %d", edge.ID, source)
			}
			if edge.Target < 0 || edge.Target >= size {
				return fmt.Errorf("edge %d targets non-existent node %d", edge.ID, edge.Target)
			}
			if edge.Target == edge.Source {
				return fmt.Errorf("edge %d is a self-loop on node %d", edge.ID, edge.Source)
			}
			if seen[edge.ID] {
				return fmt.Errorf("edge id %d assigned twice", edge.ID)
			}
			seen[edge.ID] = true
		}
	}

	if len(seen) != g.edgeCount {
		return fmt.Errorf("edge count mismatch: counted %d, recorded %d", len(seen), g.edgeCount)
	}
	for id := 0; id < g.edgeCount; id++ {
		if !seen[id] {
			return fmt.Errorf("edge id sequence has a gap at %d", id)
		}
	}

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Graph) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(g.events))
	copy(out, g.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events
func (g *Graph) MarkEventsAsCommitted() {
	g.events = g.events[:0]
}

func (g *Graph) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}
