package graph

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapphire-arches/mccraft/domain/events"
	"github.com/sapphire-arches/mccraft/pkg/random"
)

func TestAddNodeAssignsDenseIDs(t *testing.T) {
	g := New()
	src := random.NewPCG(7, 11)

	// The id must equal the pre-insertion size no matter what was drawn.
	for i := 0; i < 50; i++ {
		lo, hi := g.NodeDrawBounds()
		assert.Equal(t, g.NodeCount(), lo)
		assert.Equal(t, g.NodeCount()+1, hi)

		node := g.AddNode(src.IntBetween(lo, hi))
		assert.Equal(t, i, node.ID)
	}
	assert.Equal(t, 50, g.NodeCount())
	require.NoError(t, g.Validate())
}

func TestAddNodeNameIsDrawnValue(t *testing.T) {
	g := New()

	node := g.AddNode(1)
	assert.Equal(t, 0, node.ID)
	assert.Equal(t, "1", node.Name)
	assert.Equal(t, 1, node.Rank)

	node = g.AddNode(1)
	assert.Equal(t, 1, node.ID)
	assert.Equal(t, "1", node.Name)

	got, ok := g.Node(0)
	require.True(t, ok)
	assert.Equal(t, Node{ID: 0, Entity: Entity{Rank: 1, Name: "1"}}, got)
}

func TestConnectNeverSelfLoops(t *testing.T) {
	g := New()
	for i := 0; i < 5; i++ {
		g.AddNode(i)
	}
	require.True(t, g.CanLink())

	sourceHi, rawHi := g.LinkDrawBounds()
	assert.Equal(t, 4, sourceHi)
	assert.Equal(t, 3, rawHi)

	// Exhaust the whole draw space.
	for source := 0; source <= sourceHi; source++ {
		for raw := 0; raw <= rawHi; raw++ {
			edge, ok := g.Connect(source, raw)
			require.True(t, ok)
			assert.NotEqual(t, source, edge.Target, "source=%d raw=%d", source, raw)
			assert.GreaterOrEqual(t, edge.Target, 0)
			assert.Less(t, edge.Target, g.NodeCount())
		}
	}
	require.NoError(t, g.Validate())
}

func TestConnectTargetFolding(t *testing.T) {
	g := New()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}

	// Raw draws below the source pass through untouched.
	edge, ok := g.Connect(2, 1)
	require.True(t, ok)
	assert.Equal(t, 1, edge.Target)

	// Raw draws at or above the source fold forward by one.
	edge, ok = g.Connect(2, 2)
	require.True(t, ok)
	assert.Equal(t, 3, edge.Target)

	// Folding past the last node wraps to zero.
	edge, ok = g.Connect(3, 3)
	require.True(t, ok)
	assert.Equal(t, 0, edge.Target)
}

func TestEdgeIDsAreSequential(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.AddNode(i)
	}

	for i := 0; i < 10; i++ {
		edge, ok := g.Connect(i%3, i%2)
		require.True(t, ok)
		assert.Equal(t, i, edge.ID)
	}
	assert.Equal(t, 10, g.EdgeCount())

	edges := g.Edges()
	require.Len(t, edges, 10)
	for i, edge := range edges {
		assert.Equal(t, i, edge.ID)
	}
	require.NoError(t, g.Validate())
}

func TestConnectMissingSourceIsNoOp(t *testing.T) {
	g := New()
	g.AddNode(0)
	g.AddNode(1)

	_, ok := g.Connect(7, 0)
	assert.False(t, ok)
	_, ok = g.Connect(-1, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestParallelEdgesAllowed(t *testing.T) {
	g := New()
	g.AddNode(0)
	g.AddNode(1)

	first, ok := g.Connect(0, 0)
	require.True(t, ok)
	second, ok := g.Connect(0, 0)
	require.True(t, ok)

	assert.Equal(t, first.Target, second.Target)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, g.EdgesFrom(0), 2)
}

func TestUncommittedEvents(t *testing.T) {
	g := New()
	node := g.AddNode(3)
	g.AddNode(4)
	edge, ok := g.Connect(0, 0)
	require.True(t, ok)

	evs := g.GetUncommittedEvents()
	require.Len(t, evs, 3)

	added, ok := evs[0].(events.NodeAdded)
	require.True(t, ok)
	assert.Equal(t, node.ID, added.NodeID)
	assert.Equal(t, strconv.Itoa(3), added.Name)

	connected, ok := evs[2].(events.EdgeAdded)
	require.True(t, ok)
	assert.Equal(t, edge.ID, connected.EdgeID)
	assert.Equal(t, edge.Source, connected.Source)
	assert.Equal(t, edge.Target, connected.Target)

	g.MarkEventsAsCommitted()
	assert.Empty(t, g.GetUncommittedEvents())
}

func TestTakeSnapshotIsDetached(t *testing.T) {
	g := New()
	g.AddNode(0)
	g.AddNode(1)
	g.Connect(0, 0)

	snap := g.TakeSnapshot()
	require.Len(t, snap.Nodes, 2)
	require.Len(t, snap.Edges, 1)

	g.AddNode(2)
	g.Connect(1, 0)
	assert.Len(t, snap.Nodes, 2)
	assert.Len(t, snap.Edges, 1)
}
