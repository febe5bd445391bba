package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapphire-arches/mccraft/application/dispatcher"
	"github.com/sapphire-arches/mccraft/domain/catalog"
	"github.com/sapphire-arches/mccraft/domain/graph"
)

func TestRenderRowsAlternateParity(t *testing.T) {
	m := dispatcher.Model{
		SearchResults: []catalog.Item{
			{ID: 1, DisplayName: "Torch", ExternalID: "minecraft:torch", Type: catalog.ItemTypeStack},
			{ID: 2, DisplayName: "Lava", ExternalID: "minecraft:lava", Type: catalog.ItemTypeFluid},
			{ID: 3, DisplayName: "Mystery", ExternalID: "modded:thing", Type: catalog.ItemTypeUnknown},
		},
	}

	view := Render(m)
	require.Len(t, view.Search.Rows, 3)

	assert.Equal(t, RowClassEven, view.Search.Rows[0].Class)
	assert.Equal(t, RowClassOdd, view.Search.Rows[1].Class)
	assert.Equal(t, RowClassEven, view.Search.Rows[2].Class)
}

func TestRenderRowIconURLs(t *testing.T) {
	m := dispatcher.Model{
		SearchResults: []catalog.Item{
			{ID: 1, DisplayName: "Torch", ExternalID: "minecraft:torch", Type: catalog.ItemTypeStack},
			{ID: 2, DisplayName: "Lava", ExternalID: "minecraft:lava", Type: catalog.ItemTypeFluid},
			{ID: 3, DisplayName: "Mystery", ExternalID: "modded:thing", Type: catalog.ItemTypeUnknown},
		},
	}

	view := Render(m)
	require.Len(t, view.Search.Rows, 3)

	assert.Equal(t, "Torch", view.Search.Rows[0].ItemName)
	assert.Equal(t, "/images/items/minecraft_torch.png", view.Search.Rows[0].IconURL)
	assert.Equal(t, "/images/fluids/minecraft_lava.png", view.Search.Rows[1].IconURL)
	assert.Equal(t, "/static/ohno.png", view.Search.Rows[2].IconURL)
}

func TestRenderErrorBanner(t *testing.T) {
	view := Render(dispatcher.Model{})
	assert.Nil(t, view.Error)

	view = Render(dispatcher.Model{ErrorMessage: "Network timeout while searching for items"})
	require.NotNil(t, view.Error)
	assert.Equal(t, "Network timeout while searching for items", view.Error.Message)
}

func TestRenderGraphSummary(t *testing.T) {
	m := dispatcher.Model{
		Graph: graph.Snapshot{
			Nodes: []graph.Node{
				{ID: 0, Entity: graph.Entity{Rank: 0, Name: "0"}},
				{ID: 1, Entity: graph.Entity{Rank: 2, Name: "2"}},
			},
			Edges: []graph.Edge{{ID: 0, Source: 0, Target: 1}},
		},
	}

	view := Render(m)
	assert.Equal(t, 2, view.Graph.NodeCount)
	assert.Equal(t, 1, view.Graph.EdgeCount)
	require.Len(t, view.Graph.Nodes, 2)
	assert.Equal(t, "2", view.Graph.Nodes[1].Name)
}

func TestRenderIsPure(t *testing.T) {
	m := dispatcher.Model{
		SearchResults: []catalog.Item{{ID: 1, DisplayName: "Torch", ExternalID: "minecraft:torch", Type: catalog.ItemTypeStack}},
	}

	first := Render(m)
	second := Render(m)
	assert.Equal(t, first, second)
}
