// Package render derives the visual tree from a model snapshot. It is pure:
// the same model always yields the same view, and nothing here mutates state.
package render

import (
	"github.com/sapphire-arches/mccraft/application/dispatcher"
	"github.com/sapphire-arches/mccraft/domain/graph"
)

// Row styling classes, alternating by index parity.
const (
	RowClassEven = "even"
	RowClassOdd  = "odd"
)

// View is the full visual tree for one model snapshot.
type View struct {
	Error  *ErrorBanner `json:"error,omitempty"`
	Search SearchView   `json:"search"`
	Graph  GraphView    `json:"graph"`
}

// ErrorBanner is shown iff the model carries an error message.
type ErrorBanner struct {
	Message string `json:"message"`
}

// SearchView lists the result tiles.
type SearchView struct {
	Rows []Row `json:"rows"`
}

// Row is one clickable result tile.
type Row struct {
	Class      string `json:"class"`
	ItemID     int    `json:"itemId"`
	ItemName   string `json:"itemName"`
	ExternalID string `json:"externalId"`
	IconURL    string `json:"iconUrl"`
}

// GraphView summarizes the debug graph.
type GraphView struct {
	NodeCount int          `json:"nodeCount"`
	EdgeCount int          `json:"edgeCount"`
	Nodes     []graph.Node `json:"nodes"`
	Edges     []graph.Edge `json:"edges"`
}

// Render re-derives the full view from a model snapshot.
func Render(m dispatcher.Model) View {
	view := View{
		Search: SearchView{Rows: make([]Row, len(m.SearchResults))},
		Graph: GraphView{
			NodeCount: len(m.Graph.Nodes),
			EdgeCount: len(m.Graph.Edges),
			Nodes:     m.Graph.Nodes,
			Edges:     m.Graph.Edges,
		},
	}

	if m.ErrorMessage != "" {
		view.Error = &ErrorBanner{Message: m.ErrorMessage}
	}

	for i, item := range m.SearchResults {
		class := RowClassEven
		if i%2 == 1 {
			class = RowClassOdd
		}
		view.Search.Rows[i] = Row{
			Class:      class,
			ItemID:     item.ID,
			ItemName:   item.DisplayName,
			ExternalID: item.ExternalID,
			IconURL:    item.IconURL(),
		}
	}

	return view
}
