package dispatcher

import (
	"github.com/sapphire-arches/mccraft/domain/catalog"
)

// The dispatch loop consumes exactly these event kinds. User interaction
// arrives as request events; completed asynchronous effects (draws, network)
// arrive as their follow-up events.

// RequestRandomNode asks for a node draw.
type RequestRandomNode struct{}

func (RequestRandomNode) EventType() string { return "request-random-node" }

// NodeDrawn carries a completed node draw.
type NodeDrawn struct {
	Drawn int
}

func (NodeDrawn) EventType() string { return "node-drawn" }

// RequestRandomLink asks for a link draw.
type RequestRandomLink struct{}

func (RequestRandomLink) EventType() string { return "request-random-link" }

// LinkDrawn carries a completed link draw: a source node and the raw
// target draw, still unfolded.
type LinkDrawn struct {
	Source int
	Raw    int
}

func (LinkDrawn) EventType() string { return "link-drawn" }

// SearchTermChanged carries the user's current search input.
type SearchTermChanged struct {
	Term string
}

func (SearchTermChanged) EventType() string { return "search-term-changed" }

// SearchCompleted carries the outcome of a catalog search. Seq identifies
// which SearchTermChanged issued the request so stale responses can be
// discarded.
type SearchCompleted struct {
	Seq   uint64
	Items []catalog.Item
	Err   error
}

func (SearchCompleted) EventType() string { return "search-results" }

// ItemSelected reports that the user picked a search result.
type ItemSelected struct {
	Item catalog.Item
}

func (ItemSelected) EventType() string { return "item-selected" }
