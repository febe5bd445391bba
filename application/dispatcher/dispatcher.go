// Package dispatcher owns the application state and runs the single-threaded
// event loop that mutates it. Every transition runs to completion on the loop
// goroutine; asynchronous effects (random draws, catalog searches) deliver
// their outcomes back to the loop as follow-up events, so the model never
// needs a lock.
package dispatcher

import (
	"context"

	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/application/bus"
	"github.com/sapphire-arches/mccraft/domain/catalog"
	"github.com/sapphire-arches/mccraft/domain/events"
	"github.com/sapphire-arches/mccraft/domain/graph"
	"github.com/sapphire-arches/mccraft/infrastructure/observability"
	"github.com/sapphire-arches/mccraft/infrastructure/visualizer"
	apperrors "github.com/sapphire-arches/mccraft/pkg/errors"
	"github.com/sapphire-arches/mccraft/pkg/random"
)

// Searcher is the catalog search dependency.
type Searcher interface {
	Search(ctx context.Context, term string) ([]catalog.Item, error)
}

// Model is a snapshot of the application state.
type Model struct {
	Graph         graph.Snapshot `json:"graph"`
	SearchResults []catalog.Item `json:"searchResults"`
	ErrorMessage  string         `json:"errorMessage,omitempty"`
}

const queueDepth = 256

// Dispatcher maps incoming events and current state to new state plus
// follow-up effects. It is the sole owner of the graph and search state.
type Dispatcher struct {
	bus      *bus.EventBus
	searcher Searcher
	notifier visualizer.Notifier
	rng      random.Source
	logger   *zap.Logger
	metrics  *observability.Collector

	// State below is touched only by the loop goroutine.
	graph        *graph.Graph
	results      []catalog.Item
	errorMessage string
	searchSeq    uint64

	queue     chan bus.Event
	snapshots chan chan Model
}

// New creates a dispatcher and registers one handler per event kind.
func New(
	searcher Searcher,
	notifier visualizer.Notifier,
	rng random.Source,
	logger *zap.Logger,
	metrics *observability.Collector,
) *Dispatcher {
	d := &Dispatcher{
		bus:       bus.NewEventBus(),
		searcher:  searcher,
		notifier:  notifier,
		rng:       rng,
		logger:    logger,
		metrics:   metrics,
		graph:     graph.New(),
		queue:     make(chan bus.Event, queueDepth),
		snapshots: make(chan chan Model),
	}

	pipeline := bus.NewPipeline(
		bus.RecoveryMiddleware(logger),
		bus.LoggingMiddleware(logger),
	)
	register := func(ev bus.Event, h func(ctx context.Context, event bus.Event) error) {
		if err := d.bus.Register(ev, pipeline.Wrap(bus.EventHandlerFunc(h))); err != nil {
			// Registration happens once at construction with distinct types.
			panic(err)
		}
	}

	register(RequestRandomNode{}, d.handleRequestRandomNode)
	register(NodeDrawn{}, d.handleNodeDrawn)
	register(RequestRandomLink{}, d.handleRequestRandomLink)
	register(LinkDrawn{}, d.handleLinkDrawn)
	register(SearchTermChanged{}, d.handleSearchTermChanged)
	register(SearchCompleted{}, d.handleSearchCompleted)
	register(ItemSelected{}, d.handleItemSelected)

	return d
}

// Post enqueues an event for the dispatch loop.
func (d *Dispatcher) Post(event bus.Event) {
	d.queue <- event
}

// Run processes events until the context is cancelled. It must be called
// exactly once; all state transitions happen on this goroutine.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("Dispatch loop started")
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Dispatch loop stopped")
			return

		case event := <-d.queue:
			d.metrics.EventsDispatched.WithLabelValues(event.EventType()).Inc()
			if err := d.bus.Dispatch(ctx, event); err != nil {
				d.metrics.EventFailures.WithLabelValues(event.EventType()).Inc()
			}

		case reply := <-d.snapshots:
			reply <- d.snapshot()
		}
	}
}

// Snapshot returns a copy of the current model, taken on the loop goroutine.
func (d *Dispatcher) Snapshot(ctx context.Context) (Model, error) {
	reply := make(chan Model, 1)
	select {
	case d.snapshots <- reply:
	case <-ctx.Done():
		return Model{}, ctx.Err()
	}
	select {
	case m := <-reply:
		return m, nil
	case <-ctx.Done():
		return Model{}, ctx.Err()
	}
}

func (d *Dispatcher) snapshot() Model {
	results := make([]catalog.Item, len(d.results))
	copy(results, d.results)
	return Model{
		Graph:         d.graph.TakeSnapshot(),
		SearchResults: results,
		ErrorMessage:  d.errorMessage,
	}
}

// Event handlers. Each runs on the loop goroutine.

func (d *Dispatcher) handleRequestRandomNode(ctx context.Context, _ bus.Event) error {
	lo, hi := d.graph.NodeDrawBounds()
	go func() {
		d.Post(NodeDrawn{Drawn: d.rng.IntBetween(lo, hi)})
	}()
	return nil
}

func (d *Dispatcher) handleNodeDrawn(ctx context.Context, event bus.Event) error {
	drawn := event.(NodeDrawn)

	node := d.graph.AddNode(drawn.Drawn)
	d.metrics.NodesCreated.Inc()
	d.logger.Info("Node added",
		zap.Int("id", node.ID),
		zap.String("name", node.Name),
	)

	d.publishGraphEvents()
	return nil
}

func (d *Dispatcher) handleRequestRandomLink(ctx context.Context, _ bus.Event) error {
	if !d.graph.CanLink() {
		d.logger.Debug("Link draw skipped: not enough nodes",
			zap.Int("nodes", d.graph.NodeCount()),
		)
		return nil
	}
	sourceHi, rawHi := d.graph.LinkDrawBounds()
	go func() {
		d.Post(LinkDrawn{
			Source: d.rng.IntBetween(0, sourceHi),
			Raw:    d.rng.IntBetween(0, rawHi),
		})
	}()
	return nil
}

func (d *Dispatcher) handleLinkDrawn(ctx context.Context, event bus.Event) error {
	drawn := event.(LinkDrawn)

	edge, ok := d.graph.Connect(drawn.Source, drawn.Raw)
	if !ok {
		d.logger.Warn("Link draw referenced missing source node",
			zap.Int("source", drawn.Source),
		)
		return nil
	}

	d.metrics.EdgesCreated.Inc()
	d.logger.Info("Edge added",
		zap.Int("id", edge.ID),
		zap.Int("source", edge.Source),
		zap.Int("target", edge.Target),
	)

	d.publishGraphEvents()
	return nil
}

func (d *Dispatcher) handleSearchTermChanged(ctx context.Context, event bus.Event) error {
	changed := event.(SearchTermChanged)

	if !catalog.Searchable(changed.Term) {
		// Invalidate any in-flight search so a late response cannot
		// repopulate the cleared results.
		d.searchSeq++
		d.results = nil
		return nil
	}

	d.searchSeq++
	seq := d.searchSeq
	term := changed.Term
	go func() {
		items, err := d.searcher.Search(ctx, term)
		d.Post(SearchCompleted{Seq: seq, Items: items, Err: err})
	}()
	return nil
}

func (d *Dispatcher) handleSearchCompleted(ctx context.Context, event bus.Event) error {
	completed := event.(SearchCompleted)

	if completed.Seq != d.searchSeq {
		d.metrics.StaleResultsDropped.Inc()
		d.logger.Debug("Dropped stale search response",
			zap.Uint64("seq", completed.Seq),
			zap.Uint64("current", d.searchSeq),
		)
		return nil
	}

	if completed.Err != nil {
		// Prior results stay visible; only the error banner changes.
		d.errorMessage = apperrors.UserMessage(completed.Err)
		return nil
	}

	d.results = completed.Items
	d.errorMessage = ""
	return nil
}

func (d *Dispatcher) handleItemSelected(ctx context.Context, event bus.Event) error {
	selected := event.(ItemSelected)

	d.logger.Info("Item selected",
		zap.Int("id", selected.Item.ID),
		zap.String("name", selected.Item.DisplayName),
	)
	d.searchSeq++
	d.results = nil
	return nil
}

// publishGraphEvents drains the graph's uncommitted domain events into the
// visualizer notifier, preserving creation order.
func (d *Dispatcher) publishGraphEvents() {
	for _, ev := range d.graph.GetUncommittedEvents() {
		switch e := ev.(type) {
		case events.NodeAdded:
			d.notifier.NodeCreated(e)
		case events.EdgeAdded:
			d.notifier.EdgeCreated(e)
		default:
			d.logger.Warn("Unhandled graph event", zap.String("type", ev.GetEventType()))
		}
	}
	d.graph.MarkEventsAsCommitted()
}
