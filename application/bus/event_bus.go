package bus

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Event represents a single dispatch-loop event
type Event interface {
	EventType() string
}

// EventHandler handles a specific event type
type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

// EventBus dispatches events to their handlers
type EventBus struct {
	handlers map[reflect.Type]EventHandler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[reflect.Type]EventHandler),
	}
}

// Register registers a handler for an event type
func (b *EventBus) Register(eventType Event, handler EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := reflect.TypeOf(eventType)
	if _, exists := b.handlers[t]; exists {
		return fmt.Errorf("handler already registered for event type %s", t.Name())
	}

	b.handlers[t] = handler
	return nil
}

// Dispatch routes an event to its handler
func (b *EventBus) Dispatch(ctx context.Context, event Event) error {
	b.mu.RLock()
	handler, exists := b.handlers[reflect.TypeOf(event)]
	b.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %T", ErrHandlerNotFound, event)
	}

	if err := handler.Handle(ctx, event); err != nil {
		return fmt.Errorf("event handler failed: %w", err)
	}

	return nil
}

// Middleware defines event middleware
type Middleware func(next EventHandler) EventHandler

// EventHandlerFunc is an adapter to allow functions to be used as handlers
type EventHandlerFunc func(ctx context.Context, event Event) error

// Handle implements EventHandler
func (f EventHandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// LoggingMiddleware logs every event before its transition is applied
func LoggingMiddleware(logger *zap.Logger) Middleware {
	return func(next EventHandler) EventHandler {
		return EventHandlerFunc(func(ctx context.Context, event Event) error {
			logger.Info("Dispatching event", zap.String("type", event.EventType()))

			err := next.Handle(ctx, event)
			if err != nil {
				logger.Error("Event failed",
					zap.String("type", event.EventType()),
					zap.Error(err),
				)
			}

			return err
		})
	}
}

// RecoveryMiddleware converts handler panics into errors so one bad
// transition cannot take down the dispatch loop
func RecoveryMiddleware(logger *zap.Logger) Middleware {
	return func(next EventHandler) EventHandler {
		return EventHandlerFunc(func(ctx context.Context, event Event) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Event handler panicked",
						zap.String("type", event.EventType()),
						zap.Any("panic", r),
					)
					err = fmt.Errorf("event handler panicked: %v", r)
				}
			}()
			return next.Handle(ctx, event)
		})
	}
}

// Pipeline chains multiple middleware together
type Pipeline struct {
	middlewares []Middleware
}

// NewPipeline creates a new middleware pipeline
func NewPipeline(middlewares ...Middleware) *Pipeline {
	return &Pipeline{
		middlewares: middlewares,
	}
}

// Wrap runs the handler through the pipeline
func (p *Pipeline) Wrap(handler EventHandler) EventHandler {
	// Apply middleware in reverse order
	for i := len(p.middlewares) - 1; i >= 0; i-- {
		handler = p.middlewares[i](handler)
	}
	return handler
}

// Errors
var (
	ErrHandlerNotFound = errors.New("event handler not found")
)
