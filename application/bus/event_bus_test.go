package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingEvent struct{}

func (pingEvent) EventType() string { return "ping" }

type unregisteredEvent struct{}

func (unregisteredEvent) EventType() string { return "unregistered" }

func TestDispatchRoutesToRegisteredHandler(t *testing.T) {
	b := NewEventBus()

	var handled int
	err := b.Register(pingEvent{}, EventHandlerFunc(func(ctx context.Context, e Event) error {
		handled++
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, b.Dispatch(context.Background(), pingEvent{}))
	assert.Equal(t, 1, handled)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	b := NewEventBus()
	noop := EventHandlerFunc(func(ctx context.Context, e Event) error { return nil })

	require.NoError(t, b.Register(pingEvent{}, noop))
	assert.Error(t, b.Register(pingEvent{}, noop))
}

func TestDispatchUnknownEvent(t *testing.T) {
	b := NewEventBus()

	err := b.Dispatch(context.Background(), unregisteredEvent{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestPipelineOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next EventHandler) EventHandler {
			return EventHandlerFunc(func(ctx context.Context, e Event) error {
				order = append(order, name)
				return next.Handle(ctx, e)
			})
		}
	}

	handler := NewPipeline(mw("outer"), mw("inner")).Wrap(
		EventHandlerFunc(func(ctx context.Context, e Event) error {
			order = append(order, "handler")
			return nil
		}),
	)

	require.NoError(t, handler.Handle(context.Background(), pingEvent{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(zap.NewNop())(
		EventHandlerFunc(func(ctx context.Context, e Event) error {
			panic("boom")
		}),
	)

	err := handler.Handle(context.Background(), pingEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLoggingMiddlewarePassesErrorThrough(t *testing.T) {
	want := errors.New("handler error")
	handler := LoggingMiddleware(zap.NewNop())(
		EventHandlerFunc(func(ctx context.Context, e Event) error {
			return want
		}),
	)

	assert.ErrorIs(t, handler.Handle(context.Background(), pingEvent{}), want)
}
