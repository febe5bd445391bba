// Package visualizer publishes graph mutations to the external
// graph-visualization process over socket.io. The process is an opaque
// collaborator consuming two message types: node and edge creations.
package visualizer

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/domain/events"
)

// Socket.io event names consumed by the visualization process.
const (
	nodeEventName = "node"
	edgeEventName = "edge"
)

const connectTimeout = 15 * time.Second

// NodePayload is the wire shape of a node-creation notification.
type NodePayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EdgePayload is the wire shape of an edge-creation notification.
type EdgePayload struct {
	Source int `json:"source"`
	Target int `json:"target"`
	ID     int `json:"id"`
}

// Notifier publishes graph mutations to the visualization process.
type Notifier interface {
	NodeCreated(event events.NodeAdded)
	EdgeCreated(event events.EdgeAdded)
	Close() error
}

// Emitter is a socket.io backed Notifier.
type Emitter struct {
	io     *socket.Socket
	logger *zap.Logger
}

// Connect dials the visualization process and waits for the socket.io
// handshake to complete.
func Connect(ctx context.Context, rawURL, namespace string, logger *zap.Logger) (*Emitter, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse visualizer URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to visualizer", zap.String("sid", string(io.Id())))
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- connectError(errs)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("visualizer connection failed: %w", err)
		}
		return &Emitter{io: io, logger: logger}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while connecting to visualizer")
	case <-time.After(connectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %v connecting to visualizer", connectTimeout)
	}
}

// connectError normalizes a connect_error callback payload into a non-nil
// error so the connect select never mistakes a failure for success.
func connectError(errs []any) error {
	if len(errs) == 0 {
		return fmt.Errorf("connect_error with no detail")
	}
	if err, ok := errs[0].(error); ok && err != nil {
		return err
	}
	return fmt.Errorf("connect_error: %v", errs[0])
}

// NodeCreated implements Notifier.
func (e *Emitter) NodeCreated(event events.NodeAdded) {
	payload := NodePayload{ID: event.NodeID, Name: event.Name}
	e.io.Emit(nodeEventName, payload)
	e.logger.Debug("Emitted node notification", zap.Int("id", payload.ID))
}

// EdgeCreated implements Notifier.
func (e *Emitter) EdgeCreated(event events.EdgeAdded) {
	payload := EdgePayload{Source: event.Source, Target: event.Target, ID: event.EdgeID}
	e.io.Emit(edgeEventName, payload)
	e.logger.Debug("Emitted edge notification", zap.Int("id", payload.ID))
}

// Close disconnects from the visualization process.
func (e *Emitter) Close() error {
	e.io.Disconnect()
	return nil
}

// Nop is a Notifier that drops every notification. Used when no
// visualizer endpoint is configured.
type Nop struct{}

func (Nop) NodeCreated(events.NodeAdded) {}
func (Nop) EdgeCreated(events.EdgeAdded) {}
func (Nop) Close() error                 { return nil }
