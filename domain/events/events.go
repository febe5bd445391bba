package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

func newBase(eventType string) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}

// Graph events

// NodeAdded is raised when a node is appended to the graph
type NodeAdded struct {
	BaseEvent
	NodeID int    `json:"id"`
	Name   string `json:"name"`
	Rank   int    `json:"rank"`
}

// NewNodeAdded creates a NodeAdded event
func NewNodeAdded(nodeID, rank int, name string) NodeAdded {
	return NodeAdded{
		BaseEvent: newBase("graph.node_added"),
		NodeID:    nodeID,
		Name:      name,
		Rank:      rank,
	}
}

// EdgeAdded is raised when an edge is appended to the graph
type EdgeAdded struct {
	BaseEvent
	EdgeID int `json:"id"`
	Source int `json:"source"`
	Target int `json:"target"`
}

// NewEdgeAdded creates an EdgeAdded event
func NewEdgeAdded(edgeID, source, target int) EdgeAdded {
	return EdgeAdded{
		BaseEvent: newBase("graph.edge_added"),
		EdgeID:    edgeID,
		Source:    source,
		Target:    target,
	}
}
