package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Event types
const (
	TypePersonAdded      = "network.person_added"
	TypeFriendshipFormed = "network.friendship_formed"
)

func newBaseEvent(aggregateID, eventType string, version int, timestamp time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Timestamp:   timestamp,
		Version:     version,
	}
}

// PersonAdded is raised when a new person joins the network
type PersonAdded struct {
	BaseEvent
	Name string `json:"name"`
}

// NewPersonAdded creates a PersonAdded event
func NewPersonAdded(networkID, name string, version int, timestamp time.Time) PersonAdded {
	return PersonAdded{
		BaseEvent: newBaseEvent(networkID, TypePersonAdded, version, timestamp),
		Name:      name,
	}
}

// FriendshipFormed is raised when two people become friends.
// It is raised once per pair; the relation itself is symmetric.
type FriendshipFormed struct {
	BaseEvent
	PersonA string `json:"person_a"`
	PersonB string `json:"person_b"`
}

// NewFriendshipFormed creates a FriendshipFormed event
func NewFriendshipFormed(networkID, personA, personB string, version int, timestamp time.Time) FriendshipFormed {
	return FriendshipFormed{
		BaseEvent: newBaseEvent(networkID, TypeFriendshipFormed, version, timestamp),
		PersonA:   personA,
		PersonB:   personB,
	}
}
