package aggregates

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"socialgraph/domain/config"
	"socialgraph/domain/core/entities"
	"socialgraph/domain/events"
	pkgerrors "socialgraph/pkg/errors"
)

// NetworkID represents a unique network identifier
type NetworkID string

// NewNetworkID creates a new random NetworkID
func NewNetworkID() NetworkID {
	return NetworkID(uuid.New().String())
}

// String returns the string representation
func (id NetworkID) String() string {
	return string(id)
}

// Network is the aggregate root for the social graph.
// It owns every person; friendships are stored as names on both ends.
// A Network is not safe for concurrent use.
type Network struct {
	id        NetworkID
	people    map[string]*entities.Person
	order     []string
	edgeCount int
	config    *config.DomainConfig
	createdAt time.Time
	updatedAt time.Time
	version   int
	events    []events.DomainEvent
}

// Connection is one line of a network dump
type Connection struct {
	Name    string   `json:"name"`
	Friends []string `json:"friends"`
}

// String renders the connection as "<name> is friends with: <a, b>"
func (c Connection) String() string {
	return fmt.Sprintf("%s is friends with: %s", c.Name, strings.Join(c.Friends, ", "))
}

// NewNetwork creates an empty network with the default domain configuration
func NewNetwork() *Network {
	return NewNetworkWithConfig(nil)
}

// NewNetworkWithConfig creates an empty network governed by cfg
func NewNetworkWithConfig(cfg *config.DomainConfig) *Network {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	now := time.Now()
	return &Network{
		id:        NewNetworkID(),
		people:    make(map[string]*entities.Person),
		order:     []string{},
		config:    cfg,
		createdAt: now,
		updatedAt: now,
		version:   1,
		events:    []events.DomainEvent{},
	}
}

// ID returns the network's unique identifier
func (n *Network) ID() NetworkID {
	return n.id
}

// Version returns the number of state changes applied plus one
func (n *Network) Version() int {
	return n.version
}

// CreatedAt returns when the network was created
func (n *Network) CreatedAt() time.Time {
	return n.createdAt
}

// UpdatedAt returns when the network last changed
func (n *Network) UpdatedAt() time.Time {
	return n.updatedAt
}

// PersonCount returns the number of people in the network
func (n *Network) PersonCount() int {
	return len(n.people)
}

// FriendshipCount returns the number of undirected friendships
func (n *Network) FriendshipCount() int {
	return n.edgeCount
}

// AddPerson registers a new person under name.
// If the name is taken the network is left unchanged and the existing
// person is returned together with a duplicate-person error.
func (n *Network) AddPerson(name string) (*entities.Person, error) {
	if existing, exists := n.people[name]; exists {
		return existing, pkgerrors.NewDuplicatePersonError(name)
	}

	if n.config.MaxPeople > 0 && len(n.people) >= n.config.MaxPeople {
		return nil, pkgerrors.NewValidationError(
			fmt.Sprintf("maximum people reached: %d", n.config.MaxPeople),
		).WithCode(pkgerrors.CodeLimitExceeded)
	}

	person := entities.NewPerson(name)
	n.people[name] = person
	n.order = append(n.order, name)
	n.touch()

	n.addEvent(events.NewPersonAdded(n.id.String(), name, n.version, n.updatedAt))

	return person, nil
}

// AddFriendship makes a and b friends of each other.
// Both must already be in the network; otherwise nothing changes and a
// missing-person error lists the unknown names. Repeating a pair is a no-op.
func (n *Network) AddFriendship(a, b string) error {
	personA, aExists := n.people[a]
	personB, bExists := n.people[b]

	if !aExists || !bExists {
		missing := []string{}
		if !aExists {
			missing = append(missing, a)
		}
		if !bExists && b != a {
			missing = append(missing, b)
		}
		return pkgerrors.NewMissingPersonError(missing...)
	}

	if a == b && !n.config.AllowSelfFriendship {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("%s cannot befriend themselves", a),
		).WithCode(pkgerrors.CodeSelfFriendship)
	}

	if personA.IsFriendsWith(b) {
		return nil
	}

	if limit := n.config.MaxFriendsPerPerson; limit > 0 {
		if personA.FriendCount() >= limit || personB.FriendCount() >= limit {
			return pkgerrors.NewValidationError(
				fmt.Sprintf("maximum friends reached: %d", limit),
			).WithCode(pkgerrors.CodeLimitExceeded)
		}
	}

	personA.AddFriend(b)
	personB.AddFriend(a)
	n.edgeCount++
	n.touch()

	n.addEvent(events.NewFriendshipFormed(n.id.String(), a, b, n.version, n.updatedAt))

	return nil
}

// Lookup returns the person registered under name
func (n *Network) Lookup(name string) (*entities.Person, error) {
	person, exists := n.people[name]
	if !exists {
		return nil, pkgerrors.NewPersonNotFoundError(name)
	}
	return person, nil
}

// HasPerson checks if a person exists without error
func (n *Network) HasPerson(name string) bool {
	_, exists := n.people[name]
	return exists
}

// People returns every person in insertion order
func (n *Network) People() []*entities.Person {
	people := make([]*entities.Person, 0, len(n.order))
	for _, name := range n.order {
		people = append(people, n.people[name])
	}
	return people
}

// Dump lists every person and their friends, both in insertion order
func (n *Network) Dump() []Connection {
	connections := make([]Connection, 0, len(n.order))
	for _, name := range n.order {
		connections = append(connections, Connection{
			Name:    name,
			Friends: n.people[name].Friends(),
		})
	}
	return connections
}

// WriteDump writes one dump line per person to w
func (n *Network) WriteDump(w io.Writer) error {
	for _, connection := range n.Dump() {
		if _, err := fmt.Fprintln(w, connection.String()); err != nil {
			return err
		}
	}
	return nil
}

// Validate ensures graph invariants
func (n *Network) Validate() error {
	if len(n.order) != len(n.people) {
		return invariantError("insertion order does not match people count")
	}

	halfEdges := 0
	for _, name := range n.order {
		person, exists := n.people[name]
		if !exists {
			return invariantError(fmt.Sprintf("ordered name %q is not registered", name))
		}
		if person.Name() != name {
			return invariantError(fmt.Sprintf("person %q registered under %q", person.Name(), name))
		}

		seen := make(map[string]struct{}, person.FriendCount())
		for _, friend := range person.Friends() {
			if _, dup := seen[friend]; dup {
				return invariantError(fmt.Sprintf("%s lists %s twice", name, friend))
			}
			seen[friend] = struct{}{}

			other, exists := n.people[friend]
			if !exists {
				return invariantError(fmt.Sprintf("%s is friends with unknown %s", name, friend))
			}
			if !other.IsFriendsWith(name) {
				return invariantError(fmt.Sprintf("%s lists %s but not the reverse", name, friend))
			}

			// A self-loop is one undirected edge stored once
			if friend == name {
				halfEdges += 2
			} else {
				halfEdges++
			}
		}
	}

	if halfEdges != 2*n.edgeCount {
		return invariantError("friendship count mismatch")
	}

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (n *Network) GetUncommittedEvents() []events.DomainEvent {
	pending := make([]events.DomainEvent, len(n.events))
	copy(pending, n.events)
	return pending
}

// MarkEventsAsCommitted clears all uncommitted events
func (n *Network) MarkEventsAsCommitted() {
	n.events = []events.DomainEvent{}
}

func (n *Network) addEvent(event events.DomainEvent) {
	n.events = append(n.events, event)
}

func (n *Network) touch() {
	n.updatedAt = time.Now()
	n.version++
}

func invariantError(message string) error {
	return pkgerrors.NewInternalError(message).WithCode(pkgerrors.CodeInvariantViolated)
}
