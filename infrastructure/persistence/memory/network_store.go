package memory

import (
	"context"
	"errors"
	"sync"

	"socialgraph/domain/core/aggregates"
	pkgerrors "socialgraph/pkg/errors"
)

// NetworkStore keeps the social network in process memory.
// One RWMutex guards the whole network for the duration of each callback.
type NetworkStore struct {
	mu      sync.RWMutex
	network *aggregates.Network
}

// NewNetworkStore wraps network. A nil network starts an empty default one.
func NewNetworkStore(network *aggregates.Network) *NetworkStore {
	if network == nil {
		network = aggregates.NewNetwork()
	}
	return &NetworkStore{network: network}
}

// Update runs fn with exclusive access to the network
func (s *NetworkStore) Update(ctx context.Context, fn func(network *aggregates.Network) error) error {
	if err := ctx.Err(); err != nil {
		return contextError(err, "update")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.network)
}

// View runs fn with shared read access to the network
func (s *NetworkStore) View(ctx context.Context, fn func(network *aggregates.Network) error) error {
	if err := ctx.Err(); err != nil {
		return contextError(err, "view")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.network)
}

// contextError maps an expired context to TIMEOUT and a cancelled one to INTERNAL,
// keeping the context error as the cause
func contextError(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.NewTimeoutError("network " + op).WithCause(err)
	}
	return pkgerrors.Wrapf(err, "network %s aborted", op)
}
