package adaptation

import (
	"fmt"

	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"

	"github.com/google/uuid"
)

// Manager resolves adaptation requests against a registry of offers.
//
// Register offers before sharing a Manager between goroutines; Adapt itself
// does not mutate the manager.
type Manager struct {
	id       string
	registry *Registry
}

// NewManager creates a manager with an empty registry.
func NewManager() *Manager {
	return &Manager{
		id:       uuid.New().String(),
		registry: NewRegistry(),
	}
}

// ID identifies the manager in logs and command output.
func (m *Manager) ID() string {
	return m.id
}

// Registry returns the manager's offer registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Hierarchy returns the hierarchy used for ancestor queries.
func (m *Manager) Hierarchy() *protocol.Hierarchy {
	return m.registry.Hierarchy()
}

// RegisterOffer registers an offer.
func (m *Manager) RegisterOffer(offer *Offer) {
	m.registry.RegisterOffer(offer)
}

// RegisterFactory registers factory as an offer from one protocol to another.
func (m *Manager) RegisterFactory(factory Factory, from, to *protocol.Protocol) error {
	return m.registry.RegisterFactory(factory, from, to)
}

// RegisterProvides declares that values of typ satisfy proto without adaptation.
func (m *Manager) RegisterProvides(typ, proto *protocol.Protocol) {
	m.registry.RegisterProvides(typ, proto)
}

// ProvidesProtocol reports whether values of typ satisfy proto without any
// adaptation. No offers are considered.
func (m *Manager) ProvidesProtocol(typ, proto *protocol.Protocol) bool {
	return m.Hierarchy().Provides(typ, proto)
}

// Adapt returns a value satisfying to. If obj already provides to it is
// returned unchanged; otherwise a chain of adapters is built. When no chain
// exists the error is an *AdaptationError.
func (m *Manager) Adapt(obj any, to *protocol.Protocol) (any, error) {
	result, found, err := m.adapt(obj, to)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &AdaptationError{Adaptee: obj, Protocol: to}
	}
	return result, nil
}

// AdaptOr is like Adapt but returns def when no adaptation path exists.
// Factory errors are still returned.
func (m *Manager) AdaptOr(obj any, to *protocol.Protocol, def any) (any, error) {
	result, found, err := m.adapt(obj, to)
	if err != nil {
		return nil, err
	}
	if !found {
		return def, nil
	}
	return result, nil
}

// SupportsProtocol reports whether obj provides proto or can be adapted to it.
func (m *Manager) SupportsProtocol(obj any, proto *protocol.Protocol) (bool, error) {
	result, err := m.AdaptOr(obj, proto, nil)
	if err != nil {
		return false, err
	}
	return result != nil, nil
}

func (m *Manager) adapt(obj any, to *protocol.Protocol) (any, bool, error) {
	if to == nil {
		return nil, false, fmt.Errorf("adapt %s: target protocol is nil", protocol.ValueOf(obj))
	}

	if m.Hierarchy().Provides(protocol.ValueOf(obj), to) {
		return obj, true, nil
	}

	result, found, err := m.search(obj, to)
	if err != nil {
		logging.Error("Adaptation", err, "Adapting %s to %s failed (manager %s)", protocol.ValueOf(obj), to, m.id)
		return nil, false, err
	}
	if !found {
		logging.Debug("Adaptation", "No path from %s to %s (manager %s)", protocol.ValueOf(obj), to, m.id)
	}
	return result, found, nil
}

// As adapts obj to the protocol of T and returns the result as a T.
func As[T any](m *Manager, obj any) (T, error) {
	var zero T
	to := protocol.Of[T]()

	result, err := m.Adapt(obj, to)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("adapter for %s has type %T", to, result)
	}
	return typed, nil
}
