package adaptation

import (
	"sync"

	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"
)

// The process-wide manager. It is created on first use; tests call
// ResetGlobalManager to start from an empty registry.
var global struct {
	mu      sync.RWMutex
	manager *Manager
}

// GlobalManager returns the process-wide manager, creating it on first use.
func GlobalManager() *Manager {
	global.mu.RLock()
	m := global.manager
	global.mu.RUnlock()
	if m != nil {
		return m
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if global.manager == nil {
		global.manager = NewManager()
		logging.Debug("Adaptation", "Created global manager %s", global.manager.ID())
	}
	return global.manager
}

// SetGlobalManager replaces the process-wide manager. A nil manager makes
// the next GlobalManager call create a fresh one.
func SetGlobalManager(m *Manager) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.manager = m
}

// ResetGlobalManager replaces the process-wide manager with an empty one.
func ResetGlobalManager() {
	m := NewManager()
	SetGlobalManager(m)
	logging.Debug("Adaptation", "Reset global manager to %s", m.ID())
}

// Adapt adapts obj to `to` using the global manager.
func Adapt(obj any, to *protocol.Protocol) (any, error) {
	return GlobalManager().Adapt(obj, to)
}

// AdaptOr adapts obj to `to` using the global manager, returning def when no
// path exists.
func AdaptOr(obj any, to *protocol.Protocol, def any) (any, error) {
	return GlobalManager().AdaptOr(obj, to, def)
}

// RegisterFactory registers a factory with the global manager.
func RegisterFactory(factory Factory, from, to *protocol.Protocol) error {
	return GlobalManager().RegisterFactory(factory, from, to)
}

// RegisterOffer registers an offer with the global manager.
func RegisterOffer(offer *Offer) {
	GlobalManager().RegisterOffer(offer)
}

// RegisterProvides registers a provides declaration with the global manager.
func RegisterProvides(typ, proto *protocol.Protocol) {
	GlobalManager().RegisterProvides(typ, proto)
}

// SupportsProtocol reports whether obj provides or can be adapted to proto
// using the global manager.
func SupportsProtocol(obj any, proto *protocol.Protocol) (bool, error) {
	return GlobalManager().SupportsProtocol(obj, proto)
}

// ProvidesProtocol reports whether typ provides proto according to the
// global manager's hierarchy.
func ProvidesProtocol(typ, proto *protocol.Protocol) bool {
	return GlobalManager().ProvidesProtocol(typ, proto)
}
