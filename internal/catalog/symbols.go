package catalog

import (
	"fmt"
	"slices"
	"sync"

	"adaptctl/pkg/adaptation"
	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"
)

// Symbols maps the names used in catalogs to protocols and factories.
// It is safe for concurrent use.
type Symbols struct {
	mu        sync.RWMutex
	protocols map[string]*protocol.Protocol
	factories map[string]adaptation.Factory
}

// NewSymbols creates a symbol table that only knows "any", the universal
// protocol.
func NewSymbols() *Symbols {
	return &Symbols{
		protocols: map[string]*protocol.Protocol{"any": protocol.Any},
		factories: make(map[string]adaptation.Factory),
	}
}

// RegisterProtocol names a protocol for use in catalogs.
func (s *Symbols) RegisterProtocol(name string, p *protocol.Protocol) error {
	if name == "" || p == nil {
		return fmt.Errorf("protocol symbol requires a name and a protocol")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.protocols[name]; ok && existing != p {
		return fmt.Errorf("%w: protocol %q", ErrDuplicateSymbol, name)
	}
	s.protocols[name] = p
	logging.Debug("Catalog", "Registered protocol symbol %s -> %s", name, p)
	return nil
}

// RegisterFactory names a factory for use in catalogs.
func (s *Symbols) RegisterFactory(name string, f adaptation.Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("factory symbol requires a name and a factory")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.factories[name]; ok {
		return fmt.Errorf("%w: factory %q", ErrDuplicateSymbol, name)
	}
	s.factories[name] = f
	logging.Debug("Catalog", "Registered factory symbol %s", name)
	return nil
}

// Protocol looks up a protocol by name.
func (s *Symbols) Protocol(name string) (*protocol.Protocol, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.protocols[name]
	return p, ok
}

// Factory looks up a factory by name.
func (s *Symbols) Factory(name string) (adaptation.Factory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.factories[name]
	return f, ok
}

// ProtocolNames returns the registered protocol names, sorted.
func (s *Symbols) ProtocolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.protocols)
}

// FactoryNames returns the registered factory names, sorted.
func (s *Symbols) FactoryNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.factories)
}

func (s *Symbols) protocolTable() map[string]*protocol.Protocol {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table := make(map[string]*protocol.Protocol, len(s.protocols))
	for name, p := range s.protocols {
		table[name] = p
	}
	return table
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var (
	defaultSymbols     *Symbols
	defaultSymbolsOnce sync.Once
)

// DefaultSymbols returns the process-wide symbol table.
func DefaultSymbols() *Symbols {
	defaultSymbolsOnce.Do(func() {
		defaultSymbols = NewSymbols()
	})
	return defaultSymbols
}

// RegisterProtocol names a protocol in the default symbol table. It is meant
// to be called from init functions and panics on conflicting registrations.
func RegisterProtocol(name string, p *protocol.Protocol) {
	if err := DefaultSymbols().RegisterProtocol(name, p); err != nil {
		panic(err)
	}
}

// RegisterFactory names a factory in the default symbol table. It is meant
// to be called from init functions and panics on duplicate names.
func RegisterFactory(name string, f adaptation.Factory) {
	if err := DefaultSymbols().RegisterFactory(name, f); err != nil {
		panic(err)
	}
}
