package catalog

import (
	"fmt"

	"adaptctl/pkg/adaptation"
	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"
)

// Namespace resolves names after a catalog has been built: the symbols it
// was built against plus the protocols the catalog defined.
type Namespace struct {
	protocols map[string]*protocol.Protocol
	offers    []BoundOffer
}

// BoundOffer pairs a registered offer with the definition it came from.
type BoundOffer struct {
	Definition OfferDefinition
	Offer      *adaptation.Offer
}

// Protocol looks up a protocol by name.
func (ns *Namespace) Protocol(name string) (*protocol.Protocol, error) {
	p, ok := ns.protocols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
	}
	return p, nil
}

// ProtocolNames returns every resolvable protocol name, sorted.
func (ns *Namespace) ProtocolNames() []string {
	return sortedKeys(ns.protocols)
}

// Offers returns the offers registered by Build in catalog order.
func (ns *Namespace) Offers() []BoundOffer {
	return append([]BoundOffer(nil), ns.offers...)
}

// Build checks the catalog against syms, defines its protocols and registers
// its provides declarations and offers with m. A nil syms means
// DefaultSymbols. Nothing is registered when the check fails.
func (c *Catalog) Build(m *adaptation.Manager, syms *Symbols) (*Namespace, error) {
	if syms == nil {
		syms = DefaultSymbols()
	}
	if err := c.Check(syms); err != nil {
		return nil, err
	}

	ns := &Namespace{protocols: syms.protocolTable()}

	defs := make(map[string]ProtocolDefinition, len(c.Protocols))
	for _, d := range c.Protocols {
		defs[d.Name] = d
	}

	// Check rules out cycles, so the recursion terminates.
	var define func(name string) *protocol.Protocol
	define = func(name string) *protocol.Protocol {
		if p, ok := ns.protocols[name]; ok {
			return p
		}
		d := defs[name]
		parents := make([]*protocol.Protocol, 0, len(d.Parents))
		for _, parent := range d.Parents {
			parents = append(parents, define(parent))
		}
		p := protocol.New(name, parents...)
		ns.protocols[name] = p
		return p
	}
	for _, d := range c.Protocols {
		define(d.Name)
	}

	for _, pd := range c.Provides {
		m.RegisterProvides(ns.protocols[pd.Type], ns.protocols[pd.Protocol])
	}

	for _, od := range c.Offers {
		offer, err := adaptation.NewOffer(namedFactory(syms, od.Factory), ns.protocols[od.From], ns.protocols[od.To])
		if err != nil {
			return nil, fmt.Errorf("failed to build offer %s: %w", od.Factory, err)
		}
		m.RegisterOffer(offer)
		ns.offers = append(ns.offers, BoundOffer{Definition: od, Offer: offer})
	}

	logging.Info("Catalog", "Registered %d protocols, %d provides and %d offers with manager %s",
		len(c.Protocols), len(c.Provides), len(c.Offers), m.ID())
	return ns, nil
}

// namedFactory looks name up in syms the first time the offer is tried.
func namedFactory(syms *Symbols, name string) adaptation.Factory {
	return adaptation.Lazy(func() (adaptation.Factory, error) {
		f, ok := syms.Factory(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFactory, name)
		}
		logging.Debug("Catalog", "Resolved factory %s", name)
		return f, nil
	})
}
