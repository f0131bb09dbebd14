package adaptation

import (
	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"
)

// Registry stores adaptation offers keyed by their from-protocol, plus the
// provides declarations of its hierarchy. It is append-only and not safe for
// concurrent mutation.
type Registry struct {
	hierarchy *protocol.Hierarchy
	byFrom    map[*protocol.Protocol][]*Offer
	all       []*Offer
}

// NewRegistry creates an empty registry with its own hierarchy.
func NewRegistry() *Registry {
	return &Registry{
		hierarchy: protocol.NewHierarchy(),
		byFrom:    make(map[*protocol.Protocol][]*Offer),
	}
}

// Hierarchy returns the hierarchy holding the registry's provides declarations.
func (r *Registry) Hierarchy() *protocol.Hierarchy {
	return r.hierarchy
}

// RegisterOffer appends offer to the offers of its from-protocol.
func (r *Registry) RegisterOffer(offer *Offer) {
	r.byFrom[offer.From()] = append(r.byFrom[offer.From()], offer)
	r.all = append(r.all, offer)

	logging.Debug("Registry", "Registered offer %s", offer)
}

// RegisterFactory builds an offer from its arguments and registers it.
func (r *Registry) RegisterFactory(factory Factory, from, to *protocol.Protocol) error {
	offer, err := NewOffer(factory, from, to)
	if err != nil {
		return err
	}
	r.RegisterOffer(offer)
	return nil
}

// RegisterProvides declares that values of typ satisfy proto without adaptation.
func (r *Registry) RegisterProvides(typ, proto *protocol.Protocol) {
	r.hierarchy.RegisterProvides(typ, proto)

	logging.Debug("Registry", "Registered %s provides %s", typ, proto)
}

// OffersFrom returns the offers whose from-protocol is exactly p, in
// registration order.
func (r *Registry) OffersFrom(p *protocol.Protocol) []*Offer {
	offers := r.byFrom[p]
	result := make([]*Offer, len(offers))
	copy(result, offers)
	return result
}

// Offers returns every registered offer in registration order.
func (r *Registry) Offers() []*Offer {
	result := make([]*Offer, len(r.all))
	copy(result, r.all)
	return result
}

// Len returns the number of registered offers.
func (r *Registry) Len() int {
	return len(r.all)
}
