package adaptation

import (
	"strings"

	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"
)

// hop is one step of a search path: the protocol reached, the value that
// provides it, and the offer used to get there (nil for the root).
type hop struct {
	protocol *protocol.Protocol
	value    any
	offer    *Offer
}

// searchPath is a simple path through the offer graph. A protocol never
// appears twice on the same path.
type searchPath struct {
	hops []hop

	// first is the hierarchy distance climbed from the adaptee's own type to
	// the from-protocol of the first offer; climb sums it over every hop.
	first int
	climb int
	seq   int
}

func (p *searchPath) tail() hop {
	return p.hops[len(p.hops)-1]
}

func (p *searchPath) visits(proto *protocol.Protocol) bool {
	for _, h := range p.hops {
		if h.protocol == proto {
			return true
		}
	}
	return false
}

func (p *searchPath) extend(offer *Offer, value any, distance, seq int) *searchPath {
	hops := make([]hop, len(p.hops), len(p.hops)+1)
	copy(hops, p.hops)
	hops = append(hops, hop{protocol: offer.To(), value: value, offer: offer})

	first := p.first
	if len(p.hops) == 1 {
		first = distance
	}
	return &searchPath{
		hops:  hops,
		first: first,
		climb: p.climb + distance,
		seq:   seq,
	}
}

// preferredTo orders candidates found at the same depth.
func (p *searchPath) preferredTo(other *searchPath) bool {
	if p.first != other.first {
		return p.first < other.first
	}
	if p.climb != other.climb {
		return p.climb < other.climb
	}
	return p.seq < other.seq
}

func (p *searchPath) String() string {
	names := make([]string, 0, len(p.hops))
	for _, h := range p.hops {
		names = append(names, h.protocol.Name())
	}
	return strings.Join(names, " -> ")
}

// search explores simple paths breadth first, starting at the adaptee's own
// type. Factories run as paths are extended, so a factory declining one value
// does not stop the same offer from being tried on a value reached along a
// different path. The search stops at the first depth where some path
// reaches a protocol providing `to`.
func (m *Manager) search(obj any, to *protocol.Protocol) (any, bool, error) {
	h := m.Hierarchy()

	root := &searchPath{hops: []hop{{protocol: protocol.ValueOf(obj), value: obj}}}
	frontier := []*searchPath{root}
	seq := 0

	for depth := 1; len(frontier) > 0; depth++ {
		var next []*searchPath
		var best *searchPath

		for _, path := range frontier {
			tail := path.tail()
			for _, ancestor := range h.Ancestors(tail.protocol) {
				for _, offer := range m.registry.byFrom[ancestor.Protocol] {
					if path.visits(offer.To()) {
						continue
					}

					res, err := offer.Adapt(tail.value)
					if err != nil {
						return nil, false, &FactoryError{Offer: offer, Err: err}
					}
					value, ok := res.Value()
					if !ok {
						continue
					}

					seq++
					extended := path.extend(offer, value, ancestor.Distance, seq)
					if h.Provides(offer.To(), to) {
						if best == nil || extended.preferredTo(best) {
							best = extended
						}
						continue
					}
					next = append(next, extended)
				}
			}
		}

		if best != nil {
			logging.Debug("Adaptation", "Adapted %s to %s via %s", root.tail().protocol, to, best)
			return best.tail().value, true, nil
		}

		logging.Debug("Adaptation", "Depth %d: %d open paths towards %s", depth, len(next), to)
		frontier = next
	}

	return nil, false, nil
}
