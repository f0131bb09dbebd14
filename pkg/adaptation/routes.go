package adaptation

import (
	"sort"
	"strings"

	"adaptctl/pkg/protocol"
)

// DefaultRouteDepth bounds Routes when the caller passes a non-positive depth.
const DefaultRouteDepth = 6

// Route is a chain of offers leading from one protocol to another, as
// planned without running any factory.
type Route struct {
	Offers []*Offer
	// First is the hierarchy distance climbed before the first offer.
	First int
	// Climb is the total hierarchy distance climbed along the route.
	Climb int

	seq int
}

// Len returns the number of adapters the route would build.
func (r Route) Len() int {
	return len(r.Offers)
}

func (r Route) String() string {
	if len(r.Offers) == 0 {
		return "(no adaptation)"
	}
	parts := []string{r.Offers[0].From().Name()}
	for _, o := range r.Offers {
		parts = append(parts, o.To().Name())
	}
	return strings.Join(parts, " -> ")
}

// Routes lists the offer chains Adapt could follow from values providing
// `from` to `to`, best first. Conditional factories may still decline at
// adaptation time, so a listed route is a possibility, not a promise.
// Routes longer than maxDepth are not explored.
func (m *Manager) Routes(from, to *protocol.Protocol, maxDepth int) []Route {
	if maxDepth <= 0 {
		maxDepth = DefaultRouteDepth
	}
	h := m.Hierarchy()
	if h.Provides(from, to) {
		return []Route{{}}
	}

	type partial struct {
		route     Route
		protocols []*protocol.Protocol
	}

	var routes []Route
	seq := 0
	frontier := []partial{{protocols: []*protocol.Protocol{from}}}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		var next []partial
		for _, p := range frontier {
			tail := p.protocols[len(p.protocols)-1]
			for _, ancestor := range h.Ancestors(tail) {
				for _, offer := range m.registry.byFrom[ancestor.Protocol] {
					if containsProtocol(p.protocols, offer.To()) {
						continue
					}

					seq++
					route := Route{
						Offers: append(append([]*Offer(nil), p.route.Offers...), offer),
						First:  p.route.First,
						Climb:  p.route.Climb + ancestor.Distance,
						seq:    seq,
					}
					if depth == 1 {
						route.First = ancestor.Distance
					}

					if h.Provides(offer.To(), to) {
						routes = append(routes, route)
						continue
					}
					next = append(next, partial{
						route:     route,
						protocols: append(append([]*protocol.Protocol(nil), p.protocols...), offer.To()),
					})
				}
			}
		}
		frontier = next
	}

	sort.SliceStable(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if a.Len() != b.Len() {
			return a.Len() < b.Len()
		}
		if a.First != b.First {
			return a.First < b.First
		}
		if a.Climb != b.Climb {
			return a.Climb < b.Climb
		}
		return a.seq < b.seq
	})
	return routes
}

func containsProtocol(protocols []*protocol.Protocol, p *protocol.Protocol) bool {
	for _, q := range protocols {
		if q == p {
			return true
		}
	}
	return false
}
