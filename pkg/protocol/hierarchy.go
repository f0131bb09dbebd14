package protocol

// Ancestor is a protocol reached while climbing a hierarchy, together with
// the number of steps taken to reach it.
type Ancestor struct {
	Protocol *Protocol
	Distance int
}

// Hierarchy answers ancestor queries. On top of the native hierarchy of each
// protocol it keeps a side table of provides declarations, which retrofit a
// protocol onto a type without touching the type's token.
//
// A Hierarchy is not safe for concurrent mutation. Register declarations
// before sharing it between goroutines.
type Hierarchy struct {
	provides map[*Protocol][]*Protocol
}

// NewHierarchy creates a hierarchy with no provides declarations.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		provides: make(map[*Protocol][]*Protocol),
	}
}

// RegisterProvides declares that every value of typ already satisfies proto.
// Declaring the same pair twice has no further effect.
func (h *Hierarchy) RegisterProvides(typ, proto *Protocol) {
	if typ == nil || proto == nil {
		panic("protocol: RegisterProvides with nil protocol")
	}
	for _, existing := range h.provides[typ] {
		if existing == proto {
			return
		}
	}
	h.provides[typ] = append(h.provides[typ], proto)
}

// Declared returns the protocols registered against typ with RegisterProvides,
// in registration order.
func (h *Hierarchy) Declared(typ *Protocol) []*Protocol {
	return append([]*Protocol(nil), h.provides[typ]...)
}

// DirectAncestors returns the protocols one step above p: its own parents,
// then its provides declarations, then the most specific interfaces its Go
// type implements. Any is never included.
func (h *Hierarchy) DirectAncestors(p *Protocol) []*Protocol {
	var direct []*Protocol
	seen := map[*Protocol]bool{p: true, Any: true}
	add := func(q *Protocol) {
		if !seen[q] {
			seen[q] = true
			direct = append(direct, q)
		}
	}

	for _, q := range p.Parents() {
		add(q)
	}
	for _, q := range h.provides[p] {
		add(q)
	}
	if p.goType != nil {
		for _, q := range implementedInterfaces(p) {
			add(q)
		}
	}
	return direct
}

// Ancestors returns p followed by every protocol reachable from it, ordered
// by distance (most specific first). Any is always last.
func (h *Hierarchy) Ancestors(p *Protocol) []Ancestor {
	result := []Ancestor{{Protocol: p}}
	if p == Any {
		return result
	}

	seen := map[*Protocol]bool{p: true, Any: true}
	for i := 0; i < len(result); i++ {
		current := result[i]
		for _, q := range h.DirectAncestors(current.Protocol) {
			if seen[q] {
				continue
			}
			seen[q] = true
			result = append(result, Ancestor{Protocol: q, Distance: current.Distance + 1})
		}
	}

	return append(result, Ancestor{Protocol: Any, Distance: result[len(result)-1].Distance + 1})
}

// Distance returns the number of steps from `from` up to `to`.
func (h *Hierarchy) Distance(from, to *Protocol) (int, bool) {
	if from == to {
		return 0, true
	}
	for _, a := range h.Ancestors(from) {
		if a.Protocol == to {
			return a.Distance, true
		}
	}
	return 0, false
}

// Provides reports whether every value of protocol `from` satisfies `to`
// without adaptation.
func (h *Hierarchy) Provides(from, to *Protocol) bool {
	_, ok := h.Distance(from, to)
	return ok
}

// ProtocolsOf returns the protocols obj satisfies for free: its dynamic
// type and all of that type's ancestors.
func (h *Hierarchy) ProtocolsOf(obj any) []Ancestor {
	return h.Ancestors(ValueOf(obj))
}

// implementedInterfaces returns the interned interface protocols p's type
// implements, keeping only those not implied by a more specific match.
func implementedInterfaces(p *Protocol) []*Protocol {
	var matches []*Protocol
	for _, q := range knownInterfaces() {
		if q == p || q == Any {
			continue
		}
		if p.goType.Implements(q.goType) {
			matches = append(matches, q)
		}
	}

	var direct []*Protocol
	for _, q := range matches {
		if !impliedByOther(q, matches) {
			direct = append(direct, q)
		}
	}
	return direct
}

func impliedByOther(q *Protocol, matches []*Protocol) bool {
	for _, r := range matches {
		if r == q {
			continue
		}
		if r.goType.Implements(q.goType) && !q.goType.Implements(r.goType) {
			return true
		}
	}
	return false
}
