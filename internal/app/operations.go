package app

import (
	"errors"
	"fmt"

	"adaptctl/pkg/adaptation"
	"adaptctl/pkg/logging"
	"adaptctl/pkg/protocol"
)

// ErrCheckFailed is returned by Check when the catalogs have problems.
var ErrCheckFailed = errors.New("catalog check failed")

// Problem is a single finding of Check.
type Problem struct {
	Field   string `json:"field"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CheckResult summarises the loaded catalogs and their problems.
type CheckResult struct {
	Sources   []string  `json:"sources"`
	Protocols int       `json:"protocols"`
	Provides  int       `json:"provides"`
	Offers    int       `json:"offers"`
	Problems  []Problem `json:"problems"`
}

// Failed reports whether any problem is an error.
func (r CheckResult) Failed() bool {
	for _, p := range r.Problems {
		if p.Status == "error" {
			return true
		}
	}
	return false
}

// Check validates the loaded catalogs without registering them. Factories
// that are not registered are warnings, or errors when strict is set.
func (a *Application) Check(strict bool) (CheckResult, error) {
	cat := a.catalog
	syms := a.Symbols()

	result := CheckResult{
		Sources:   append([]string{}, cat.Sources...),
		Protocols: len(cat.Protocols),
		Provides:  len(cat.Provides),
		Offers:    len(cat.Offers),
		Problems:  []Problem{},
	}

	if err := cat.Check(syms); err != nil {
		var verrs adaptation.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				result.Problems = append(result.Problems, Problem{Field: v.Field, Status: "error", Message: v.Message})
			}
		} else {
			result.Problems = append(result.Problems, Problem{Status: "error", Message: err.Error()})
		}
	}

	status := "warning"
	if strict {
		status = "error"
	}
	for _, name := range cat.UnresolvedFactories(syms) {
		result.Problems = append(result.Problems, Problem{
			Field:   "factory",
			Status:  status,
			Message: fmt.Sprintf("factory %q is not registered", name),
		})
	}

	if result.Failed() {
		logging.Debug("Bootstrap", "Catalog check found %d problems", len(result.Problems))
		return result, ErrCheckFailed
	}
	return result, nil
}

// OfferRow describes one registered offer.
type OfferRow struct {
	Factory     string `json:"factory"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description,omitempty"`
}

// OfferList lists the offers registered with a manager, in registration order.
type OfferList struct {
	Manager string     `json:"manager"`
	Offers  []OfferRow `json:"offers"`
	Total   int        `json:"total"`
}

// Offers builds the catalogs and lists their offers.
func (a *Application) Offers() (OfferList, error) {
	s, err := a.Services()
	if err != nil {
		return OfferList{}, err
	}

	list := OfferList{Manager: s.Manager.ID(), Offers: []OfferRow{}}
	for _, bound := range s.Namespace.Offers() {
		list.Offers = append(list.Offers, OfferRow{
			Factory:     bound.Definition.Factory,
			From:        bound.Offer.From().Name(),
			To:          bound.Offer.To().Name(),
			Description: bound.Definition.Description,
		})
	}
	list.Total = len(list.Offers)
	return list, nil
}

// ProtocolRow describes one resolvable protocol.
type ProtocolRow struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Parents  []string `json:"parents"`
	Provides []string `json:"provides"`
}

// ProtocolList lists every protocol name known to the catalogs.
type ProtocolList struct {
	Protocols []ProtocolRow `json:"protocols"`
	Total     int           `json:"total"`
}

// Protocols builds the catalogs and lists the protocols they can refer to.
func (a *Application) Protocols() (ProtocolList, error) {
	s, err := a.Services()
	if err != nil {
		return ProtocolList{}, err
	}

	list := ProtocolList{Protocols: []ProtocolRow{}}
	for _, name := range s.Namespace.ProtocolNames() {
		p, err := s.Namespace.Protocol(name)
		if err != nil {
			return ProtocolList{}, err
		}
		list.Protocols = append(list.Protocols, ProtocolRow{
			Name:     name,
			Kind:     protocolKind(p),
			Parents:  protocolNames(p.Parents()),
			Provides: protocolNames(s.Manager.Hierarchy().Declared(p)),
		})
	}
	list.Total = len(list.Protocols)
	return list, nil
}

func protocolKind(p *protocol.Protocol) string {
	switch {
	case p.IsAbstract():
		return "abstract"
	case p.IsInterface():
		return "interface"
	default:
		return "type"
	}
}

func protocolNames(protocols []*protocol.Protocol) []string {
	names := make([]string, 0, len(protocols))
	for _, p := range protocols {
		names = append(names, p.Name())
	}
	return names
}

// RouteRow describes one planned route.
type RouteRow struct {
	Rank      int      `json:"rank"`
	Route     string   `json:"route"`
	Adapters  int      `json:"adapters"`
	Factories []string `json:"factories"`
}

// RouteList lists the routes between two protocols, best first.
type RouteList struct {
	Manager string     `json:"manager"`
	From    string     `json:"from"`
	To      string     `json:"to"`
	Routes  []RouteRow `json:"routes"`
	Total   int        `json:"total"`
}

// Routes builds the catalogs and plans the routes from one named protocol to
// another. A non-positive maxDepth falls back to the configured depth.
func (a *Application) Routes(from, to string, maxDepth int) (RouteList, error) {
	s, err := a.Services()
	if err != nil {
		return RouteList{}, err
	}
	fromProto, err := s.Namespace.Protocol(from)
	if err != nil {
		return RouteList{}, err
	}
	toProto, err := s.Namespace.Protocol(to)
	if err != nil {
		return RouteList{}, err
	}

	if maxDepth <= 0 && a.config.AdaptctlConfig != nil {
		maxDepth = a.config.AdaptctlConfig.RouteDepth
	}

	factoryNames := make(map[*adaptation.Offer]string)
	for _, bound := range s.Namespace.Offers() {
		factoryNames[bound.Offer] = bound.Definition.Factory
	}

	list := RouteList{Manager: s.Manager.ID(), From: from, To: to, Routes: []RouteRow{}}
	for i, route := range s.Manager.Routes(fromProto, toProto, maxDepth) {
		factories := make([]string, 0, route.Len())
		for _, o := range route.Offers {
			factories = append(factories, factoryNames[o])
		}
		list.Routes = append(list.Routes, RouteRow{
			Rank:      i + 1,
			Route:     route.String(),
			Adapters:  route.Len(),
			Factories: factories,
		})
	}
	list.Total = len(list.Routes)
	return list, nil
}

// ProvidesResult answers whether one protocol provides another.
type ProvidesResult struct {
	Type      string   `json:"type"`
	Protocol  string   `json:"protocol"`
	Provides  bool     `json:"provides"`
	Distance  *int     `json:"distance,omitempty"`
	Ancestors []string `json:"ancestors"`
}

// Provides builds the catalogs and reports whether values of the named type
// satisfy the named protocol without adaptation.
func (a *Application) Provides(typeName, protoName string) (ProvidesResult, error) {
	s, err := a.Services()
	if err != nil {
		return ProvidesResult{}, err
	}
	typ, err := s.Namespace.Protocol(typeName)
	if err != nil {
		return ProvidesResult{}, err
	}
	proto, err := s.Namespace.Protocol(protoName)
	if err != nil {
		return ProvidesResult{}, err
	}

	h := s.Manager.Hierarchy()
	result := ProvidesResult{
		Type:     typeName,
		Protocol: protoName,
		Provides: s.Manager.ProvidesProtocol(typ, proto),
	}
	if d, ok := h.Distance(typ, proto); ok {
		result.Distance = &d
	}
	for _, ancestor := range h.Ancestors(typ) {
		result.Ancestors = append(result.Ancestors, ancestor.Protocol.Name())
	}
	return result, nil
}
