// Package adaptation resolves capability requests: given a value and a
// protocol, it returns a value satisfying that protocol, chaining
// independently registered offers when no single offer applies.
//
// # Overview
//
// Components declare what they can convert ("I can turn a UKStandard into an
// EUStandard") as offers, and ask for what they need ("give me an
// EUStandard for this plug") without knowing about each other:
//
//	m := adaptation.NewManager()
//	m.RegisterProvides(protocol.Of[*UKPlug](), ukStandard)
//	m.RegisterFactory(adaptation.Func(newUKToEU), ukStandard, euStandard)
//	m.RegisterFactory(adaptation.Func(newEUToJapan), euStandard, japanStandard)
//
//	japan, err := m.Adapt(plug, japanStandard) // *EUToJapan wrapping *UKToEU
//
// # Resolution
//
// A value that already provides the requested protocol (its own type, an
// ancestor of it, or a provides declaration) is returned unchanged.
// Otherwise the manager searches breadth first over simple paths of
// protocols, running each offer's factory on the value reached so far. Of
// the paths that arrive at the fewest adapters, the one whose first offer
// applies to the most specific ancestor of the value's type wins. Further
// ties are broken by discovery order; callers should not rely on which of
// two equally good adapters they receive.
//
// Factories may decline a particular value by returning NotApplicable. The
// same offer is still tried on other values reached along other paths.
// Factory errors abort the search and are returned wrapped in FactoryError.
//
// # Caching
//
// CachedFactory memoizes one adapter per adaptee without keeping either
// alive, using weak pointers and runtime cleanups.
//
// # Global manager
//
// GlobalManager, SetGlobalManager and ResetGlobalManager manage a
// process-wide manager; the package-level Adapt, RegisterFactory and friends
// act on it. Prefer passing a *Manager explicitly where possible.
package adaptation
