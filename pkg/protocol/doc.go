// Package protocol models capability tokens and the hierarchy between them.
//
// A Protocol names a capability a value may satisfy. There are two kinds:
//
//   - Abstract protocols, created with New, which exist only as tokens and
//     declare their parents explicitly:
//
//     primate := protocol.New("IPrimate")
//     human := protocol.New("IHuman", primate)
//
//   - Go-type protocols, obtained with Of or TypeOf, which follow the Go type
//     system: a struct type is a child of the structs and interfaces it
//     embeds, and any type is a child of the interface protocols it
//     implements.
//
// Any, the protocol of the empty interface, is the root of every hierarchy.
//
// # Hierarchy
//
// Hierarchy answers "which protocols does this protocol (or value) already
// satisfy" and "how far up is that protocol". Besides the native hierarchy it
// keeps provides declarations, a side table used to retrofit a protocol onto
// an existing type:
//
//	h := protocol.NewHierarchy()
//	h.RegisterProvides(protocol.Of[*Source](), child)
//	h.Provides(protocol.Of[*Source](), primate) // true
//
// Distances are counted in hierarchy steps, so the most specific ancestor of
// a protocol is the one with the smallest distance.
package protocol
