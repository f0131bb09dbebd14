// Package catalog loads declarative adaptation catalogs and registers them
// with an adaptation manager.
//
// # Overview
//
// A catalog is a YAML document naming abstract protocols, provides
// declarations and offers. Factories are referred to by name and looked up
// in a symbol table that plugin packages fill from their init functions:
//
//	func init() {
//	    catalog.RegisterProtocol("UKPlug", protocol.Of[*UKPlug]())
//	    catalog.RegisterFactory("uk-to-eu", adaptation.Func(newUKToEU))
//	}
//
// The matching catalog:
//
//	protocols:
//	  - name: UKStandard
//	  - name: EUStandard
//	provides:
//	  - type: UKPlug
//	    protocol: UKStandard
//	offers:
//	  - factory: uk-to-eu
//	    from: UKStandard
//	    to: EUStandard
//
// # Loading
//
// Load reads a single file or every *.yaml and *.yml file of a directory.
// LoadAll layers several sources with Merge: a protocol defined again by a
// later source replaces the earlier definition, offers and provides
// declarations accumulate.
//
// # Building
//
// Build validates a catalog, defines its protocols and registers its
// provides declarations and offers with a manager. Protocol references are
// resolved immediately. Factory names are resolved the first time the offer
// is tried, so a catalog can be registered before the plugin that provides
// its factories has been loaded; an unknown name then surfaces as a
// FactoryError from Adapt. Check and UnresolvedFactories report the same
// problems ahead of time.
package catalog
