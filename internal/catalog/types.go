package catalog

// Catalog is a declarative set of protocols, provides declarations and
// offers.
type Catalog struct {
	Protocols []ProtocolDefinition `yaml:"protocols,omitempty" json:"protocols,omitempty"`
	Provides  []ProvidesDefinition `yaml:"provides,omitempty" json:"provides,omitempty"`
	Offers    []OfferDefinition    `yaml:"offers,omitempty" json:"offers,omitempty"`

	// Sources lists the files the catalog was loaded from, in load order.
	Sources []string `yaml:"-" json:"sources,omitempty"`
}

// ProtocolDefinition defines an abstract protocol. Parents are listed most
// specific first and may name other catalog protocols or registered symbols.
type ProtocolDefinition struct {
	Name        string   `yaml:"name" json:"name"`
	Parents     []string `yaml:"parents,omitempty" json:"parents,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// ProvidesDefinition declares that values of Type satisfy Protocol without
// adaptation.
type ProvidesDefinition struct {
	Type     string `yaml:"type" json:"type"`
	Protocol string `yaml:"protocol" json:"protocol"`
}

// OfferDefinition declares that the named factory adapts From into To.
type OfferDefinition struct {
	Factory     string `yaml:"factory" json:"factory"`
	From        string `yaml:"from" json:"from"`
	To          string `yaml:"to" json:"to"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// IsEmpty reports whether the catalog declares nothing.
func (c *Catalog) IsEmpty() bool {
	return len(c.Protocols) == 0 && len(c.Provides) == 0 && len(c.Offers) == 0
}
