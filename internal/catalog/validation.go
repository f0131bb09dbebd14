package catalog

import (
	"fmt"
	"slices"
	"strings"

	"adaptctl/pkg/adaptation"
)

// Validate checks the catalog's structure: required fields, duplicate
// protocol names and parent cycles. References to protocols that are not
// defined in the catalog are not checked here; see Check.
func (c *Catalog) Validate() error {
	var errs adaptation.ValidationErrors

	defined := make(map[string]int)
	for i, p := range c.Protocols {
		field := fmt.Sprintf("protocols[%d]", i)
		if p.Name == "" {
			errs = append(errs, adaptation.ValidationError{Field: field + ".name", Message: "protocol name is required"})
			continue
		}
		if j, dup := defined[p.Name]; dup {
			errs = append(errs, adaptation.ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("protocol %q is already defined by protocols[%d]", p.Name, j),
			})
			continue
		}
		defined[p.Name] = i

		for k, parent := range p.Parents {
			parentField := fmt.Sprintf("%s.parents[%d]", field, k)
			switch {
			case parent == "":
				errs = append(errs, adaptation.ValidationError{Field: parentField, Message: "parent name is required"})
			case parent == p.Name:
				errs = append(errs, adaptation.ValidationError{Field: parentField, Message: "a protocol cannot be its own parent"})
			case slices.Index(p.Parents, parent) < k:
				errs = append(errs, adaptation.ValidationError{Field: parentField, Message: fmt.Sprintf("parent %q is listed twice", parent)})
			}
		}
	}
	errs = append(errs, c.parentCycles(defined)...)

	for i, p := range c.Provides {
		field := fmt.Sprintf("provides[%d]", i)
		if p.Type == "" {
			errs = append(errs, adaptation.ValidationError{Field: field + ".type", Message: "type is required"})
		}
		if p.Protocol == "" {
			errs = append(errs, adaptation.ValidationError{Field: field + ".protocol", Message: "protocol is required"})
		}
	}

	for i, o := range c.Offers {
		field := fmt.Sprintf("offers[%d]", i)
		if o.Factory == "" {
			errs = append(errs, adaptation.ValidationError{Field: field + ".factory", Message: "factory is required"})
		}
		if o.From == "" {
			errs = append(errs, adaptation.ValidationError{Field: field + ".from", Message: "from protocol is required"})
		}
		if o.To == "" {
			errs = append(errs, adaptation.ValidationError{Field: field + ".to", Message: "to protocol is required"})
		}
		if o.From != "" && o.From == o.To {
			errs = append(errs, adaptation.ValidationError{Field: field + ".to", Message: "from and to must differ"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// parentCycles reports every cycle among the parents of catalog-defined
// protocols once, attributed to the protocol where it was first entered.
func (c *Catalog) parentCycles(defined map[string]int) adaptation.ValidationErrors {
	const (
		unvisited = iota
		visiting
		done
	)

	var errs adaptation.ValidationErrors
	state := make(map[string]int)
	var stack []string

	var visit func(name string)
	visit = func(name string) {
		state[name] = visiting
		stack = append(stack, name)

		for _, parent := range c.Protocols[defined[name]].Parents {
			if parent == name {
				continue
			}
			if _, ok := defined[parent]; !ok {
				continue
			}
			switch state[parent] {
			case visiting:
				start := slices.Index(stack, parent)
				cycle := append(slices.Clone(stack[start:]), parent)
				errs = append(errs, adaptation.ValidationError{
					Field:   fmt.Sprintf("protocols[%d].parents", defined[parent]),
					Message: "parent cycle: " + strings.Join(cycle, " -> "),
				})
			case unvisited:
				visit(parent)
			}
		}

		stack = stack[:len(stack)-1]
		state[name] = done
	}

	for _, p := range c.Protocols {
		if _, ok := defined[p.Name]; ok && state[p.Name] == unvisited {
			visit(p.Name)
		}
	}
	return errs
}

// Check validates the catalog and resolves every protocol reference against
// the catalog's own protocols and syms. Catalog protocols may not reuse a
// name registered in syms. Factory names are not checked; see
// UnresolvedFactories.
func (c *Catalog) Check(syms *Symbols) error {
	if syms == nil {
		syms = DefaultSymbols()
	}

	var errs adaptation.ValidationErrors
	if err := c.Validate(); err != nil {
		errs = append(errs, err.(adaptation.ValidationErrors)...)
	}

	known := func(name string) bool {
		if name == "" {
			return true // reported by Validate
		}
		if _, ok := syms.Protocol(name); ok {
			return true
		}
		return slices.ContainsFunc(c.Protocols, func(p ProtocolDefinition) bool { return p.Name == name })
	}
	unknown := func(field, name string) {
		errs = append(errs, adaptation.ValidationError{Field: field, Message: fmt.Sprintf("%s: %q", ErrUnknownProtocol, name)})
	}

	for i, p := range c.Protocols {
		if _, clash := syms.Protocol(p.Name); clash {
			errs = append(errs, adaptation.ValidationError{
				Field:   fmt.Sprintf("protocols[%d].name", i),
				Message: fmt.Sprintf("%s: %q", ErrDuplicateSymbol, p.Name),
			})
		}
		for k, parent := range p.Parents {
			if !known(parent) {
				unknown(fmt.Sprintf("protocols[%d].parents[%d]", i, k), parent)
			}
		}
	}
	for i, p := range c.Provides {
		if !known(p.Type) {
			unknown(fmt.Sprintf("provides[%d].type", i), p.Type)
		}
		if !known(p.Protocol) {
			unknown(fmt.Sprintf("provides[%d].protocol", i), p.Protocol)
		}
	}
	for i, o := range c.Offers {
		if !known(o.From) {
			unknown(fmt.Sprintf("offers[%d].from", i), o.From)
		}
		if !known(o.To) {
			unknown(fmt.Sprintf("offers[%d].to", i), o.To)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnresolvedFactories returns the sorted, de-duplicated factory names used
// by the catalog's offers that syms does not know.
func (c *Catalog) UnresolvedFactories(syms *Symbols) []string {
	if syms == nil {
		syms = DefaultSymbols()
	}

	var missing []string
	for _, o := range c.Offers {
		if o.Factory == "" {
			continue
		}
		if _, ok := syms.Factory(o.Factory); !ok && !slices.Contains(missing, o.Factory) {
			missing = append(missing, o.Factory)
		}
	}
	slices.Sort(missing)
	return missing
}
