package adaptation

import (
	"fmt"
	"reflect"
	"sync"

	"adaptctl/pkg/protocol"
)

// Result is the outcome of a factory call: either an adapter was found, or
// the factory declined this particular adaptee.
type Result struct {
	value any
	found bool
}

// Found returns a Result carrying an adapter. A nil adapter, including a nil
// pointer, func or interface value, is treated as NotApplicable. Nil slices
// and maps are valid adapters.
func Found(v any) Result {
	if isNil(v) {
		return Result{}
	}
	return Result{value: v, found: true}
}

// NotApplicable returns the Result of a factory declining to adapt a value.
func NotApplicable() Result {
	return Result{}
}

// Value returns the adapter and whether one was found.
func (r Result) Value() (any, bool) {
	return r.value, r.found
}

// IsFound reports whether the factory produced an adapter.
func (r Result) IsFound() bool {
	return r.found
}

// Factory builds an adapter for adaptee. Declining is expressed with
// NotApplicable; a non-nil error aborts the adaptation that called it.
type Factory func(adaptee any) (Result, error)

// Func turns a plain constructor into a Factory. A nil return declines, as
// described for Found.
func Func(f func(adaptee any) any) Factory {
	return func(adaptee any) (Result, error) {
		return Found(f(adaptee)), nil
	}
}

// Typed turns a constructor over a concrete adaptee type into a Factory.
// Adaptees of any other type are declined, as are nil returns.
func Typed[A any](f func(adaptee A) any) Factory {
	return func(adaptee any) (Result, error) {
		a, ok := adaptee.(A)
		if !ok {
			return NotApplicable(), nil
		}
		return Found(f(a)), nil
	}
}

// Lazy defers building a factory until it is first called. resolve runs at
// most once; its error is returned from every call.
func Lazy(resolve func() (Factory, error)) Factory {
	load := sync.OnceValues(resolve)
	return func(adaptee any) (Result, error) {
		f, err := load()
		if err != nil {
			return NotApplicable(), err
		}
		return f(adaptee)
	}
}

// Offer states that factory can adapt values providing From into values
// providing To. Offers are immutable.
type Offer struct {
	factory Factory
	from    *protocol.Protocol
	to      *protocol.Protocol
}

// NewOffer validates and creates an offer.
func NewOffer(factory Factory, from, to *protocol.Protocol) (*Offer, error) {
	var errs ValidationErrors
	if factory == nil {
		errs = append(errs, ValidationError{Field: "factory", Message: "factory is required"})
	}
	if from == nil {
		errs = append(errs, ValidationError{Field: "from", Message: "from protocol is required"})
	}
	if to == nil {
		errs = append(errs, ValidationError{Field: "to", Message: "to protocol is required"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &Offer{factory: factory, from: from, to: to}, nil
}

// MustOffer is like NewOffer but panics on invalid input. It is meant for
// package-level registrations.
func MustOffer(factory Factory, from, to *protocol.Protocol) *Offer {
	o, err := NewOffer(factory, from, to)
	if err != nil {
		panic(err)
	}
	return o
}

// From returns the protocol the offer adapts from.
func (o *Offer) From() *protocol.Protocol { return o.from }

// To returns the protocol the offer's adapters provide.
func (o *Offer) To() *protocol.Protocol { return o.to }

// Factory returns the offer's factory.
func (o *Offer) Factory() Factory { return o.factory }

// Adapt runs the factory on adaptee.
func (o *Offer) Adapt(adaptee any) (Result, error) {
	return o.factory(adaptee)
}

func (o *Offer) String() string {
	return fmt.Sprintf("<Offer: '%s' -> '%s'>", o.from, o.to)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
