package protocol

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Protocol is a capability token. Protocols compare by pointer identity.
//
// Abstract protocols are created with New and carry an explicit, ordered
// list of parents. Protocols backed by a Go type are interned by TypeOf and
// derive their parents from the type itself (embedded fields and the
// interfaces the type implements).
type Protocol struct {
	id      uint64
	name    string
	parents []*Protocol
	goType  reflect.Type
}

var nextID atomic.Uint64

// interned holds every Go-type protocol created so far.
var interned = struct {
	sync.Mutex
	byType     map[reflect.Type]*Protocol
	interfaces []*Protocol // interface-backed protocols in creation order
}{
	byType: make(map[reflect.Type]*Protocol),
}

// Any is the universal root protocol. Every value provides it.
var Any = TypeOf(reflect.TypeFor[any]())

// New creates an abstract protocol. Parents are listed most specific first
// and are fixed for the lifetime of the protocol.
func New(name string, parents ...*Protocol) *Protocol {
	for i, p := range parents {
		if p == nil {
			panic(fmt.Sprintf("protocol %q: parent %d is nil", name, i))
		}
	}
	return &Protocol{
		id:      nextID.Add(1),
		name:    name,
		parents: append([]*Protocol(nil), parents...),
	}
}

// Of returns the protocol for the Go type T. T may be a concrete type or an
// interface type.
func Of[T any]() *Protocol {
	return TypeOf(reflect.TypeFor[T]())
}

// TypeOf returns the interned protocol for t. Calling it twice with the same
// type returns the same protocol.
func TypeOf(t reflect.Type) *Protocol {
	if t == nil {
		panic("protocol: TypeOf(nil)")
	}

	interned.Lock()
	defer interned.Unlock()

	if p, ok := interned.byType[t]; ok {
		return p
	}
	p := &Protocol{
		id:     nextID.Add(1),
		name:   t.String(),
		goType: t,
	}
	interned.byType[t] = p
	if t.Kind() == reflect.Interface {
		interned.interfaces = append(interned.interfaces, p)
	}
	return p
}

// ValueOf returns the protocol of v's dynamic type. A nil value only
// provides Any.
func ValueOf(v any) *Protocol {
	if v == nil {
		return Any
	}
	return TypeOf(reflect.TypeOf(v))
}

// Name returns the protocol's display name.
func (p *Protocol) Name() string {
	return p.name
}

func (p *Protocol) String() string {
	return p.name
}

// Type returns the backing Go type, or nil for abstract protocols.
func (p *Protocol) Type() reflect.Type {
	return p.goType
}

// IsAbstract reports whether p was created with New.
func (p *Protocol) IsAbstract() bool {
	return p.goType == nil
}

// IsInterface reports whether p is backed by a Go interface type.
func (p *Protocol) IsInterface() bool {
	return p.goType != nil && p.goType.Kind() == reflect.Interface
}

// Parents returns the protocol's own parents: the declared parents of an
// abstract protocol, or the embedded struct and interface fields of a Go
// struct type. Implemented interfaces are not included; see
// Hierarchy.DirectAncestors.
func (p *Protocol) Parents() []*Protocol {
	if p.goType == nil {
		return append([]*Protocol(nil), p.parents...)
	}
	return embeddedParents(p.goType)
}

// embeddedParents returns the protocols of the anonymous fields of a struct
// type, or of the struct a pointer type points to. For pointer types the
// embedded structs are reported in pointer form as well.
func embeddedParents(t reflect.Type) []*Protocol {
	base, isPtr := t, false
	if t.Kind() == reflect.Pointer {
		base, isPtr = t.Elem(), true
	}
	if base.Kind() != reflect.Struct {
		return nil
	}

	var parents []*Protocol
	for i := 0; i < base.NumField(); i++ {
		field := base.Field(i)
		if !field.Anonymous {
			continue
		}
		ft := field.Type
		switch {
		case ft.Kind() == reflect.Interface:
			parents = append(parents, TypeOf(ft))
		case ft.Kind() == reflect.Struct:
			if isPtr {
				parents = append(parents, TypeOf(reflect.PointerTo(ft)))
			} else {
				parents = append(parents, TypeOf(ft))
			}
		case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Struct:
			parents = append(parents, TypeOf(ft))
		}
	}
	return parents
}

// knownInterfaces returns a snapshot of the interface protocols interned so far.
func knownInterfaces() []*Protocol {
	interned.Lock()
	defer interned.Unlock()
	return append([]*Protocol(nil), interned.interfaces...)
}
