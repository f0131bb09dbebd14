package adaptation

// Wrapper is implemented by adapters that expose the value they wrap.
type Wrapper interface {
	Wrapped() any
}

// Adapter can be embedded by adapter types to record their adaptee.
//
//	type ukToEU struct {
//		adaptation.Adapter
//	}
//
//	factory := adaptation.Func(func(a any) any {
//		return &ukToEU{Adapter: adaptation.NewAdapter(a)}
//	})
type Adapter struct {
	Adaptee any
}

// NewAdapter returns an Adapter wrapping adaptee.
func NewAdapter(adaptee any) Adapter {
	return Adapter{Adaptee: adaptee}
}

// Wrapped implements Wrapper.
func (a Adapter) Wrapped() any {
	return a.Adaptee
}

// Unwrap returns the chain of values starting at v and following each
// Wrapper inward, ending at the original object.
func Unwrap(v any) []any {
	chain := []any{v}
	for {
		w, ok := v.(Wrapper)
		if !ok {
			return chain
		}
		v = w.Wrapped()
		chain = append(chain, v)
		// Adapters are built bottom-up, so a chain longer than this is a
		// self-referencing wrapper.
		if len(chain) > maxUnwrapDepth {
			return chain
		}
	}
}

const maxUnwrapDepth = 1024
