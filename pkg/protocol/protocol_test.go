package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type baseDoc struct {
	title string
}

type richDoc struct {
	baseDoc
	markup string
}

type protoTestNamer interface {
	ProtoTestName() string
}

type protoTestFullNamer interface {
	protoTestNamer
	ProtoTestFullName() string
}

type person struct {
	first, last string
}

func (p person) ProtoTestName() string     { return p.first }
func (p person) ProtoTestFullName() string { return p.first + " " + p.last }

type nickname struct {
	nick string
}

func (n nickname) ProtoTestName() string { return n.nick }

func protocolsOf(ancestors []Ancestor) []*Protocol {
	out := make([]*Protocol, 0, len(ancestors))
	for _, a := range ancestors {
		out = append(out, a.Protocol)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("declared parents are kept in order", func(t *testing.T) {
		a := New("A")
		b := New("B")
		c := New("C", a, b)

		assert.Equal(t, "C", c.Name())
		assert.Equal(t, "C", c.String())
		assert.True(t, c.IsAbstract())
		assert.False(t, c.IsInterface())
		assert.Nil(t, c.Type())
		assert.Equal(t, []*Protocol{a, b}, c.Parents())
	})

	t.Run("same name yields distinct tokens", func(t *testing.T) {
		assert.NotSame(t, New("Same"), New("Same"))
	})

	t.Run("nil parent panics", func(t *testing.T) {
		assert.Panics(t, func() { New("Broken", nil) })
	})
}

func TestOf(t *testing.T) {
	t.Run("interned per type", func(t *testing.T) {
		assert.Same(t, Of[richDoc](), Of[richDoc]())
		assert.NotSame(t, Of[richDoc](), Of[*richDoc]())
	})

	t.Run("interface protocols", func(t *testing.T) {
		p := Of[protoTestNamer]()
		assert.True(t, p.IsInterface())
		assert.False(t, p.IsAbstract())
		assert.Equal(t, "protocol.protoTestNamer", p.Name())
	})

	t.Run("value of nil is Any", func(t *testing.T) {
		assert.Same(t, Any, ValueOf(nil))
		assert.Same(t, Of[person](), ValueOf(person{}))
	})
}

func TestEmbeddedParents(t *testing.T) {
	assert.Equal(t, []*Protocol{Of[baseDoc]()}, Of[richDoc]().Parents())
	assert.Equal(t, []*Protocol{Of[*baseDoc]()}, Of[*richDoc]().Parents())
	assert.Empty(t, Of[baseDoc]().Parents())
	assert.Empty(t, Of[int]().Parents())
}

func TestHierarchy_Ancestors(t *testing.T) {
	t.Run("abstract diamond", func(t *testing.T) {
		h := NewHierarchy()
		top := New("Top")
		left := New("Left", top)
		right := New("Right", top)
		bottom := New("Bottom", left, right)

		got := h.Ancestors(bottom)
		assert.Equal(t, []Ancestor{
			{Protocol: bottom, Distance: 0},
			{Protocol: left, Distance: 1},
			{Protocol: right, Distance: 1},
			{Protocol: top, Distance: 2},
			{Protocol: Any, Distance: 3},
		}, got)
	})

	t.Run("Any has no ancestors", func(t *testing.T) {
		h := NewHierarchy()
		assert.Equal(t, []Ancestor{{Protocol: Any}}, h.Ancestors(Any))
	})

	t.Run("struct embedding", func(t *testing.T) {
		h := NewHierarchy()
		d, ok := h.Distance(Of[*richDoc](), Of[*baseDoc]())
		require.True(t, ok)
		assert.Equal(t, 1, d)
		assert.False(t, h.Provides(Of[*baseDoc](), Of[*richDoc]()))
	})

	t.Run("implemented interfaces most specific first", func(t *testing.T) {
		namer := Of[protoTestNamer]()
		fullNamer := Of[protoTestFullNamer]()
		h := NewHierarchy()

		got := protocolsOf(h.Ancestors(Of[person]()))
		assert.Equal(t, []*Protocol{Of[person](), fullNamer, namer, Any}, got)

		d, ok := h.Distance(Of[nickname](), namer)
		require.True(t, ok)
		assert.Equal(t, 1, d)
		assert.False(t, h.Provides(Of[nickname](), fullNamer))
	})

	t.Run("interface embedding", func(t *testing.T) {
		h := NewHierarchy()
		assert.True(t, h.Provides(Of[protoTestFullNamer](), Of[protoTestNamer]()))
		assert.False(t, h.Provides(Of[protoTestNamer](), Of[protoTestFullNamer]()))
	})
}

func TestHierarchy_RegisterProvides(t *testing.T) {
	primate := New("IPrimate")
	human := New("IHuman", primate)
	child := New("IChild", human)

	h := NewHierarchy()
	source := Of[*baseDoc]()
	assert.False(t, h.Provides(source, child))

	h.RegisterProvides(source, child)
	h.RegisterProvides(source, child)

	assert.Equal(t, []*Protocol{child}, h.Declared(source))
	for want, p := range map[int]*Protocol{1: child, 2: human, 3: primate} {
		d, ok := h.Distance(source, p)
		require.True(t, ok, p.Name())
		assert.Equal(t, want, d, p.Name())
	}

	// Types embedding the declared type inherit the declaration.
	assert.True(t, h.Provides(Of[*richDoc](), primate))

	// Declarations are local to the hierarchy.
	assert.False(t, NewHierarchy().Provides(source, child))
}

func TestHierarchy_ProtocolsOf(t *testing.T) {
	h := NewHierarchy()
	got := protocolsOf(h.ProtocolsOf(&richDoc{markup: "md"}))
	require.NotEmpty(t, got)
	assert.Same(t, Of[*richDoc](), got[0])
	assert.Contains(t, got, Of[*baseDoc]())
	assert.Same(t, Any, got[len(got)-1])

	assert.Equal(t, []*Protocol{Any}, protocolsOf(h.ProtocolsOf(nil)))
}

func TestHierarchy_ProvidesAny(t *testing.T) {
	h := NewHierarchy()
	for _, p := range []*Protocol{New("Lonely"), Of[int](), Of[protoTestNamer](), Any} {
		assert.True(t, h.Provides(p, Any), p.Name())
	}
}
