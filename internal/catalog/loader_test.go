package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
protocols:
  - name: IHuman
    parents: [IPrimate]
offers:
  - factory: human-to-intermediate
    from: IHuman
    to: IIntermediate
provides:
  - type: Source
    protocol: IChild
`)

	c, err := Parse(data, "inline.yaml")
	require.NoError(t, err)

	assert.Equal(t, []ProtocolDefinition{{Name: "IHuman", Parents: []string{"IPrimate"}}}, c.Protocols)
	assert.Equal(t, []OfferDefinition{{Factory: "human-to-intermediate", From: "IHuman", To: "IIntermediate"}}, c.Offers)
	assert.Equal(t, []ProvidesDefinition{{Type: "Source", Protocol: "IChild"}}, c.Provides)
	assert.Equal(t, []string{"inline.yaml"}, c.Sources)
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil, "")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Sources)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "unknown-key.yaml"))
	require.NoError(t, err)

	_, err = Parse(data, "unknown-key.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown-key.yaml")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join("testdata", "plugs.yaml")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, c.Protocols, 3)
	assert.Equal(t, "Type A", c.Protocols[2].Description)
	assert.Len(t, c.Offers, 2)
	assert.Equal(t, []string{path}, c.Sources)
}

func TestLoad_Directory(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "layered"))
	require.NoError(t, err)

	require.Len(t, c.Protocols, 3)
	assert.Equal(t, "IPrimate", c.Protocols[0].Name)
	// Redefined by the later file, in place.
	assert.Equal(t, "IHuman", c.Protocols[1].Name)
	assert.Equal(t, "Walks upright", c.Protocols[1].Description)
	assert.Equal(t, "IChild", c.Protocols[2].Name)

	// The repeated offer is only kept once.
	require.Len(t, c.Offers, 2)
	assert.Equal(t, "primate-to-intermediate", c.Offers[0].Factory)
	assert.Equal(t, "child-to-intermediate", c.Offers[1].Factory)

	assert.Len(t, c.Provides, 1)
	assert.Equal(t, []string{
		filepath.Join("testdata", "layered", "10-primates.yaml"),
		filepath.Join("testdata", "layered", "20-children.yml"),
	}, c.Sources)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	extra := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(extra, []byte(`
protocols:
  - name: IraqStandard
offers:
  - factory: japan-to-iraq
    from: JapanStandard
    to: IraqStandard
`), 0644))

	c, err := LoadAll(filepath.Join("testdata", "plugs.yaml"), extra)
	require.NoError(t, err)

	assert.Len(t, c.Protocols, 4)
	assert.Len(t, c.Offers, 3)
	assert.Len(t, c.Sources, 2)

	empty, err := LoadAll()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestMerge(t *testing.T) {
	base := &Catalog{
		Protocols: []ProtocolDefinition{{Name: "A"}, {Name: "B"}},
		Provides:  []ProvidesDefinition{{Type: "T", Protocol: "A"}},
		Offers:    []OfferDefinition{{Factory: "a-to-b", From: "A", To: "B"}},
		Sources:   []string{"base.yaml"},
	}
	overlay := &Catalog{
		Protocols: []ProtocolDefinition{{Name: "A", Parents: []string{"B"}}, {Name: "C"}},
		Provides:  []ProvidesDefinition{{Type: "T", Protocol: "A"}, {Type: "T", Protocol: "C"}},
		Offers:    []OfferDefinition{{Factory: "b-to-c", From: "B", To: "C"}},
		Sources:   []string{"overlay.yaml"},
	}

	merged := Merge(base, overlay)

	assert.Equal(t, []ProtocolDefinition{{Name: "A", Parents: []string{"B"}}, {Name: "B"}, {Name: "C"}}, merged.Protocols)
	assert.Len(t, merged.Provides, 2)
	assert.Len(t, merged.Offers, 2)
	assert.Equal(t, []string{"base.yaml", "overlay.yaml"}, merged.Sources)

	// Inputs are left alone.
	assert.Empty(t, base.Protocols[0].Parents)
	assert.Len(t, base.Offers, 1)
}
