package def_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/def"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/theory"
)

const signedCategoryTOML = `
kind = "discrete"
name = "signed-category"

[[object]]
name = "*"

[[morphism]]
name = "n"
src = "*"
tgt = "*"

[[composite]]
first = "n"
second = "n"
result = "id *"
`

const walkingTabulatorTOML = `
kind = "tabulator"
name = "walking-tabulator"

[[object]]
name = "*"

[[morphism]]
name = "m"
src = "*"
tgt = "tab hom *"
`

func TestParseAndBuildDiscrete(t *testing.T) {
	d, err := def.Parse([]byte(signedCategoryTOML))
	require.NoError(t, err)
	assert.Equal(t, "signed-category", d.Name)
	require.NoError(t, d.Validate())

	disc, err := d.Discrete()
	require.NoError(t, err)
	th := disc.Dbl()

	n := cat.Mor[string, string](cat.MorGen[string, string]{Gen: "n"})
	assert.True(t, th.HasObType("*"))
	assert.True(t, th.HasMorType(n))

	got, err := th.ComposeTypes(cat.PairPath[string](n, n))
	require.NoError(t, err)
	assert.Equal(t, cat.Mor[string, string](cat.MorId[string, string]{Ob: "*"}), got)
}

func TestParseAndBuildTabulator(t *testing.T) {
	d, err := def.Parse([]byte(walkingTabulatorTOML))
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	th, err := d.Tabulator()
	require.NoError(t, err)

	x := theory.TabObType[string, string](theory.TabObBasic[string, string]{Name: "*"})
	m := theory.TabMorType[string, string](theory.TabMorBasic[string, string]{Name: "m"})
	assert.True(t, th.HasObType(x))
	assert.True(t, th.HasMorType(m))
	assert.Equal(t, x, th.Src(m))
	assert.Equal(t, th.Tabulator(th.HomType(x)), th.Tgt(m))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signed.toml")
	require.NoError(t, os.WriteFile(path, []byte(signedCategoryTOML), 0o644))

	d, err := def.Load(path)
	require.NoError(t, err)
	assert.Equal(t, def.KindDiscrete, d.Kind)
	assert.Len(t, d.Morphisms, 1)

	_, err = def.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidateRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		edit func(*def.Definition)
	}{
		{"unknown kind", func(d *def.Definition) { d.Kind = "monoidal" }},
		{"duplicate object", func(d *def.Definition) {
			d.Objects = append(d.Objects, def.ObjectDef{Name: "*"})
		}},
		{"duplicate morphism", func(d *def.Definition) {
			d.Morphisms = append(d.Morphisms, def.MorphismDef{Name: "n", Src: "*", Tgt: "*"})
		}},
		{"dangling src", func(d *def.Definition) { d.Morphisms[0].Src = "missing" }},
		{"dangling composite", func(d *def.Definition) { d.Composites[0].First = "missing" }},
		{"bad result", func(d *def.Definition) { d.Composites[0].Result = "id" }},
		{"undeclared result", func(d *def.Definition) { d.Composites[0].Result = "missing" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := def.Parse([]byte(signedCategoryTOML))
			require.NoError(t, err)
			tc.edit(d)
			err = d.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMalformedDefinition))
		})
	}
}

func TestTypeExpressions(t *testing.T) {
	x, err := def.ParseObType("tab hom tab m")
	require.NoError(t, err)
	m := theory.TabMorBasic[string, string]{Name: "m"}
	want := theory.TabTabulator[string, string]{
		Mor: theory.TabHom[string, string]{
			Ob: theory.TabTabulator[string, string]{Mor: m},
		},
	}
	assert.Equal(t, theory.TabObType[string, string](want), x)

	_, err = def.ParseObType("")
	require.Error(t, err)
	_, err = def.ParseMorType("hom * extra")
	require.Error(t, err)

	id, err := def.ParseDiscreteMor("id *")
	require.NoError(t, err)
	assert.Equal(t, cat.Mor[string, string](cat.MorId[string, string]{Ob: "*"}), id)
	_, err = def.ParseDiscreteMor("id")
	require.Error(t, err)
}

func TestBuildWrongKind(t *testing.T) {
	d, err := def.Parse([]byte(signedCategoryTOML))
	require.NoError(t, err)
	_, err = d.Tabulator()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedDefinition))
}
