// Package def loads declarative theory definitions from TOML files and
// builds executable theories from them.
package def

import (
	"github.com/BurntSushi/toml"

	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/logger"
)

// Theory kinds accepted in definition files.
const (
	KindDiscrete  = "discrete"
	KindTabulator = "tabulator"
)

// Definition is the on-disk description of a double theory.
type Definition struct {
	// Kind selects the realization: "discrete" or "tabulator".
	Kind string `toml:"kind"`

	// Name identifies the theory in CLI output. Optional.
	Name string `toml:"name"`

	Objects    []ObjectDef    `toml:"object"`
	Morphisms  []MorphismDef  `toml:"morphism"`
	Composites []CompositeDef `toml:"composite"`
}

// ObjectDef declares a basic object type.
type ObjectDef struct {
	Name string `toml:"name"`
}

// MorphismDef declares a basic morphism type. For tabulator theories the
// endpoints are type expressions; for discrete theories they are object
// names.
type MorphismDef struct {
	Name string `toml:"name"`
	Src  string `toml:"src"`
	Tgt  string `toml:"tgt"`
}

// CompositeDef declares the composite of two consecutive morphism types.
// Result is "id <ob>" or a generator name for discrete theories, and a
// morphism type expression for tabulator theories.
type CompositeDef struct {
	First  string `toml:"first"`
	Second string `toml:"second"`
	Result string `toml:"result"`
}

// Load reads and decodes a definition file.
func Load(path string) (*Definition, error) {
	var d Definition
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, errors.Wrapf(err, "failed to decode theory definition %s", path)
	}
	logger.Logger.Debugw("loaded theory definition",
		"path", path,
		"kind", d.Kind,
		"objects", len(d.Objects),
		"morphisms", len(d.Morphisms),
	)
	return &d, nil
}

// Parse decodes a definition from raw TOML.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "failed to decode theory definition")
	}
	return &d, nil
}
