package def

import (
	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/theory"
)

// Discrete builds the discrete double theory a definition describes. The
// definition is validated first.
func (d *Definition) Discrete() (*theory.DiscreteTheory[string, string], error) {
	if d.Kind != KindDiscrete {
		return nil, errors.Wrapf(errors.ErrMalformedDefinition,
			"definition has kind %q, not %q", d.Kind, KindDiscrete)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	c := cat.NewFinCategory[string, string]()
	for _, o := range d.Objects {
		c.AddOb(o.Name)
	}
	for _, m := range d.Morphisms {
		c.AddMor(m.Name, m.Src, m.Tgt)
	}
	for _, comp := range d.Composites {
		m, err := ParseDiscreteMor(comp.Result)
		if err != nil {
			return nil, err
		}
		c.SetComposite(comp.First, comp.Second, m)
	}
	return theory.Discrete(c), nil
}

// Tabulator builds the discrete tabulator theory a definition describes.
// The definition is validated first.
func (d *Definition) Tabulator() (*theory.TabTheory[string, string], error) {
	if d.Kind != KindTabulator {
		return nil, errors.Wrapf(errors.ErrMalformedDefinition,
			"definition has kind %q, not %q", d.Kind, KindTabulator)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	th := theory.NewTabTheory[string, string]()
	for _, o := range d.Objects {
		th.AddObType(o.Name)
	}
	for _, m := range d.Morphisms {
		src, err := ParseObType(m.Src)
		if err != nil {
			return nil, err
		}
		tgt, err := ParseObType(m.Tgt)
		if err != nil {
			return nil, err
		}
		th.AddMorType(m.Name, src, tgt)
	}
	for _, comp := range d.Composites {
		m, err := ParseMorType(comp.Result)
		if err != nil {
			return nil, err
		}
		th.SetComposite(comp.First, comp.Second, m)
	}
	return th, nil
}
