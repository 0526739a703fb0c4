package def

import (
	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/set"
	"github.com/teranos/catena/theory"
)

// Validate checks a definition for structural problems before building:
// an unknown kind, duplicate or empty names, endpoints or composites
// referring to undeclared generators, and unparseable type expressions.
func (d *Definition) Validate() error {
	if d.Kind != KindDiscrete && d.Kind != KindTabulator {
		return errors.Wrapf(errors.ErrMalformedDefinition, "unknown theory kind %q", d.Kind)
	}

	var obs, mors set.FinSet[string]
	for _, o := range d.Objects {
		if o.Name == "" {
			return errors.Wrap(errors.ErrMalformedDefinition, "object with empty name")
		}
		if !obs.Insert(o.Name) {
			return errors.Wrapf(errors.ErrMalformedDefinition, "duplicate object %q", o.Name)
		}
	}
	for _, m := range d.Morphisms {
		if m.Name == "" {
			return errors.Wrap(errors.ErrMalformedDefinition, "morphism with empty name")
		}
		if !mors.Insert(m.Name) {
			return errors.Wrapf(errors.ErrMalformedDefinition, "duplicate morphism %q", m.Name)
		}
	}

	for _, m := range d.Morphisms {
		for _, end := range []string{m.Src, m.Tgt} {
			if err := d.checkObExpr(end, obs, mors); err != nil {
				return errors.Wrapf(err, "morphism %q", m.Name)
			}
		}
	}

	for _, c := range d.Composites {
		if !mors.Contains(c.First) {
			return errors.Wrapf(errors.ErrMalformedDefinition,
				"composite refers to undeclared morphism %q", c.First)
		}
		if !mors.Contains(c.Second) {
			return errors.Wrapf(errors.ErrMalformedDefinition,
				"composite refers to undeclared morphism %q", c.Second)
		}
		if err := d.checkMorExpr(c.Result, obs, mors); err != nil {
			return errors.Wrapf(err, "composite (%q, %q)", c.First, c.Second)
		}
	}
	return nil
}

// checkObExpr validates a src/tgt field against the declared generators.
func (d *Definition) checkObExpr(expr string, obs, mors set.FinSet[string]) error {
	if d.Kind == KindDiscrete {
		if !obs.Contains(expr) {
			return errors.Wrapf(errors.ErrMalformedDefinition, "undeclared object %q", expr)
		}
		return nil
	}
	x, err := ParseObType(expr)
	if err != nil {
		return err
	}
	return checkObTypeRefs(x, obs, mors)
}

// checkMorExpr validates a composite result against the declared generators.
func (d *Definition) checkMorExpr(expr string, obs, mors set.FinSet[string]) error {
	if d.Kind == KindDiscrete {
		m, err := ParseDiscreteMor(expr)
		if err != nil {
			return err
		}
		switch m := m.(type) {
		case cat.MorId[string, string]:
			if !obs.Contains(m.Ob) {
				return errors.Wrapf(errors.ErrMalformedDefinition, "undeclared object %q", m.Ob)
			}
		case cat.MorGen[string, string]:
			if !mors.Contains(m.Gen) {
				return errors.Wrapf(errors.ErrMalformedDefinition, "undeclared morphism %q", m.Gen)
			}
		}
		return nil
	}
	m, err := ParseMorType(expr)
	if err != nil {
		return err
	}
	return checkMorTypeRefs(m, obs, mors)
}

func checkObTypeRefs(x theory.TabObType[string, string], obs, mors set.FinSet[string]) error {
	switch x := x.(type) {
	case theory.TabObBasic[string, string]:
		if !obs.Contains(x.Name) {
			return errors.Wrapf(errors.ErrMalformedDefinition, "undeclared object %q", x.Name)
		}
		return nil
	case theory.TabTabulator[string, string]:
		return checkMorTypeRefs(x.Mor, obs, mors)
	default:
		return errors.Wrapf(errors.ErrMalformedDefinition, "unknown object type %T", x)
	}
}

func checkMorTypeRefs(m theory.TabMorType[string, string], obs, mors set.FinSet[string]) error {
	switch m := m.(type) {
	case theory.TabMorBasic[string, string]:
		if !mors.Contains(m.Name) {
			return errors.Wrapf(errors.ErrMalformedDefinition, "undeclared morphism %q", m.Name)
		}
		return nil
	case theory.TabHom[string, string]:
		return checkObTypeRefs(m.Ob, obs, mors)
	default:
		return errors.Wrapf(errors.ErrMalformedDefinition, "unknown morphism type %T", m)
	}
}
