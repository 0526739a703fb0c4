package def

import (
	"strings"

	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/theory"
)

// Type expressions are whitespace-separated prefix terms:
//
//	<name>               basic object or morphism type
//	hom <obtype>         hom type on an object type
//	tab <mortype>        tabulator of a morphism type
//
// Nesting is unrestricted, e.g. "tab hom tab m".

// ParseObType parses an object type expression for a tabulator theory.
func ParseObType(expr string) (theory.TabObType[string, string], error) {
	x, rest, err := parseObType(strings.Fields(expr))
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Wrapf(errors.ErrMalformedDefinition,
			"trailing tokens %v in object type expression %q", rest, expr)
	}
	return x, nil
}

// ParseMorType parses a morphism type expression for a tabulator theory.
func ParseMorType(expr string) (theory.TabMorType[string, string], error) {
	m, rest, err := parseMorType(strings.Fields(expr))
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Wrapf(errors.ErrMalformedDefinition,
			"trailing tokens %v in morphism type expression %q", rest, expr)
	}
	return m, nil
}

// ParseDiscreteMor parses a morphism expression for a discrete theory:
// "id <ob>" or a generator name.
func ParseDiscreteMor(expr string) (cat.Mor[string, string], error) {
	toks := strings.Fields(expr)
	switch {
	case len(toks) == 2 && toks[0] == "id":
		return cat.MorId[string, string]{Ob: toks[1]}, nil
	case len(toks) == 1 && toks[0] != "id":
		return cat.MorGen[string, string]{Gen: toks[0]}, nil
	}
	return nil, errors.Wrapf(errors.ErrMalformedDefinition,
		"invalid morphism expression %q", expr)
}

func parseObType(toks []string) (theory.TabObType[string, string], []string, error) {
	if len(toks) == 0 {
		return nil, nil, errors.Wrap(errors.ErrMalformedDefinition,
			"empty object type expression")
	}
	if toks[0] == "tab" {
		m, rest, err := parseMorType(toks[1:])
		if err != nil {
			return nil, nil, err
		}
		return theory.TabTabulator[string, string]{Mor: m}, rest, nil
	}
	return theory.TabObBasic[string, string]{Name: toks[0]}, toks[1:], nil
}

func parseMorType(toks []string) (theory.TabMorType[string, string], []string, error) {
	if len(toks) == 0 {
		return nil, nil, errors.Wrap(errors.ErrMalformedDefinition,
			"empty morphism type expression")
	}
	if toks[0] == "hom" {
		x, rest, err := parseObType(toks[1:])
		if err != nil {
			return nil, nil, err
		}
		return theory.TabHom[string, string]{Ob: x}, rest, nil
	}
	return theory.TabMorBasic[string, string]{Name: toks[0]}, toks[1:], nil
}
