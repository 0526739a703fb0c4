package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/def"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/theory"
)

// ComposeCmd composes a path of morphism types in a theory.
var ComposeCmd = &cobra.Command{
	Use:   "compose <file.toml> <mor> [<mor> ...]",
	Short: "Compose a path of morphism types in a theory",
	Long: `Compose a consecutive sequence of morphism types and print the result.

Morphism arguments are generator names; discrete theories also accept
"id <ob>", and tabulator theories accept quoted type expressions such as
"hom *".`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := def.Load(args[0])
		if err != nil {
			pterm.Error.Printf("Failed to load definition: %v\n", err)
			return err
		}

		switch d.Kind {
		case def.KindDiscrete:
			return composeDiscrete(d, args[1:])
		case def.KindTabulator:
			return composeTabulator(d, args[1:])
		default:
			err := errors.Wrapf(errors.ErrMalformedDefinition, "unknown theory kind %q", d.Kind)
			pterm.Error.Printf("%v\n", err)
			return err
		}
	},
}

func composeDiscrete(d *def.Definition, exprs []string) error {
	disc, err := d.Discrete()
	if err != nil {
		pterm.Error.Printf("Invalid definition: %v\n", err)
		return err
	}
	th := disc.Dbl()

	edges := make([]cat.Mor[string, string], 0, len(exprs))
	for _, expr := range exprs {
		m, err := def.ParseDiscreteMor(expr)
		if err != nil {
			pterm.Error.Printf("%v\n", err)
			return err
		}
		if !th.HasMorType(m) {
			err := errors.NewNotFoundError("morphism type %q", expr)
			pterm.Error.Printf("%v\n", err)
			return err
		}
		edges = append(edges, m)
	}

	got, err := th.ComposeTypes(cat.SeqPath[string](edges))
	if err != nil {
		if errors.IsNotComposableError(err) {
			pterm.Warning.Printf("not composable: %v\n", err)
			return nil
		}
		return err
	}
	pterm.Success.Printf("%s\n", formatMor(got))
	return nil
}

func composeTabulator(d *def.Definition, exprs []string) error {
	th, err := d.Tabulator()
	if err != nil {
		pterm.Error.Printf("Invalid definition: %v\n", err)
		return err
	}

	edges := make([]theory.TabMorType[string, string], 0, len(exprs))
	for _, expr := range exprs {
		m, err := def.ParseMorType(expr)
		if err != nil {
			pterm.Error.Printf("%v\n", err)
			return err
		}
		if !th.HasMorType(m) {
			err := errors.NewNotFoundError("morphism type %q", expr)
			pterm.Error.Printf("%v\n", err)
			return err
		}
		edges = append(edges, m)
	}

	got, err := th.ComposeTypes(cat.SeqPath[theory.TabObType[string, string]](edges))
	if err != nil {
		if errors.IsNotComposableError(err) {
			pterm.Warning.Printf("not composable: %v\n", err)
			return nil
		}
		return err
	}
	pterm.Success.Printf("%s\n", formatTabMorType(got))
	return nil
}

func formatMor(m cat.Mor[string, string]) string {
	switch m := m.(type) {
	case cat.MorId[string, string]:
		return fmt.Sprintf("id %s", m.Ob)
	case cat.MorGen[string, string]:
		return m.Gen
	default:
		return fmt.Sprintf("%v", m)
	}
}

func formatTabObType(x theory.TabObType[string, string]) string {
	switch x := x.(type) {
	case theory.TabObBasic[string, string]:
		return x.Name
	case theory.TabTabulator[string, string]:
		return fmt.Sprintf("tab %s", formatTabMorType(x.Mor))
	default:
		return fmt.Sprintf("%v", x)
	}
}

func formatTabMorType(m theory.TabMorType[string, string]) string {
	switch m := m.(type) {
	case theory.TabMorBasic[string, string]:
		return m.Name
	case theory.TabHom[string, string]:
		return fmt.Sprintf("hom %s", formatTabObType(m.Ob))
	default:
		return fmt.Sprintf("%v", m)
	}
}
