package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/catena/def"
)

// CheckCmd validates a theory definition file.
var CheckCmd = &cobra.Command{
	Use:   "check <file.toml>",
	Short: "Load and validate a theory definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := def.Load(args[0])
		if err != nil {
			pterm.Error.Printf("Failed to load definition: %v\n", err)
			return err
		}

		// Building catches everything validation does plus kind-specific
		// problems in type expressions.
		switch d.Kind {
		case def.KindDiscrete:
			_, err = d.Discrete()
		case def.KindTabulator:
			_, err = d.Tabulator()
		default:
			err = d.Validate()
		}
		if err != nil {
			pterm.Error.Printf("Invalid definition: %v\n", err)
			return err
		}

		pterm.Success.Printf("%s: valid %s theory (%d object types, %d morphism types, %d composites)\n",
			args[0], d.Kind, len(d.Objects), len(d.Morphisms), len(d.Composites))
		return nil
	},
}
