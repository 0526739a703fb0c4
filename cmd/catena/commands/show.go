package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/catena/def"
)

// ShowCmd displays the generators and composites of a theory definition.
var ShowCmd = &cobra.Command{
	Use:   "show <file.toml>",
	Short: "Display the generators and composites of a theory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := def.Load(args[0])
		if err != nil {
			pterm.Error.Printf("Failed to load definition: %v\n", err)
			return err
		}

		name := d.Name
		if name == "" {
			name = args[0]
		}
		pterm.Info.Printf("%s (%s theory)\n", name, d.Kind)
		pterm.Println()

		pterm.Printf("Object types:\n")
		for _, o := range d.Objects {
			pterm.Printf("  %s\n", o.Name)
		}
		pterm.Println()

		pterm.Printf("Morphism types:\n")
		for _, m := range d.Morphisms {
			pterm.Printf("  %s: %s -> %s\n", m.Name, m.Src, m.Tgt)
		}

		if len(d.Composites) > 0 {
			pterm.Println()
			pterm.Printf("Composites:\n")
			for _, c := range d.Composites {
				pterm.Printf("  %s ; %s = %s\n", c.First, c.Second, c.Result)
			}
		}
		return nil
	},
}
