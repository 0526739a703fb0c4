package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/catena/cmd/catena/commands"
	"github.com/teranos/catena/logger"
)

var rootCmd = &cobra.Command{
	Use:   "catena",
	Short: "Catena - computational double theories",
	Long: `Catena works with double theories defined in TOML files.

Available commands:
  check   - Load and validate a theory definition
  show    - Display the generators and composites of a theory
  compose - Compose a path of morphism types in a theory

Examples:
  catena check signed.toml           # Validate a definition file
  catena show signed.toml            # List its generators
  catena compose signed.toml n n     # Compose the path [n, n]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithLevel(viper.GetBool("json"), logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")

	viper.SetEnvPrefix("CATENA")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind json flag: %v\n", err)
	}

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.ComposeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
