package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/tco-parity/internal/config"
)

// exampleCmd writes a sample scenario file
var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write an example scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "tco_scenarios.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		example := config.NewInputParser().CreateExampleConfiguration()
		if err := config.SaveConfiguration(example, path); err != nil {
			return fmt.Errorf("write example: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example scenario file written to %s\n", path)
		return nil
	},
}
