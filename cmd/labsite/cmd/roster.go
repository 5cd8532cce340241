package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Print the authored team roster as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(roster.Default()); err != nil {
			return fmt.Errorf("encode roster: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}
