package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/config"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/logging"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "CWrite lab website",
	Long: `labsite serves and builds the CWrite research lab About page.

Available commands:
  serve     Serve the site over HTTP
  build     Write the site as static files
  deploy    Build the site and upload it to S3
  roster    Print the authored team roster as YAML

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.New()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		logging.New(cfg.LogFormat, cfg.LogLevel)
		return nil
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
