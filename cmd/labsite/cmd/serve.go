package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/app"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		s, err := server.New(ctx, a)
		if err != nil {
			return err
		}
		return s.Start(ctx, cfg.Addr, cfg.ShutdownTimeout)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides LABSITE_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
