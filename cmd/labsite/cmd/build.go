package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/app"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/export"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/storage"
	"github.com/liutong011025-cloud/CWriteV5.5/web"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the site as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}
		_, _, err := buildSite(cmd.Context(), cfg.OutputDir)
		return err
	},
}

// buildSite renders every page and copies the static assets into dir. The
// result lists exactly the files this run wrote.
func buildSite(ctx context.Context, dir string) (*storage.AferoStore, export.Result, error) {
	a, err := app.New(cfg)
	if err != nil {
		return nil, export.Result{}, err
	}
	pages, err := a.Pages()
	if err != nil {
		return nil, export.Result{}, err
	}

	store := storage.NewDirStore(dir)
	res, err := export.New(store, a.Renderer(), slog.Default().With("dir", dir)).Site(ctx, pages, web.FS, "static")
	if err != nil {
		return nil, export.Result{}, fmt.Errorf("build site: %w", err)
	}
	return store, res, nil
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "output directory (overrides LABSITE_OUTPUT_DIR)")
	rootCmd.AddCommand(buildCmd)
}
