// Package export writes the site as static files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/storage"
)

// Page is one document to write.
type Page struct {
	// Path is relative to the output root, e.g. "about.html".
	Path      string
	Component any
}

// ComponentRenderer renders a component to bytes.
type ComponentRenderer interface {
	RenderComponent(ctx context.Context, component any) ([]byte, error)
}

// Result summarises an export run.
type Result struct {
	Pages  int
	Assets int
	Bytes  int64
	// Files lists every written path, slash separated and relative to the
	// output root, in write order.
	Files []string
}

// Exporter renders pages and copies assets into a store.
type Exporter struct {
	store    storage.Store
	renderer ComponentRenderer
	logger   *slog.Logger
}

// New creates an Exporter.
func New(store storage.Store, renderer ComponentRenderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{store: store, renderer: renderer, logger: logger}
}

// Site writes every page and then copies assets, keeping their paths under
// assetsDir. Existing files are overwritten. If any step fails, the files
// written so far are removed again.
func (x *Exporter) Site(ctx context.Context, pages []Page, assets fs.FS, assetsDir string) (res Result, err error) {
	defer func() {
		if err != nil {
			x.rollback(res.Files)
			res.Files = nil
		}
	}()

	for _, p := range pages {
		body, err := x.renderer.RenderComponent(ctx, p.Component)
		if err != nil {
			return res, fmt.Errorf("render %s: %w", p.Path, err)
		}
		n, err := x.store.Save(ctx, p.Path, bytes.NewReader(body))
		if err != nil {
			return res, fmt.Errorf("write %s: %w", p.Path, err)
		}
		res.Pages++
		res.Bytes += n
		res.Files = append(res.Files, p.Path)
		x.logger.Info("generated page", "path", p.Path, "bytes", n)
	}

	err = fs.WalkDir(assets, assetsDir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		f, err := assets.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		dst := path.Clean(name)
		n, err := x.store.Save(ctx, dst, f)
		if err != nil {
			return fmt.Errorf("copy asset %s: %w", name, err)
		}
		res.Files = append(res.Files, dst)
		res.Assets++
		res.Bytes += n
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("copy assets: %w", err)
	}

	x.logger.Info("static export complete", "pages", res.Pages, "assets", res.Assets, "bytes", res.Bytes)
	return res, nil
}

// rollback removes files written by a failed run. It uses a fresh context
// because the run's context may be the reason it failed.
func (x *Exporter) rollback(files []string) {
	ctx := context.Background()
	for _, name := range files {
		if err := x.store.Delete(ctx, name); err != nil {
			x.logger.Warn("failed to remove partial export file", "path", name, "error", err)
		}
	}
}
