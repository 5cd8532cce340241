package export

import (
	"context"
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/rendering"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/storage"
	"github.com/liutong011025-cloud/CWriteV5.5/web"
)

func TestExporter_Site(t *testing.T) {
	memFs := afero.NewMemMapFs()
	x := New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), nil)

	assets := fstest.MapFS{
		"static/css/about.css": {Data: []byte("body{}")},
		"static/logo.svg":      {Data: []byte("<svg/>")},
		"other/ignored.txt":    {Data: []byte("nope")},
	}
	pages := []Page{
		{Path: "index.html", Component: cmp.Text("home")},
		{Path: "about.html", Component: cmp.Text("about")},
	}

	res, err := x.Site(context.Background(), pages, assets, "static")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, res.Assets)
	assert.Equal(t, int64(len("home")+len("about")+len("body{}")+len("<svg/>")), res.Bytes)
	assert.Equal(t, []string{"index.html", "about.html", "static/css/about.css", "static/logo.svg"}, res.Files)

	got, err := afero.ReadFile(memFs, "about.html")
	require.NoError(t, err)
	assert.Equal(t, "about", string(got))

	got, err = afero.ReadFile(memFs, "static/css/about.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(got))

	exists, err := afero.Exists(memFs, "other/ignored.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExporter_SiteIsRepeatable(t *testing.T) {
	memFs := afero.NewMemMapFs()
	x := New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), nil)
	pages := []Page{{Path: "about.html", Component: cmp.Text("about")}}

	_, err := x.Site(context.Background(), pages, web.FS, "static")
	require.NoError(t, err)
	first, err := afero.ReadFile(memFs, "about.html")
	require.NoError(t, err)

	_, err = x.Site(context.Background(), pages, web.FS, "static")
	require.NoError(t, err)
	second, err := afero.ReadFile(memFs, "about.html")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	exists, err := afero.Exists(memFs, "static/placeholder-user.svg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExporter_RenderError(t *testing.T) {
	memFs := afero.NewMemMapFs()
	x := New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), nil)

	pages := []Page{
		{Path: "index.html", Component: cmp.Text("home")},
		{Path: "bad.html", Component: 42},
	}
	res, err := x.Site(context.Background(), pages, fstest.MapFS{}, ".")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rendering.ErrUnsupportedComponent))
	assert.Contains(t, err.Error(), "bad.html")
	assert.Empty(t, res.Files)

	exists, err := afero.Exists(memFs, "index.html")
	require.NoError(t, err)
	assert.False(t, exists, "pages written before the failure are removed")
}

// failingStore fails to save the named path.
type failingStore struct {
	*storage.AferoStore
	failOn string
}

func (s *failingStore) Save(ctx context.Context, path string, r io.Reader) (int64, error) {
	if path == s.failOn {
		return 0, errors.New("disk full")
	}
	return s.AferoStore.Save(ctx, path, r)
}

func TestExporter_AssetErrorRemovesWrittenFiles(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := &failingStore{AferoStore: storage.NewAferoStore(memFs), failOn: "static/logo.svg"}
	x := New(store, rendering.NewUniversalRenderer(), nil)

	assets := fstest.MapFS{
		"static/css/about.css": {Data: []byte("body{}")},
		"static/logo.svg":      {Data: []byte("<svg/>")},
	}
	_, err := x.Site(context.Background(), []Page{{Path: "about.html", Component: cmp.Text("about")}}, assets, "static")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	for _, name := range []string{"about.html", "static/css/about.css"} {
		exists, err := afero.Exists(memFs, name)
		require.NoError(t, err)
		assert.False(t, exists, name)
	}
}
