package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	var buf strings.Builder
	err := AdaptGomponentToTempl(g.P(cmp.Text("hello"))).Render(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", buf.String())
}

func TestAdaptGomponentToTempl_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	err := AdaptGomponentToTempl(g.P(cmp.Text("hello"))).Render(ctx, &buf)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
