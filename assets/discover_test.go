package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/shellgen/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viteIndex = `<!DOCTYPE html>
<html lang="fr">
  <head>
    <link rel="icon" type="image/png" href="/logo.png" />
    <script type="module" crossorigin src="/assets/index-abc123.js"></script>
    <link rel="stylesheet" crossorigin href="/assets/index-abc123.css">
    <link rel="stylesheet" href="/assets/vendor-zzz.css">
  </head>
  <body><div id="root"></div></body>
</html>`

func TestDiscoverFromString(t *testing.T) {
	facts, err := DiscoverFromString(viteIndex)
	require.NoError(t, err)
	assert.Equal(t, "/assets/index-abc123.css", facts.CSS)
	assert.Equal(t, "/assets/index-abc123.js", facts.JS)
}

func TestDiscoverWithoutAssetsSegment(t *testing.T) {
	facts, err := DiscoverFromString(`<link href="/static/app.css"><script src="/static/app.js"></script>`)
	require.NoError(t, err)
	assert.Equal(t, "/static/app.css", facts.CSS)
	assert.Equal(t, "/static/app.js", facts.JS)
}

func TestDiscoverMissing(t *testing.T) {
	_, err := DiscoverFromString(`<script src="/assets/app.js"></script>`)
	assert.ErrorIs(t, err, ErrMissingCSS)

	_, err = DiscoverFromString(`<link href="/assets/app.css">`)
	assert.ErrorIs(t, err, ErrMissingJS)
}

func TestDiscoverFile(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(entry, []byte(viteIndex), 0644))

	facts, err := Discover(entry)
	require.NoError(t, err)
	assert.Equal(t, "/assets/index-abc123.js", facts.JS)

	require.NoError(t, os.WriteFile(entry, []byte("<html></html>"), 0644))
	_, err = Discover(entry)
	assert.Equal(t, ErrMissingCSS, errors.Cause(err))
	assert.Contains(t, err.Error(), entry)

	_, err = Discover(filepath.Join(dir, "nope.html"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestResolve(t *testing.T) {
	facts := Facts{CSS: "/assets/x.css", JS: "/assets/x.js"}

	r := Resolve(facts, config.RootPrefix, "/logo.png")
	assert.Equal(t, Resolved{CSS: "/assets/x.css", JS: "/assets/x.js", Icon: "/logo.png"}, r)

	r = Resolve(facts, config.AssetPrefix("/blog/"), "/logo.png")
	assert.Equal(t, Resolved{CSS: "/blog/assets/x.css", JS: "/blog/assets/x.js", Icon: "/blog/logo.png"}, r)
}
