package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/shellgen/assets"
	"github.com/ZacxDev/shellgen/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, content string) string {
	t.Helper()
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte(content), 0644))
	return dist
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buildOpts, serveOpts, routesOpts = buildOptions{}, buildOptions{}, buildOptions{}
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	dist := writeEntry(t, `<link href="/assets/i.css"><script src="/assets/i.js"></script>`)
	t.Setenv(config.AssetPrefixEnv, "")

	_, err := execute(t, "build", "--entry", filepath.Join(dist, "index.html"), "--out", dist, "--env-file", "", "--prefix", "/blog/")
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dist, "cgu.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `src="/blog/assets/i.js"`)

	for _, name := range []string{"_redirects", "vercel.json", ".htaccess", "404.html", "blogue.html"} {
		assert.FileExists(t, filepath.Join(dist, name))
	}
}

func TestBuildCommandMissingAsset(t *testing.T) {
	dist := writeEntry(t, `<link href="/assets/i.css">`)

	_, err := execute(t, "build", "--entry", filepath.Join(dist, "index.html"), "--out", dist, "--env-file", "")
	require.Error(t, err)
	assert.Equal(t, assets.ErrMissingJS, errors.Cause(err))
	assert.NoFileExists(t, filepath.Join(dist, "cgu.html"))
}

func TestBuildCommandManifest(t *testing.T) {
	dist := writeEntry(t, `<link href="/assets/i.css"><script src="/assets/i.js"></script>`)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legal.md"), []byte("Texte légal"), 0644))
	manifest := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
routes:
  - file: legal.html
    path: /legal
    title: Legal
    description: Legal notice
    og_title: Legal
    content_source: legal.md
`), 0644))

	_, err := execute(t, "build", "-m", manifest, "--entry", filepath.Join(dist, "index.html"), "-o", dist, "--env-file", "")
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dist, "legal.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<p>Texte légal</p>")
	assert.NoFileExists(t, filepath.Join(dist, "cgu.html"))
}

func TestResolvePrefixFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(config.AssetPrefixEnv+"=/docs/\n"), 0644))
	t.Setenv(config.AssetPrefixEnv, "")
	require.NoError(t, os.Unsetenv(config.AssetPrefixEnv))

	cmd := &cobra.Command{}
	cmd.Flags().String("prefix", "", "")

	prefix, err := resolvePrefix(cmd, buildOptions{envFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, config.AssetPrefix("/docs/"), prefix)

	require.NoError(t, cmd.Flags().Set("prefix", "/other"))
	_, err = resolvePrefix(cmd, buildOptions{prefix: "/other"})
	require.Error(t, err)
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "/cgu")
	assert.Contains(t, out, "/cgu.html")
	assert.Contains(t, out, "/index.html")
}
