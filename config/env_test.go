package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssetPrefix(t *testing.T) {
	p, err := ParseAssetPrefix("")
	require.NoError(t, err)
	assert.Equal(t, RootPrefix, p)

	p, err = ParseAssetPrefix("/blog/")
	require.NoError(t, err)
	assert.Equal(t, AssetPrefix("/blog/"), p)

	_, err = ParseAssetPrefix("/blog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), AssetPrefixEnv)
}

func TestAssetPrefixApply(t *testing.T) {
	assert.Equal(t, "/assets/x.js", RootPrefix.Apply("/assets/x.js"))
	assert.Equal(t, "/blog/assets/x.js", AssetPrefix("/blog/").Apply("/assets/x.js"))
	assert.Equal(t, "/blog/logo.png", AssetPrefix("/blog/").Apply("/logo.png"))
	assert.Equal(t, "https://cdn.example.com/logo.png", AssetPrefix("https://cdn.example.com/").Apply("/logo.png"))
	assert.Equal(t, "assets/x.js", AssetPrefix("/blog/").Apply("assets/x.js"))
}

func TestAssetPrefixFromEnv(t *testing.T) {
	t.Setenv(AssetPrefixEnv, "")
	p, err := AssetPrefixFromEnv()
	require.NoError(t, err)
	assert.Equal(t, RootPrefix, p)

	t.Setenv(AssetPrefixEnv, "/blog/")
	p, err = AssetPrefixFromEnv()
	require.NoError(t, err)
	assert.Equal(t, AssetPrefix("/blog/"), p)
}

func TestLoadEnv(t *testing.T) {
	require.NoError(t, LoadEnv(""))
	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHELLGEN_TEST_PREFIX=/docs/\n"), 0644))
	t.Setenv("SHELLGEN_TEST_PREFIX", "")
	require.NoError(t, os.Unsetenv("SHELLGEN_TEST_PREFIX"))

	require.NoError(t, LoadEnv(envFile))
	assert.Equal(t, "/docs/", os.Getenv("SHELLGEN_TEST_PREFIX"))
}
