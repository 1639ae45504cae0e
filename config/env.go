package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// AssetPrefixEnv is the variable the front-end build reads its base path from.
const AssetPrefixEnv = "VITE_ASSET_PREFIX"

// AssetPrefix is the deployment path every absolute asset reference is rebased onto.
// It is either "/" or a string ending in "/".
type AssetPrefix string

const RootPrefix AssetPrefix = "/"

// LoadEnv loads an optional .env file. Variables already set in the process win.
func LoadEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}
		return errors.Wrapf(err, "loading %s", envFile)
	}
	return nil
}

func AssetPrefixFromEnv() (AssetPrefix, error) {
	return ParseAssetPrefix(os.Getenv(AssetPrefixEnv))
}

func ParseAssetPrefix(raw string) (AssetPrefix, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RootPrefix, nil
	}
	if !strings.HasSuffix(raw, "/") {
		return "", errors.Errorf("%s %q must end with /", AssetPrefixEnv, raw)
	}
	return AssetPrefix(raw), nil
}

// Apply rebases an absolute path onto the prefix. "/" leaves the path untouched.
func (p AssetPrefix) Apply(path string) string {
	if p == RootPrefix || p == "" || !strings.HasPrefix(path, "/") {
		return path
	}
	return string(p) + path[1:]
}
