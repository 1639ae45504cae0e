package javascript

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

var engines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
	{Name: api.EngineEdge, Version: "100"},
}

// Minify compresses an inline script body. Inline scripts are classic scripts,
// so the output format stays IIFE-compatible and no bundling happens.
func Minify(src string) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            api.LoaderJS,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Engines:           engines,
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			msgs = append(msgs, m.Text)
		}
		return "", errors.Errorf("minifying inline script: %s", strings.Join(msgs, "; "))
	}

	return strings.TrimSuffix(string(result.Code), "\n"), nil
}
