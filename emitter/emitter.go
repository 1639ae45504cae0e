package emitter

import (
	"os"
	"path/filepath"

	"github.com/ZacxDev/shellgen/assets"
	"github.com/ZacxDev/shellgen/config"
	"github.com/ZacxDev/shellgen/handlers"
	"github.com/ZacxDev/shellgen/redirects"
	"github.com/ZacxDev/shellgen/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const notFoundPath = "/404"

// Emitter turns a built entry document into route shells and redirect tables.
type Emitter struct {
	manifest *config.SiteManifest
	prefix   config.AssetPrefix
	baseDir  string
	logger   *zap.Logger
}

// Result lists what a run wrote, in write order.
type Result struct {
	Assets assets.Resolved
	Files  []string
}

type Option func(*Emitter)

// WithContentDir resolves relative Route.ContentSource paths against dir,
// normally the directory holding the manifest.
func WithContentDir(dir string) Option {
	return func(e *Emitter) { e.baseDir = dir }
}

func New(manifest *config.SiteManifest, prefix config.AssetPrefix, logger *zap.Logger, opts ...Option) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Emitter{manifest: manifest, prefix: prefix, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type output struct {
	name    string
	content []byte
}

// Run discovers assets, renders everything in memory, then writes. A discovery
// or render failure leaves the output directory untouched; a write failure
// stops the run where it happened.
func (e *Emitter) Run() (*Result, error) {
	m := e.manifest
	if err := m.Validate(); err != nil {
		return nil, err
	}

	facts, err := assets.Discover(m.Entry)
	if err != nil {
		return nil, err
	}

	resolved := assets.Resolve(facts, e.prefix, m.Site.Icon)
	e.logger.Info("generating static HTML pages",
		zap.String("css", resolved.CSS),
		zap.String("js", resolved.JS),
		zap.String("prefix", string(e.prefix)))

	outputs, err := e.render(resolved)
	if err != nil {
		return nil, err
	}

	result := &Result{Assets: resolved}
	for _, out := range outputs {
		path := filepath.Join(m.OutDir, out.name)
		if err := os.WriteFile(path, out.content, 0644); err != nil {
			return result, errors.Wrapf(err, "writing %s", path)
		}
		result.Files = append(result.Files, out.name)
		e.logger.Info("generated", zap.String("file", out.name))
	}

	return result, nil
}

func (e *Emitter) render(resolved assets.Resolved) ([]output, error) {
	m := e.manifest

	renderer, err := handlers.NewShellRenderer(m.Site, resolved)
	if err != nil {
		return nil, err
	}

	var outputs []output
	for _, route := range m.Routes {
		var content string
		if route.ContentSource != "" {
			content, err = handlers.RenderMarkdownFile(e.contentPath(route.ContentSource))
			if err != nil {
				return nil, err
			}
		}

		page, err := renderer.Render(route, content)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output{name: route.File, content: []byte(page)})
	}

	files, err := redirects.Render(redirects.FromRoutes(m.Routes, m.Fallback))
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		outputs = append(outputs, output{name: f.Name, content: f.Content})
	}

	if m.Site.Origin != "" {
		var paths []string
		for _, route := range m.Routes {
			if route.Path != notFoundPath {
				paths = append(paths, route.Path)
			}
		}
		sitemap, err := utils.GenerateSitemapContent(m.Site.Origin, paths)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output{name: utils.SitemapFile, content: sitemap})
	}

	return outputs, nil
}

func (e *Emitter) contentPath(source string) string {
	if filepath.IsAbs(source) || e.baseDir == "" {
		return source
	}
	return filepath.Join(e.baseDir, source)
}
