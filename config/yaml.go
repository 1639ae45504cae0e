package config

// config/yaml.go

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultEntry    = "dist/index.html"
	DefaultOutDir   = "dist"
	DefaultFallback = "/index.html"
	DefaultIcon     = "/logo.png"
)

type ChatWidget struct {
	ProjectID  string `yaml:"project_id"`
	VersionID  string `yaml:"version_id"`
	RuntimeURL string `yaml:"runtime_url"`
	VoiceURL   string `yaml:"voice_url"`
	BundleURL  string `yaml:"bundle_url"`
}

type Site struct {
	Lang         string     `yaml:"lang"`
	Author       string     `yaml:"author"`
	TwitterSite  string     `yaml:"twitter_site"`
	Icon         string     `yaml:"icon"`
	Origin       string     `yaml:"origin"`
	LoaderScript string     `yaml:"loader_script"`
	ChatWidget   ChatWidget `yaml:"chat_widget"`
	MinifyInline bool       `yaml:"minify_inline"`
}

type SiteManifest struct {
	Site     Site    `yaml:"site"`
	Entry    string  `yaml:"entry"`
	OutDir   string  `yaml:"out_dir"`
	Fallback string  `yaml:"fallback"`
	Routes   []Route `yaml:"routes"`
}

type Route struct {
	File          string `yaml:"file"`
	Path          string `yaml:"path"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	OGTitle       string `yaml:"og_title"`
	ContentSource string `yaml:"content_source"`
}

var routePathPattern = regexp.MustCompile(`^/[A-Za-z0-9_\-/]*$`)

// Load reads a manifest file. Fields left empty fall back to Default().
func Load(filename string) (*SiteManifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", filename)
	}

	return Parse(data)
}

func Parse(data []byte) (*SiteManifest, error) {
	var manifest SiteManifest
	if err := yaml.UnmarshalStrict(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.fillDefaults()
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

func (m *SiteManifest) fillDefaults() {
	def := Default()
	if m.Entry == "" {
		m.Entry = def.Entry
	}
	if m.OutDir == "" {
		m.OutDir = def.OutDir
	}
	if m.Fallback == "" {
		m.Fallback = def.Fallback
	}
	if len(m.Routes) == 0 {
		m.Routes = def.Routes
	}

	s := &m.Site
	if s.Lang == "" {
		s.Lang = def.Site.Lang
	}
	if s.Author == "" {
		s.Author = def.Site.Author
	}
	if s.TwitterSite == "" {
		s.TwitterSite = def.Site.TwitterSite
	}
	if s.Icon == "" {
		s.Icon = def.Site.Icon
	}
	if s.LoaderScript == "" {
		s.LoaderScript = def.Site.LoaderScript
	}
	if s.ChatWidget == (ChatWidget{}) {
		s.ChatWidget = def.Site.ChatWidget
	}
}

// Validate checks the route table. Every path becomes a redirect source in three
// syntaxes, so paths are restricted to characters none of them treat specially.
func (m *SiteManifest) Validate() error {
	if len(m.Routes) == 0 {
		return errors.New("manifest has no routes")
	}
	if !strings.HasPrefix(m.Fallback, "/") {
		return errors.Errorf("fallback %q must start with /", m.Fallback)
	}
	if !strings.HasPrefix(m.Site.Icon, "/") {
		return errors.Errorf("icon %q must start with /", m.Site.Icon)
	}

	paths := make(map[string]bool, len(m.Routes))
	files := make(map[string]bool, len(m.Routes))
	for i, route := range m.Routes {
		if !routePathPattern.MatchString(route.Path) || route.Path == "/" {
			return errors.Errorf("route %d: invalid path %q", i, route.Path)
		}
		if strings.HasSuffix(route.Path, "/") {
			return errors.Errorf("route %d: path %q has a trailing slash", i, route.Path)
		}
		if !strings.HasSuffix(route.File, ".html") || strings.ContainsAny(route.File, `/\ `) {
			return errors.Errorf("route %d: invalid file %q", i, route.File)
		}
		if route.Title == "" {
			return errors.Errorf("route %s: missing title", route.Path)
		}
		if paths[route.Path] {
			return errors.Errorf("duplicate route path %s", route.Path)
		}
		if files[route.File] {
			return errors.Errorf("duplicate route file %s", route.File)
		}
		paths[route.Path] = true
		files[route.File] = true
	}

	return nil
}
