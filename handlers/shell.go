package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/ZacxDev/shellgen/assets"
	"github.com/ZacxDev/shellgen/config"
	"github.com/ZacxDev/shellgen/javascript"
	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
)

//go:embed templates/*
var templates embed.FS

// Attribute values are escaped except for the apostrophe, which is legal inside
// double-quoted attributes and common in French copy.
var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// ShellRenderer renders route shells for one build: the site constants and the
// resolved asset references are shared by every route.
type ShellRenderer struct {
	site   config.Site
	assets assets.Resolved
	widget string
}

func NewShellRenderer(site config.Site, resolved assets.Resolved) (*ShellRenderer, error) {
	ctx := plush.NewContext()
	ctx.Set("projectID", jsValue(site.ChatWidget.ProjectID))
	ctx.Set("runtimeURL", jsValue(site.ChatWidget.RuntimeURL))
	ctx.Set("versionID", jsValue(site.ChatWidget.VersionID))
	ctx.Set("voiceURL", jsValue(site.ChatWidget.VoiceURL))
	ctx.Set("bundleURL", jsValue(site.ChatWidget.BundleURL))

	widget, err := renderPlushTemplate("templates/chat_widget.plush.js", ctx)
	if err != nil {
		return nil, errors.Wrap(err, "rendering chat widget")
	}
	widget = "\n" + widget

	if site.MinifyInline {
		if widget, err = javascript.Minify(widget); err != nil {
			return nil, err
		}
	}

	return &ShellRenderer{site: site, assets: resolved, widget: widget}, nil
}

// Render returns the complete shell document for a route. content is optional
// pre-rendered HTML placed in a <noscript> block for crawlers.
func (r *ShellRenderer) Render(route config.Route, content string) (string, error) {
	history := fmt.Sprintf(`
      if (window.location.pathname === '%s.html') {
        window.history.replaceState({}, '', '%s');
      }
    `, route.Path, route.Path)

	if r.site.MinifyInline {
		var err error
		if history, err = javascript.Minify(history); err != nil {
			return "", errors.Wrapf(err, "route %s", route.Path)
		}
	}

	var noscript string
	if content != "" {
		noscript = "\n    <noscript>\n" + content + "    </noscript>"
	}

	ctx := plush.NewContext()
	ctx.Set("lang", attr(r.site.Lang))
	ctx.Set("pageTitle", attr(route.Title))
	ctx.Set("pageDescription", attr(route.Description))
	ctx.Set("ogTitle", attr(route.OGTitle))
	ctx.Set("author", attr(r.site.Author))
	ctx.Set("twitterSite", attr(r.site.TwitterSite))
	ctx.Set("icon", attr(r.assets.Icon))
	ctx.Set("jsAsset", attr(r.assets.JS))
	ctx.Set("cssAsset", attr(r.assets.CSS))
	ctx.Set("loaderScript", attr(r.site.LoaderScript))
	ctx.Set("historyScript", template.HTML(history))
	ctx.Set("noscript", template.HTML(noscript))
	ctx.Set("widgetScript", template.HTML(r.widget))

	page, err := renderPlushTemplate("templates/shell.plush.html", ctx)
	if err != nil {
		return "", errors.Wrapf(err, "rendering shell for %s", route.Path)
	}

	return strings.TrimSuffix(page, "\n"), nil
}

func renderPlushTemplate(source string, ctx *plush.Context) (string, error) {
	content, err := templates.ReadFile(source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	tmpl, err := plush.Parse(string(content))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return tmpl.Exec(ctx)
}

// RenderMarkdownFile converts a markdown file into the HTML used for a route's
// crawler content.
func RenderMarkdownFile(source string) (string, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return "", errors.Wrapf(err, "reading content %s", source)
	}

	return RenderMarkdown(content), nil
}

func RenderMarkdown(md []byte) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	return string(markdown.ToHTML(md, p, nil))
}

func attr(s string) template.HTML {
	return template.HTML(attrEscaper.Replace(s))
}

func jsValue(s string) template.HTML {
	return template.HTML(template.JSEscapeString(s))
}
