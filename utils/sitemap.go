package utils

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
)

const SitemapFile = "sitemap.xml"

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemapContent lists the site root followed by every route path under
// origin. There is no lastmod so identical inputs give identical output.
func GenerateSitemapContent(origin string, routes []string) ([]byte, error) {
	baseURL := strings.TrimSuffix(origin, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		Urls:  []Url{{Loc: baseURL + "/"}},
	}

	for _, route := range routes {
		sitemap.Urls = append(sitemap.Urls, Url{Loc: baseURL + route})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return append([]byte(xml.Header), append(xmlOutput, '\n')...), nil
}
