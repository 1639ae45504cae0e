package redirects

import (
	"sort"

	"github.com/ZacxDev/shellgen/config"
)

const (
	NetlifyFile  = "_redirects"
	VercelFile   = "vercel.json"
	HtaccessFile = ".htaccess"
)

// Rule maps a clean route path to the static file that serves it.
type Rule struct {
	Source      string
	Destination string
}

// RuleSet is the route table shared by every hosting format: explicit rules in
// declaration order, then a catch-all to Fallback.
type RuleSet struct {
	Rules    []Rule
	Fallback string
}

func FromRoutes(routes []config.Route, fallback string) RuleSet {
	rs := RuleSet{Fallback: fallback, Rules: make([]Rule, 0, len(routes))}
	for _, route := range routes {
		rs.Rules = append(rs.Rules, Rule{Source: route.Path, Destination: "/" + route.File})
	}
	return rs
}

// Lookup returns the destination for an explicit route.
func (rs RuleSet) Lookup(path string) (string, bool) {
	for _, rule := range rs.Rules {
		if rule.Source == path {
			return rule.Destination, true
		}
	}
	return "", false
}

// Sorted returns the rules ordered by source, for order-insensitive comparison.
func (rs RuleSet) Sorted() []Rule {
	out := append([]Rule(nil), rs.Rules...)
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

// File is one rendered redirect configuration.
type File struct {
	Name    string
	Content []byte
}

// Render encodes the rule set for every supported host, in write order.
func Render(rs RuleSet) ([]File, error) {
	vercel, err := Vercel(rs)
	if err != nil {
		return nil, err
	}

	return []File{
		{Name: NetlifyFile, Content: []byte(Netlify(rs))},
		{Name: VercelFile, Content: vercel},
		{Name: HtaccessFile, Content: []byte(Htaccess(rs))},
	}, nil
}
