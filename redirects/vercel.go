package redirects

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const vercelCatchAll = "/(.*)"

type vercelConfig struct {
	Routes []vercelRoute `json:"routes"`
}

type vercelRoute struct {
	Handle string `json:"handle,omitempty"`
	Src    string `json:"src,omitempty"`
	Dest   string `json:"dest,omitempty"`
}

// Vercel renders the legacy "routes" config: filesystem first, explicit routes,
// then the match-all.
func Vercel(rs RuleSet) ([]byte, error) {
	cfg := vercelConfig{Routes: make([]vercelRoute, 0, len(rs.Rules)+2)}
	cfg.Routes = append(cfg.Routes, vercelRoute{Handle: "filesystem"})
	for _, rule := range rs.Rules {
		cfg.Routes = append(cfg.Routes, vercelRoute{Src: rule.Source, Dest: rule.Destination})
	}
	cfg.Routes = append(cfg.Routes, vercelRoute{Src: vercelCatchAll, Dest: rs.Fallback})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func ParseVercel(content []byte) (RuleSet, error) {
	var cfg vercelConfig
	if err := json.Unmarshal(content, &cfg); err != nil {
		return RuleSet{}, errors.Wrapf(err, "parsing %s", VercelFile)
	}

	var rs RuleSet
	for _, route := range cfg.Routes {
		switch {
		case route.Handle != "":
			continue
		case route.Src == vercelCatchAll:
			rs.Fallback = route.Dest
		default:
			rs.Rules = append(rs.Rules, Rule{Source: route.Src, Destination: route.Dest})
		}
	}
	return rs, nil
}
