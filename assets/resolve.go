package assets

import "github.com/ZacxDev/shellgen/config"

// Resolved holds the references written into every route shell.
type Resolved struct {
	CSS  string
	JS   string
	Icon string
}

func Resolve(facts Facts, prefix config.AssetPrefix, icon string) Resolved {
	return Resolved{
		CSS:  prefix.Apply(facts.CSS),
		JS:   prefix.Apply(facts.JS),
		Icon: prefix.Apply(icon),
	}
}
