package assets

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
)

var (
	ErrMissingCSS = errors.New("no CSS asset (href=\"...css\") found in entry document")
	ErrMissingJS  = errors.New("no JS asset (src=\"...js\") found in entry document")
)

// The bundler's output directory is not part of the pattern; only the extension is.
var (
	cssPattern = regexp.MustCompile(`href="([^"]*\.css)"`)
	jsPattern  = regexp.MustCompile(`src="([^"]*\.js)"`)
)

// Facts are the hashed asset references scraped from the built entry document.
type Facts struct {
	CSS string
	JS  string
}

func Discover(entryPath string) (Facts, error) {
	content, err := os.ReadFile(entryPath)
	if err != nil {
		return Facts{}, errors.Wrapf(err, "reading entry document %s", entryPath)
	}

	facts, err := DiscoverFromString(string(content))
	if err != nil {
		return Facts{}, errors.Wrap(err, entryPath)
	}

	return facts, nil
}

// DiscoverFromString returns the first stylesheet href and the first script src.
func DiscoverFromString(doc string) (Facts, error) {
	css := cssPattern.FindStringSubmatch(doc)
	if css == nil {
		return Facts{}, ErrMissingCSS
	}

	js := jsPattern.FindStringSubmatch(doc)
	if js == nil {
		return Facts{}, ErrMissingJS
	}

	return Facts{CSS: css[1], JS: js[1]}, nil
}
