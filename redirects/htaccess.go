package redirects

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	htaccessCatchAll = "^(.*)$"
	htaccessCacheExt = "css|js|png|jpg|jpeg|gif|ico|svg"
)

// A RewriteCond only guards the RewriteRule right after it, so every rule gets
// its own existing-file and existing-directory checks.
const htaccessConds = "RewriteCond %{REQUEST_FILENAME} !-f\nRewriteCond %{REQUEST_FILENAME} !-d\n"

var htaccessRulePattern = regexp.MustCompile(`^RewriteRule\s+(\S+)\s+(\S+)`)

func Htaccess(rs RuleSet) string {
	var b strings.Builder
	b.WriteString("RewriteEngine On\n\n")

	for _, rule := range rs.Rules {
		b.WriteString(htaccessConds)
		b.WriteString("RewriteRule ^" + strings.TrimPrefix(rule.Source, "/") + "$ " + rule.Destination + " [L]\n\n")
	}

	b.WriteString(htaccessConds)
	b.WriteString("RewriteRule " + htaccessCatchAll + " " + rs.Fallback + " [L]\n\n")

	b.WriteString(`<FilesMatch "\.(` + htaccessCacheExt + `)$">` + "\n")
	b.WriteString("    ExpiresActive On\n")
	b.WriteString("    ExpiresDefault \"access plus 1 year\"\n")
	b.WriteString("</FilesMatch>\n")

	return b.String()
}

func ParseHtaccess(content string) (RuleSet, error) {
	var rs RuleSet
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		m := htaccessRulePattern.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		if m[1] == htaccessCatchAll {
			rs.Fallback = m[2]
			continue
		}
		if !strings.HasPrefix(m[1], "^") || !strings.HasSuffix(m[1], "$") {
			return RuleSet{}, errors.Errorf("%s: unsupported rewrite pattern %q", HtaccessFile, m[1])
		}
		source := "/" + strings.TrimSuffix(strings.TrimPrefix(m[1], "^"), "$")
		rs.Rules = append(rs.Rules, Rule{Source: source, Destination: m[2]})
	}
	if err := scanner.Err(); err != nil {
		return RuleSet{}, errors.WithStack(err)
	}
	return rs, nil
}
