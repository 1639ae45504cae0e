package redirects

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
)

const netlifyCatchAll = "/*"

// Netlify renders a _redirects table. Existing files shadow non-forced rules on
// Netlify, so the catch-all can lead without hiding the emitted shells.
func Netlify(rs RuleSet) string {
	var b strings.Builder
	writeNetlifyLine(&b, netlifyCatchAll, rs.Fallback)
	for _, rule := range rs.Rules {
		writeNetlifyLine(&b, rule.Source, rule.Destination)
	}
	return b.String()
}

func writeNetlifyLine(b *strings.Builder, from, to string) {
	b.WriteString(from)
	b.WriteString("  ")
	b.WriteString(to)
	b.WriteString("  200\n")
}

func ParseNetlify(content string) (RuleSet, error) {
	var rs RuleSet
	scanner := bufio.NewScanner(strings.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			return RuleSet{}, errors.Errorf("%s:%d: expected source and destination", NetlifyFile, line)
		}
		if fields[0] == netlifyCatchAll {
			rs.Fallback = fields[1]
			continue
		}
		rs.Rules = append(rs.Rules, Rule{Source: fields[0], Destination: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return RuleSet{}, errors.WithStack(err)
	}
	return rs, nil
}
