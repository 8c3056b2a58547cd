package redirect

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go_seo/internal/model"
)

// Kind distinguishes how a source pattern is matched
type Kind int

const (
	KindLiteral  Kind = iota // exact path comparison
	KindWildcard             // '*' segments become capture groups
	KindRegex                // user-supplied regular expression
)

// Pattern is a compiled source pattern. Matching is always anchored over
// the full path string, never a substring search.
type Pattern struct {
	kind Kind
	text string         // KindLiteral: the exact path
	re   *regexp.Regexp // KindWildcard, KindRegex
}

// placeholderRe matches positional capture references ($1, $2, ...) in target URLs
var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// CompilePattern compiles a rule source pattern into its matcher.
// Non-regex patterns without '*' compile to a plain string comparison.
func CompilePattern(source string, isRegex bool) (*Pattern, error) {
	if isRegex {
		re, err := regexp.Compile("^(?:" + source + ")$")
		if err != nil {
			return nil, fmt.Errorf("invalid regular expression %q: %w", source, err)
		}
		return &Pattern{kind: KindRegex, re: re}, nil
	}

	if !strings.Contains(source, "*") {
		return &Pattern{kind: KindLiteral, text: source}, nil
	}

	// Escape everything except '*', then turn each '*' into a capture group
	escaped := strings.ReplaceAll(regexp.QuoteMeta(source), `\*`, `(.*)`)
	re, err := regexp.Compile("^" + escaped + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid wildcard pattern %q: %w", source, err)
	}
	return &Pattern{kind: KindWildcard, re: re}, nil
}

// Kind returns the pattern kind
func (p *Pattern) Kind() Kind {
	return p.kind
}

// Match performs an anchored match of path against the pattern. On success
// it returns the captured groups in order of appearance (empty for literal
// patterns).
func (p *Pattern) Match(path string) ([]string, bool) {
	if p.kind == KindLiteral {
		if path == p.text {
			return nil, true
		}
		return nil, false
	}
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// Substitute replaces each $i placeholder in target with the i-th captured
// group. A referenced index with no corresponding captured text substitutes
// the empty string; this includes indices beyond the capture count and
// groups that did not participate in the match.
func Substitute(target string, groups []string) string {
	return placeholderRe.ReplaceAllStringFunc(target, func(ref string) string {
		idx, err := strconv.Atoi(ref[1:])
		if err != nil || idx < 1 || idx > len(groups) {
			return ""
		}
		return groups[idx-1]
	})
}

// ValidateRule checks a rule at creation/update time. Regex patterns must
// compile, the status code must be one of the four redirect codes, and a
// target without placeholders must be an absolute URL or a root-relative
// path. Resolution assumes every persisted rule already passed this check.
func ValidateRule(rule *model.RedirectRule) error {
	if rule.SourcePattern == "" {
		return fmt.Errorf("source pattern is required")
	}
	if rule.TargetURL == "" {
		return fmt.Errorf("target URL is required")
	}
	if !model.ValidStatusCode(rule.StatusCode) {
		return fmt.Errorf("status code must be one of 301, 302, 307, 308")
	}
	if _, err := CompilePattern(rule.SourcePattern, rule.IsRegex); err != nil {
		return err
	}
	if placeholderRe.MatchString(rule.TargetURL) {
		return nil
	}
	if strings.HasPrefix(rule.TargetURL, "/") {
		return nil
	}
	u, err := url.Parse(rule.TargetURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("target URL %q must be an absolute URL or a root-relative path", rule.TargetURL)
	}
	return nil
}
