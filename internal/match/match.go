// Package match compiles the patterns used by quick-search and bulk
// select/unselect into a single matcher shape.
package match

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
)

// Kind selects the pattern dialect.
type Kind int

const (
	Glob Kind = iota
	Regex
)

// Options control how a pattern is compiled.
type Options struct {
	Kind          Kind
	CaseSensitive bool

	// WholeLine anchors the pattern to the entire text instead of a
	// substring. Glob patterns are always whole-line; the flag wraps a
	// non-anchored glob in implicit "*" on both ends when false.
	WholeLine bool
}

// Matcher tests file names against a compiled pattern.
type Matcher struct {
	g  glob.Glob
	re *regexp.Regexp
}

// Compile builds a matcher. Glob patterns follow shell wildcard rules;
// regex patterns use Go's regexp syntax.
func Compile(pattern string, opt Options) (*Matcher, error) {
	switch opt.Kind {
	case Glob:
		p := pattern
		if !opt.WholeLine {
			if !strings.HasPrefix(p, "*") {
				p = "*" + p
			}
			if !strings.HasSuffix(p, "*") {
				p += "*"
			}
		}
		if !opt.CaseSensitive {
			p = foldGlob(p)
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		return &Matcher{g: g}, nil
	case Regex:
		p := pattern
		if !opt.CaseSensitive {
			p = "(?i)" + p
		}
		if opt.WholeLine {
			p = "^(?:" + p + ")$"
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		return &Matcher{re: re}, nil
	default:
		return nil, fmt.Errorf("unknown pattern kind %d", opt.Kind)
	}
}

// Match reports whether text matches the pattern.
func (m *Matcher) Match(text string) bool {
	if m.g != nil {
		return m.g.Match(text)
	}
	return m.re.MatchString(text)
}

// foldGlob rewrites every letter into a [aA] character class so matching
// becomes case-insensitive without touching wildcard metacharacters.
func foldGlob(p string) string {
	var b strings.Builder
	b.Grow(len(p) * 2)
	inClass := false
	for _, r := range p {
		switch {
		case r == '[':
			inClass = true
			b.WriteRune(r)
		case r == ']':
			inClass = false
			b.WriteRune(r)
		case !inClass && unicode.ToLower(r) != unicode.ToUpper(r):
			b.WriteByte('[')
			b.WriteRune(unicode.ToLower(r))
			b.WriteRune(unicode.ToUpper(r))
			b.WriteByte(']')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
