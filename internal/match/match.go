// Package match decides whether concrete instance names match user filter
// patterns.
//
// Pattern grammar: matching ignores case and all whitespace, '*' stands for
// any run of characters, every other character (brackets included) is
// literal, and a pattern matches when it occurs anywhere in the name. So
// "lasso" matches "Lasso[reg=0.1]", and "sim*rho=0]" matches
// "simulated[n=10,rho=0]".
package match

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
)

var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a compiled filter pattern.
type Pattern struct {
	raw  string
	glob glob.Glob
}

// Compile turns a raw user pattern into a Pattern.
func Compile(raw string) (*Pattern, error) {
	var parts []string
	for _, part := range strings.Split(normalize(raw), "*") {
		if part != "" {
			parts = append(parts, glob.QuoteMeta(part))
		}
	}

	expr := "*"
	if len(parts) > 0 {
		expr = "*" + strings.Join(parts, "*") + "*"
	}

	g, err := glob.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, raw, err)
	}
	return &Pattern{raw: raw, glob: g}, nil
}

// Match reports whether name matches p.
func (p *Pattern) Match(name string) bool {
	if p == nil || p.glob == nil {
		return false
	}
	return p.glob.Match(normalize(name))
}

// String returns the pattern as the user wrote it.
func (p *Pattern) String() string {
	return p.raw
}

// Matches reports whether name matches at least one of patterns. An empty
// pattern list matches nothing; it is not treated as "no filter". Use Select
// when an empty list should keep every name.
func Matches(name string, patterns []string) bool {
	for _, raw := range patterns {
		p, err := Compile(raw)
		if err != nil {
			continue
		}
		if p.Match(name) {
			return true
		}
	}
	return false
}

// AllMatch reports, for each pattern in order, whether at least one of names
// matches it. Duplicate patterns get their own entry.
func AllMatch(names, patterns []string) []bool {
	out := make([]bool, len(patterns))
	for i, raw := range patterns {
		p, err := Compile(raw)
		if err != nil {
			continue
		}
		for _, name := range names {
			if p.Match(name) {
				out[i] = true
				break
			}
		}
	}
	return out
}

// Select returns the names matched by at least one pattern, keeping their
// order. With no patterns nothing is filtered and every name is returned.
func Select(names, patterns []string) []string {
	if len(patterns) == 0 {
		return append([]string(nil), names...)
	}
	var out []string
	for _, name := range names {
		if Matches(name, patterns) {
			out = append(out, name)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}
