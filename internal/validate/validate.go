// Package validate checks user filter patterns against the instance names a
// benchmark declares. It is a pure check: it never logs and never exits, and
// a failure is returned as a *PatternError carrying everything the caller
// needs to explain it.
package validate

import (
	"fmt"
	"strings"

	"github.com/vk/benchcheck/internal/catalog"
	"github.com/vk/benchcheck/internal/match"
)

// PatternError reports patterns that matched no instance name.
type PatternError struct {
	// Invalid holds every unmatched pattern, in input order, duplicates kept.
	Invalid []string
	Kind    catalog.Kind
	// Available holds every valid instance name, in declaration then grid order.
	Available []string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("patterns %q did not match any %s", e.Invalid, e.Kind)
}

// Render formats the failure for a human, listing the available names.
func (e *PatternError) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Patterns %q did not match any %s.\n", e.Invalid, e.Kind)
	if len(e.Available) == 0 {
		fmt.Fprintf(&sb, "The benchmark declares no %s.", e.Kind.Plural())
		return sb.String()
	}
	fmt.Fprintf(&sb, "Available %s are:", e.Kind.Plural())
	for _, name := range e.Available {
		sb.WriteString("\n- ")
		sb.WriteString(name)
	}
	return sb.String()
}

// Patterns checks that every pattern matches at least one instance of
// entities. A nil pattern list means no filter was requested and always
// passes.
func Patterns(entities []*catalog.Entity, patterns []string, kind catalog.Kind) error {
	if patterns == nil {
		return nil
	}

	names := catalog.ExpandAll(entities)

	var invalid []string
	for i, ok := range match.AllMatch(names, patterns) {
		if !ok {
			invalid = append(invalid, patterns[i])
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	if names == nil {
		names = []string{}
	}
	return &PatternError{
		Invalid:   invalid,
		Kind:      kind,
		Available: names,
	}
}

// Datasets validates dataset patterns against the benchmark's datasets.
func Datasets(b *catalog.Benchmark, patterns []string) error {
	return Patterns(b.Entities(catalog.KindDataset), patterns, catalog.KindDataset)
}

// Solvers validates solver patterns against the benchmark's solvers.
func Solvers(b *catalog.Benchmark, patterns []string) error {
	return Patterns(b.Entities(catalog.KindSolver), patterns, catalog.KindSolver)
}
