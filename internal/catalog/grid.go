package catalog

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Parameter is one entry of a parameter grid. Name may group several
// parameters separated by commas ("n_samples, n_features"); each value of a
// grouped parameter is then a tuple or list holding one element per name.
type Parameter struct {
	Name   string
	Values []cty.Value
}

// Names returns the individual parameter names bound by p.
func (p Parameter) Names() []string {
	parts := strings.Split(p.Name, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, strings.TrimSpace(part))
	}
	return names
}

// bind splits a single grid value into the bindings it contributes.
func (p Parameter) bind(names []string, v cty.Value) []Binding {
	if len(names) == 1 {
		return []Binding{{Name: names[0], Value: v}}
	}
	elems := v.AsValueSlice()
	out := make([]Binding, len(names))
	for i, name := range names {
		out[i] = Binding{Name: name, Value: elems[i]}
	}
	return out
}

// Grid is an ordered parameter grid. Order is significant: it fixes both the
// enumeration order of combinations and the layout of rendered names.
type Grid []Parameter

// Size returns how many combinations the grid expands to.
func (g Grid) Size() int {
	n := 1
	for _, p := range g {
		n *= len(p.Values)
	}
	return n
}

func (g Grid) check() error {
	seen := make(map[string]struct{})
	for _, p := range g {
		names := p.Names()
		for _, name := range names {
			if name == "" {
				return fmt.Errorf("parameter '%s': %w", p.Name, ErrEmptyName)
			}
			if _, dup := seen[name]; dup {
				return fmt.Errorf("parameter '%s': %w", name, ErrDuplicateParameter)
			}
			seen[name] = struct{}{}
		}

		rendered := make(map[string]int, len(p.Values))
		for i, v := range p.Values {
			if !v.IsWhollyKnown() {
				return fmt.Errorf("parameter '%s', value %d: %w", p.Name, i, ErrUnknownValue)
			}
			// Values that render alike would expand to identical names.
			text := FormatValue(v)
			if first, dup := rendered[text]; dup {
				return fmt.Errorf("parameter '%s', value %d (%s) same as value %d: %w", p.Name, i, text, first, ErrDuplicateValue)
			}
			rendered[text] = i
			if len(names) == 1 {
				continue
			}
			if v.IsNull() {
				return fmt.Errorf("parameter '%s', value %d is null: %w", p.Name, i, ErrGroupArity)
			}
			ty := v.Type()
			if !ty.IsTupleType() && !ty.IsListType() {
				return fmt.Errorf("parameter '%s', value %d is a %s: %w", p.Name, i, ty.FriendlyName(), ErrGroupArity)
			}
			if got := v.LengthInt(); got != len(names) {
				return fmt.Errorf("parameter '%s', value %d has %d elements, want %d: %w", p.Name, i, got, len(names), ErrGroupArity)
			}
		}
	}
	return nil
}

// Binding assigns one value to one parameter name.
type Binding struct {
	Name  string
	Value cty.Value
}

// Combination is one point of a grid, in grid order.
type Combination []Binding

// Combinations enumerates the Cartesian product of the grid. The last
// parameter varies fastest. An empty grid yields a single empty combination;
// a parameter with no values yields none.
func (g Grid) Combinations() []Combination {
	combos := []Combination{{}}
	for _, p := range g {
		names := p.Names()
		next := make([]Combination, 0, len(combos)*len(p.Values))
		for _, prefix := range combos {
			for _, v := range p.Values {
				c := make(Combination, len(prefix), len(prefix)+len(names))
				copy(c, prefix)
				next = append(next, append(c, p.bind(names, v)...))
			}
		}
		combos = next
	}
	return combos
}
