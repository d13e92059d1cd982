package catalog

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// ParametrizedName renders the concrete name of e bound to c, in the form
// name[k1=v1,k2=v2]. An empty combination renders the base name alone.
func (e *Entity) ParametrizedName(c Combination) string {
	if len(c) == 0 {
		return e.Name
	}

	var sb strings.Builder
	sb.WriteString(e.Name)
	sb.WriteByte('[')
	for i, b := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(b.Name)
		sb.WriteByte('=')
		sb.WriteString(FormatValue(b.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Expand returns every concrete instance name of e, in grid order.
func Expand(e *Entity) []string {
	combos := e.Parameters.Combinations()
	names := make([]string, 0, len(combos))
	for _, c := range combos {
		names = append(names, e.ParametrizedName(c))
	}
	return names
}

// ExpandAll concatenates Expand over entities in declaration order.
func ExpandAll(entities []*Entity) []string {
	var names []string
	for _, e := range entities {
		names = append(names, Expand(e)...)
	}
	return names
}

// FormatValue renders a parameter value the way it appears in instance names.
//
// Strings are written verbatim, integral numbers as plain decimals and other
// numbers in shortest %g form. Collections nest as [a,b] and {k=v}, with map
// and object keys in lexical order.
func FormatValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if !v.IsKnown() {
		return "?"
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString()
	case ty == cty.Number:
		return formatNumber(v.AsBigFloat())
	case ty == cty.Bool:
		return strconv.FormatBool(v.True())
	case ty.IsListType(), ty.IsTupleType(), ty.IsSetType():
		var sb strings.Builder
		sb.WriteByte('[')
		i := 0
		for it := v.ElementIterator(); it.Next(); i++ {
			_, elem := it.Element()
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(FormatValue(elem))
		}
		sb.WriteByte(']')
		return sb.String()
	case ty.IsMapType(), ty.IsObjectType():
		var sb strings.Builder
		sb.WriteByte('{')
		i := 0
		for it := v.ElementIterator(); it.Next(); i++ {
			key, elem := it.Element()
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(key.AsString())
			sb.WriteByte('=')
			sb.WriteString(FormatValue(elem))
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return v.GoString()
	}
}

func formatNumber(f *big.Float) string {
	if f.IsInt() {
		i, _ := f.Int(nil)
		return i.String()
	}
	return f.Text('g', -1)
}
