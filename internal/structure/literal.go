package structure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DefaultSeparator delimits numeric sample lists unless the containing
// element overrides it with a "sep" attribute.
const DefaultSeparator = ","

// Parse converts literal text into a Go value of type T. The target cty type
// is implied from T, the text is converted with cty's string conversions and
// the result is decoded with gocty, so "1e3" is a valid float64. Booleans
// are read strictly: only "true" and "false" are accepted, not the "1" and
// "0" that cty would convert.
func Parse[T any](field, text string) (T, error) {
	var out T
	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return out, fmt.Errorf("field %q: unsupported target type %T: %w", field, out, err)
	}
	if ty == cty.String {
		if s, ok := any(text).(T); ok {
			return s, nil
		}
	} else {
		text = strings.TrimSpace(text)
	}
	if ty == cty.Bool && text != "true" && text != "false" {
		return out, &LiteralFormatError{Field: field, Text: text, Want: `"true" or "false"`}
	}

	val, err := convert.Convert(cty.StringVal(text), ty)
	if err != nil {
		return out, &LiteralFormatError{Field: field, Text: text, Want: ty.FriendlyName(), Err: err}
	}
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return out, &LiteralFormatError{Field: field, Text: text, Want: ty.FriendlyName(), Err: err}
	}
	return out, nil
}

// Attr reads an attribute as T, returning def when it is absent.
func Attr[T any](el Element, name string, def T) (T, error) {
	text, ok := el.Attr(name)
	if !ok {
		return def, nil
	}
	v, err := Parse[T](name, text)
	if err != nil {
		return def, err
	}
	return v, nil
}

// AttrPtr reads an optional attribute as T, returning nil when it is absent.
func AttrPtr[T any](el Element, name string) (*T, error) {
	text, ok := el.Attr(name)
	if !ok {
		return nil, nil
	}
	v, err := Parse[T](name, text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ChildValue reads the text of an optional child element as T.
func ChildValue[T any](el Element, name string) (*T, error) {
	text, ok := ChildText(el, name)
	if !ok {
		return nil, nil
	}
	v, err := Parse[T](name, text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseNumbers splits a delimiter-separated list of floating-point literals.
// An empty sep means DefaultSeparator. Blank text yields an empty list.
func ParseNumbers(field, text, sep string) ([]float64, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parts := strings.Split(text, sep)
	out := make([]float64, 0, len(parts))
	for i, part := range parts {
		v, err := Parse[float64](fmt.Sprintf("%s[%d]", field, i), part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatNumbers is the inverse of ParseNumbers.
func FormatNumbers(values []float64, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatFloat(v)
	}
	return strings.Join(parts, sep)
}

// FormatFloat renders v with the shortest representation that parses back
// to the same float64.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatBool renders the literal accepted by Parse[bool].
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}
