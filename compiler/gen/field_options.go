package gen

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/syssam/dashgen"
)

// FieldOption is one named configuration value of a field descriptor.
type FieldOption struct {
	Name  string
	Value any
}

// FieldOptions is an ordered set of field configuration values. The order
// is the rendering order.
type FieldOptions []FieldOption

// Symbol is a value rendered as a symbol literal (:name).
type Symbol string

// Code is a value embedded verbatim as code in the generated file, to be
// evaluated later in the generated file's own context. The text is a
// template executed with a CodeContext, e.g.
//
//	->(field) { {{ .Class }}.{{ pluralize .Attribute }}.keys }
//
// renders as `->(field) { Post.statuses.keys }` for Post#status.
type Code string

// CodeContext holds the values available to Code templates.
type CodeContext struct {
	// Class is the model class name ("Post").
	Class string
	// Attribute is the attribute name ("status").
	Attribute string
}

// codeFuncs are the functions available to Code templates.
var codeFuncs = template.FuncMap{
	"pluralize":   pluralize,
	"singularize": singularize,
	"camelize":    camelize,
	"underscore":  snake,
}

// Render executes the code template.
func (c Code) Render(cc CodeContext) (string, error) {
	t, err := template.New("code").Funcs(codeFuncs).Option("missingkey=error").Parse(string(c))
	if err != nil {
		return "", fmt.Errorf("parse code %q: %w", string(c), err)
	}
	var b bytes.Buffer
	if err := t.Execute(&b, cc); err != nil {
		return "", fmt.Errorf("execute code %q: %w", string(c), err)
	}
	return b.String(), nil
}

// Get returns the value of the named option.
func (o FieldOptions) Get(name string) (any, bool) {
	for _, opt := range o {
		if opt.Name == name {
			return opt.Value, true
		}
	}
	return nil, false
}

// Merge returns a copy of o with the given options applied: existing names
// are replaced in place, new names are appended.
func (o FieldOptions) Merge(over FieldOptions) FieldOptions {
	merged := make(FieldOptions, len(o), len(o)+len(over))
	copy(merged, o)
Next:
	for _, opt := range over {
		for i := range merged {
			if merged[i].Name == opt.Name {
				merged[i].Value = opt.Value
				continue Next
			}
		}
		merged = append(merged, opt)
	}
	return merged
}

// Render returns the options suffix of a field descriptor:
// ".with_options(k1: v1, k2: v2)", or "" if there are no options. Code
// values are embedded as rendered code, all other values as literals.
func (o FieldOptions) Render(cc CodeContext) (string, error) {
	if len(o) == 0 {
		return "", nil
	}
	pairs := make([]string, 0, len(o))
	for _, opt := range o {
		var (
			v   string
			err error
		)
		if c, ok := opt.Value.(Code); ok {
			v, err = c.Render(cc)
		} else {
			v, err = Inspect(opt.Value)
		}
		if err != nil {
			return "", fmt.Errorf("option %s: %w", opt.Name, err)
		}
		pairs = append(pairs, opt.Name+": "+v)
	}
	return ".with_options(" + strings.Join(pairs, ", ") + ")", nil
}

// Inspect returns the literal representation of a plain value: nil,
// booleans, numbers, strings, symbols and lists of those.
func Inspect(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "nil", nil
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return quote(v), nil
	case Symbol:
		return ":" + string(v), nil
	case float32:
		return inspectFloat(float64(v)), nil
	case float64:
		return inspectFloat(v), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Slice, reflect.Array:
		elems := make([]string, rv.Len())
		for i := range elems {
			s, err := Inspect(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			elems[i] = s
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	}
	return "", fmt.Errorf("%w: option value of type %T", dashgen.ErrUnsupported, v)
}

func inspectFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Float::INFINITY"
	case math.IsInf(f, -1):
		return "-Float::INFINITY"
	case math.IsNaN(f):
		return "Float::NAN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// interpolation sequences that must be escaped in double-quoted literals.
var interpolation = strings.NewReplacer("#{", `\#{`, "#$", `\#$`, "#@", `\#@`)

func quote(s string) string {
	return interpolation.Replace(strconv.Quote(s))
}
