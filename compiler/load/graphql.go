package load

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Directives recognised on object-typed fields of a GraphQL schema.
const (
	// DirectiveHasOne marks a singular object field as a has_one association.
	DirectiveHasOne = "hasOne"
	// DirectiveRichText marks a field as a rich-text (has_one ActionText::RichText) association.
	DirectiveRichText = "richText"
)

// RichTextClass is the target class of rich-text associations.
const RichTextClass = "ActionText::RichText"

// scalarTypes maps GraphQL scalars to logical column types.
var scalarTypes = map[string]string{
	"Boolean":  TypeBoolean,
	"Int":      TypeInteger,
	"Float":    TypeFloat,
	"String":   TypeString,
	"ID":       TypeInteger,
	"Date":     TypeDate,
	"DateTime": TypeDateTime,
	"Time":     TypeTime,
	"UUID":     TypeUUID,
	"Text":     TypeText,
}

// ParseGraphQL converts a GraphQL SDL document into schemas. Every object
// type except the operation roots becomes a model:
//
//   - scalar fields become columns, enum-typed fields enumeration columns,
//   - `x: T` becomes a belongs_to association plus an `x_id` column,
//   - `x: T @hasOne` a has_one and `x: T @richText` a rich-text has_one,
//   - `xs: [T]` a has_many association,
//   - union or interface typed fields polymorphic belongs_to associations
//     plus `x_id` and `x_type` columns.
//
// Field names are converted to snake_case. The @hasOne and @richText
// directives are declared unless the document declares them itself.
func ParseGraphQL(name, sdl string) ([]*Schema, error) {
	sources := []*ast.Source{{Name: name, Input: sdl}}
	for _, d := range []string{DirectiveHasOne, DirectiveRichText} {
		if !strings.Contains(sdl, "directive @"+d) {
			sources = append(sources, &ast.Source{
				Name:    "dashgen/" + d + ".graphql",
				Input:   "directive @" + d + " on FIELD_DEFINITION\n",
				BuiltIn: true,
			})
		}
	}
	doc, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load: parse graphql schema %s: %w", name, err)
	}
	var defs []*ast.Definition
	for _, def := range doc.Types {
		if def.Kind != ast.Object || def.BuiltIn || strings.HasPrefix(def.Name, "__") {
			continue
		}
		if def == doc.Query || def == doc.Mutation || def == doc.Subscription {
			continue
		}
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return position(defs[i]) < position(defs[j])
	})
	schemas := make([]*Schema, 0, len(defs))
	for _, def := range defs {
		s, err := graphqlSchema(doc, def)
		if err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func graphqlSchema(doc *ast.Schema, def *ast.Definition) (*Schema, error) {
	s := &Schema{
		Name:  def.Name,
		Table: inflect.Underscore(inflect.Pluralize(def.Name)),
	}
	for _, f := range def.Fields {
		if strings.HasPrefix(f.Name, "__") {
			continue
		}
		name := inflect.Underscore(f.Name)
		if f.Type.Elem != nil {
			elem := doc.Types[f.Type.Name()]
			if elem != nil && elem.Kind == ast.Object {
				s.Associations = append(s.Associations, &Association{Name: name, Macro: HasMany, ClassName: elem.Name})
				continue
			}
			declare(s, &Column{Name: name, Type: TypeJSON})
			continue
		}
		typ := doc.Types[f.Type.NamedType]
		if typ == nil {
			return nil, fmt.Errorf("load: type %s field %q: unknown type %q", def.Name, f.Name, f.Type.NamedType)
		}
		switch typ.Kind {
		case ast.Scalar:
			ct, ok := scalarTypes[typ.Name]
			if !ok {
				ct = LogicalType(typ.Name)
			}
			declare(s, &Column{Name: name, Type: ct})
		case ast.Enum:
			values := make([]string, 0, len(typ.EnumValues))
			for _, v := range typ.EnumValues {
				values = append(values, strings.ToLower(v.Name))
			}
			declare(s, &Column{Name: name, Type: TypeString, Enum: values})
		case ast.Object:
			switch {
			case f.Directives.ForName(DirectiveRichText) != nil:
				s.Associations = append(s.Associations, &Association{Name: name, Macro: HasOne, ClassName: RichTextClass})
			case f.Directives.ForName(DirectiveHasOne) != nil:
				s.Associations = append(s.Associations, &Association{Name: name, Macro: HasOne, ClassName: typ.Name})
			default:
				s.Associations = append(s.Associations, &Association{Name: name, Macro: BelongsTo, ClassName: typ.Name})
				synthesize(s, &Column{Name: name + "_id", Type: TypeInteger})
			}
		case ast.Union, ast.Interface:
			s.Associations = append(s.Associations, &Association{Name: name, Macro: BelongsTo, Polymorphic: true})
			synthesize(s, &Column{Name: name + "_id", Type: TypeInteger})
			synthesize(s, &Column{Name: name + "_type", Type: TypeString})
		default:
			return nil, fmt.Errorf("load: type %s field %q: unsupported kind %s", def.Name, f.Name, typ.Kind)
		}
	}
	return s, nil
}

// declare adds a column declared by a scalar or enum field. A foreign key
// column synthesized by an earlier association field takes the declared type.
func declare(s *Schema, c *Column) {
	if prev, ok := s.Column(c.Name); ok {
		*prev = *c
		return
	}
	s.Columns = append(s.Columns, c)
}

// synthesize adds a foreign key column of an association field unless the
// type declares it.
func synthesize(s *Schema, c *Column) {
	if _, ok := s.Column(c.Name); !ok {
		s.Columns = append(s.Columns, c)
	}
}

// position orders definitions by their source and line.
func position(def *ast.Definition) string {
	if def.Position == nil {
		return def.Name
	}
	src := ""
	if def.Position.Src != nil {
		src = def.Position.Src.Name
	}
	return fmt.Sprintf("%s:%08d:%08d", src, def.Position.Line, def.Position.Column)
}

// GraphQLProvider serves the models of a GraphQL SDL file.
type GraphQLProvider struct {
	*Static
	Path string
}

// NewGraphQLProvider parses the SDL file at path.
func NewGraphQLProvider(path string) (*GraphQLProvider, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read graphql schema: %w", err)
	}
	schemas, err := ParseGraphQL(path, string(buf))
	if err != nil {
		return nil, err
	}
	st, err := NewStatic(schemas...)
	if err != nil {
		return nil, err
	}
	return &GraphQLProvider{Static: st, Path: path}, nil
}
