package gen

import (
	"maps"
	"slices"

	"github.com/syssam/dashgen/compiler/load"
)

// FieldDescriptor is the resolved field of one attribute before
// serialization: a descriptor type name plus its options.
type FieldDescriptor struct {
	// Attribute is the attribute name.
	Attribute string
	// ColumnType is the resolved column type, TypeNone for associations
	// and virtual attributes.
	ColumnType ColumnType
	// Type is the field descriptor name, e.g. "Number" or "BelongsTo".
	Type string
	// Options holds the field configuration.
	Options FieldOptions
}

// Expression returns the field-descriptor expression: the type name
// followed by the serialized options.
func (d *FieldDescriptor) Expression(cc CodeContext) (string, error) {
	opts, err := d.Options.Render(cc)
	if err != nil {
		return "", NewGenerationError("field", "", "attribute "+d.Attribute, err)
	}
	return d.Type + opts, nil
}

// fieldTypes maps column types to field descriptor names.
var fieldTypes = map[ColumnType]string{
	TypeBoolean:  "Boolean",
	TypeDate:     "Date",
	TypeDateTime: "DateTime",
	TypeEnum:     "Select",
	TypeFloat:    "Number",
	TypeInteger:  "Number",
	TypeTime:     "Time",
	TypeText:     "Text",
	TypeString:   "String",
	TypeUUID:     "String",
}

// enumCollection lists the keys of the model's enumeration for the attribute.
const enumCollection Code = `->(field) { {{ .Class }}.{{ pluralize .Attribute }}.keys }`

// fieldOptions holds the default options per column type.
var fieldOptions = map[ColumnType]FieldOptions{
	TypeEnum: {
		{Name: "searchable", Value: false},
		{Name: "collection", Value: enumCollection},
	},
	TypeFloat: {
		{Name: "decimals", Value: 2},
	},
}

// Fallback for column types with no entry in fieldTypes and for
// attributes that are neither columns nor associations.
const defaultFieldType = "String"

var defaultFieldOptions = FieldOptions{{Name: "searchable", Value: false}}

// Mapper maps attributes to field descriptors using the static type
// tables, optionally extended by configuration.
type Mapper struct {
	types   map[ColumnType]string
	options map[ColumnType]FieldOptions
}

// NewMapper returns a mapper with the default tables. The given types
// override or extend the type table; the given options are merged over
// the default options of their column type.
func NewMapper(types map[ColumnType]string, options map[ColumnType]FieldOptions) *Mapper {
	m := &Mapper{
		types:   maps.Clone(fieldTypes),
		options: maps.Clone(fieldOptions),
	}
	maps.Copy(m.types, types)
	for t, opts := range options {
		m.options[t] = m.options[t].Merge(opts)
	}
	return m
}

// Resolve returns the field descriptor of the given attribute.
func (m *Mapper) Resolve(s *load.Schema, attr string) *FieldDescriptor {
	d := &FieldDescriptor{Attribute: attr, ColumnType: ColumnTypeOf(s, attr)}
	if d.ColumnType != TypeNone {
		name, ok := m.types[d.ColumnType]
		if ok {
			d.Type = name
		} else {
			d.Type, d.Options = defaultFieldType, slices.Clone(defaultFieldOptions)
		}
		d.Options = d.Options.Merge(m.options[d.ColumnType])
		return d
	}
	if kind, ok := AssociationKindOf(s, attr); ok {
		d.Type = kind.String()
		return d
	}
	d.Type, d.Options = defaultFieldType, slices.Clone(defaultFieldOptions)
	return d
}

// FieldType returns the field-descriptor expression of the given attribute.
func (m *Mapper) FieldType(s *load.Schema, attr string) (string, error) {
	return m.Resolve(s, attr).Expression(CodeContext{Class: NewNames(s.Name).ClassName, Attribute: attr})
}

// defaultMapper uses the static tables only.
var defaultMapper = NewMapper(nil, nil)

// FieldType returns the field-descriptor expression of the given attribute
// using the default tables.
func FieldType(s *load.Schema, attr string) (string, error) {
	return defaultMapper.FieldType(s, attr)
}
