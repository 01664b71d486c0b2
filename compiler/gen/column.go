package gen

import "github.com/syssam/dashgen/compiler/load"

// ColumnType is the logical scalar type of an attribute.
type ColumnType string

// Column types with an entry in the field-type table. TypeNone marks an
// attribute that is not a plain column (an association or a virtual
// attribute).
const (
	TypeNone     ColumnType = ""
	TypeEnum     ColumnType = "enum"
	TypeBoolean  ColumnType = load.TypeBoolean
	TypeDate     ColumnType = load.TypeDate
	TypeDateTime ColumnType = load.TypeDateTime
	TypeFloat    ColumnType = load.TypeFloat
	TypeInteger  ColumnType = load.TypeInteger
	TypeTime     ColumnType = load.TypeTime
	TypeText     ColumnType = load.TypeText
	TypeString   ColumnType = load.TypeString
	TypeUUID     ColumnType = load.TypeUUID
)

// String implements fmt.Stringer.
func (t ColumnType) String() string {
	if t == TypeNone {
		return "none"
	}
	return string(t)
}

// ColumnTypeOf returns the column type of the given attribute. Enumeration
// columns resolve to TypeEnum regardless of their storage type; attributes
// that are not columns resolve to TypeNone.
func ColumnTypeOf(s *load.Schema, attr string) ColumnType {
	if s.IsEnum(attr) {
		return TypeEnum
	}
	if c, ok := s.Column(attr); ok {
		return ColumnType(c.Type)
	}
	return TypeNone
}
