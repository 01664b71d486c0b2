package load

import "strings"

// Logical column types understood by the field-type mapper. Storage types
// reported by a schema source are normalised to one of these names; types
// with no logical counterpart (e.g. "decimal", "json") are kept as is.
const (
	TypeBoolean  = "boolean"
	TypeDate     = "date"
	TypeDateTime = "datetime"
	TypeFloat    = "float"
	TypeInteger  = "integer"
	TypeTime     = "time"
	TypeText     = "text"
	TypeString   = "string"
	TypeUUID     = "uuid"
	TypeDecimal  = "decimal"
	TypeJSON     = "json"
	TypeBinary   = "binary"
)

// storageTypes maps common storage type spellings to logical types.
var storageTypes = map[string]string{
	"bool":                        TypeBoolean,
	"boolean":                     TypeBoolean,
	"tinyint(1)":                  TypeBoolean,
	"date":                        TypeDate,
	"datetime":                    TypeDateTime,
	"timestamp":                   TypeDateTime,
	"timestamptz":                 TypeDateTime,
	"timestamp with time zone":    TypeDateTime,
	"timestamp without time zone": TypeDateTime,
	"float":                       TypeFloat,
	"float4":                      TypeFloat,
	"float8":                      TypeFloat,
	"double":                      TypeFloat,
	"double precision":            TypeFloat,
	"real":                        TypeFloat,
	"int":                         TypeInteger,
	"int2":                        TypeInteger,
	"int4":                        TypeInteger,
	"int8":                        TypeInteger,
	"integer":                     TypeInteger,
	"smallint":                    TypeInteger,
	"bigint":                      TypeInteger,
	"serial":                      TypeInteger,
	"bigserial":                   TypeInteger,
	"time":                        TypeTime,
	"time with time zone":         TypeTime,
	"time without time zone":      TypeTime,
	"timetz":                      TypeTime,
	"text":                        TypeText,
	"tinytext":                    TypeText,
	"mediumtext":                  TypeText,
	"longtext":                    TypeText,
	"clob":                        TypeText,
	"string":                      TypeString,
	"varchar":                     TypeString,
	"character varying":           TypeString,
	"char":                        TypeString,
	"character":                   TypeString,
	"citext":                      TypeString,
	"uuid":                        TypeUUID,
	"numeric":                     TypeDecimal,
	"decimal":                     TypeDecimal,
	"json":                        TypeJSON,
	"jsonb":                       TypeJSON,
	"blob":                        TypeBinary,
	"bytea":                       TypeBinary,
	"binary":                      TypeBinary,
}

// LogicalType normalises a storage type name (e.g. "varchar(255)",
// "TIMESTAMP", "int8") to its logical type. Unknown types are returned
// lower-cased with their size/precision suffix removed.
func LogicalType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if lt, ok := storageTypes[t]; ok {
		return lt
	}
	if i := strings.IndexByte(t, '('); i > 0 {
		t = strings.TrimSpace(t[:i])
	}
	if lt, ok := storageTypes[t]; ok {
		return lt
	}
	return t
}
