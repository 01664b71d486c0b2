package load

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Schema represents a data model that was loaded from one of the schema
// sources (manifest, GraphQL SDL, live database or snapshot). Columns and
// associations are kept in their declaration order.
type Schema struct {
	Name         string         `json:"name" yaml:"name" msgpack:"name"`
	Table        string         `json:"table,omitempty" yaml:"table,omitempty" msgpack:"table,omitempty"`
	Columns      []*Column      `json:"columns,omitempty" yaml:"columns,omitempty" msgpack:"columns,omitempty"`
	Associations []*Association `json:"associations,omitempty" yaml:"associations,omitempty" msgpack:"associations,omitempty"`
}

// Column represents a plain (scalar) column of a model.
type Column struct {
	Name string `json:"name" yaml:"name" msgpack:"name"`
	// Type holds the logical storage type. See LogicalType.
	Type string `json:"type" yaml:"type" msgpack:"type"`
	// Enum holds the values of an enumeration column. A column with
	// enum values is registered as an enumeration on its model.
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty" msgpack:"enum,omitempty"`
}

// Macro is the declaration macro of an association.
type Macro string

// Association macros.
const (
	BelongsTo Macro = "belongs_to"
	HasOne    Macro = "has_one"
	HasMany   Macro = "has_many"
)

// Valid reports if the macro is one of the known association macros.
func (m Macro) Valid() bool {
	switch m {
	case BelongsTo, HasOne, HasMany:
		return true
	}
	return false
}

// Association represents a declared link from one model to another.
type Association struct {
	Name        string `json:"name" yaml:"name" msgpack:"name"`
	Macro       Macro  `json:"macro" yaml:"macro" msgpack:"macro"`
	Polymorphic bool   `json:"polymorphic,omitempty" yaml:"polymorphic,omitempty" msgpack:"polymorphic,omitempty"`
	// ClassName of the association target, e.g. "User" or "ActionText::RichText".
	// Empty for polymorphic associations.
	ClassName string `json:"class_name,omitempty" yaml:"class_name,omitempty" msgpack:"class_name,omitempty"`
}

// Collection indicates if the association is a to-many association.
func (a Association) Collection() bool { return a.Macro == HasMany }

// Column returns the column with the given name.
func (s *Schema) Column(name string) (*Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Association returns the association with the given name.
func (s *Schema) Association(name string) (*Association, bool) {
	for _, a := range s.Associations {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// IsEnum reports if the given attribute is registered as an enumeration column.
func (s *Schema) IsEnum(name string) bool {
	c, ok := s.Column(name)
	return ok && len(c.Enum) > 0
}

// EnumColumns returns the names of the enumeration columns.
func (s *Schema) EnumColumns() []string {
	var names []string
	for _, c := range s.Columns {
		if len(c.Enum) > 0 {
			names = append(names, c.Name)
		}
	}
	return names
}

// ColumnNames returns the column names in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// AssociationNames returns the association names in declaration order.
func (s *Schema) AssociationNames() []string {
	names := make([]string, 0, len(s.Associations))
	for _, a := range s.Associations {
		names = append(names, a.Name)
	}
	return names
}

// Validate checks the loaded schema for missing names, redeclared
// members and unknown association macros.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("load: schema name cannot be empty")
	}
	seen := make(map[string]struct{}, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("load: schema %q: column name cannot be empty", s.Name)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("load: schema %q: column %q redeclared", s.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Type == "" {
			return fmt.Errorf("load: schema %q: missing type for column %q", s.Name, c.Name)
		}
		if slices.Contains(c.Enum, "") {
			return fmt.Errorf("load: schema %q: enum column %q has an empty value", s.Name, c.Name)
		}
	}
	seen = make(map[string]struct{}, len(s.Associations))
	for _, a := range s.Associations {
		if a.Name == "" {
			return fmt.Errorf("load: schema %q: association name cannot be empty", s.Name)
		}
		if _, ok := seen[a.Name]; ok {
			return fmt.Errorf("load: schema %q: association %q redeclared", s.Name, a.Name)
		}
		seen[a.Name] = struct{}{}
		if !a.Macro.Valid() {
			return fmt.Errorf("load: schema %q: association %q has unknown macro %q", s.Name, a.Name, a.Macro)
		}
	}
	return nil
}

// MarshalSchema encodes the schema into JSON.
func MarshalSchema(s *Schema) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSchema decodes the given buffer to a loaded schema.
func UnmarshalSchema(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	for _, c := range s.Columns {
		c.Type = LogicalType(c.Type)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
