package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postSchema() *Schema {
	return &Schema{
		Name: "Post",
		Associations: []*Association{
			{Name: "author", Macro: BelongsTo, ClassName: "User"},
			{Name: "comments", Macro: HasMany, ClassName: "Comment"},
		},
		Columns: []*Column{
			{Name: "id", Type: TypeInteger},
			{Name: "author_id", Type: TypeInteger},
			{Name: "title", Type: TypeString},
			{Name: "status", Type: TypeInteger, Enum: []string{"draft", "published"}},
		},
	}
}

func TestSchema_Lookup(t *testing.T) {
	s := postSchema()

	c, ok := s.Column("title")
	require.True(t, ok)
	assert.Equal(t, TypeString, c.Type)
	_, ok = s.Column("author")
	assert.False(t, ok)

	a, ok := s.Association("comments")
	require.True(t, ok)
	assert.True(t, a.Collection())
	a, ok = s.Association("author")
	require.True(t, ok)
	assert.False(t, a.Collection())
	_, ok = s.Association("title")
	assert.False(t, ok)

	assert.True(t, s.IsEnum("status"))
	assert.False(t, s.IsEnum("title"))
	assert.False(t, s.IsEnum("missing"))
	assert.Equal(t, []string{"status"}, s.EnumColumns())
	assert.Equal(t, []string{"id", "author_id", "title", "status"}, s.ColumnNames())
	assert.Equal(t, []string{"author", "comments"}, s.AssociationNames())
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Schema)
		errMsg string
	}{
		{"valid", func(*Schema) {}, ""},
		{"empty name", func(s *Schema) { s.Name = "" }, "schema name cannot be empty"},
		{"empty column name", func(s *Schema) { s.Columns[0].Name = "" }, "column name cannot be empty"},
		{"redeclared column", func(s *Schema) { s.Columns[1].Name = "id" }, `column "id" redeclared`},
		{"missing type", func(s *Schema) { s.Columns[2].Type = "" }, `missing type for column "title"`},
		{"empty enum value", func(s *Schema) { s.Columns[3].Enum = []string{"draft", ""} }, "empty value"},
		{"empty association name", func(s *Schema) { s.Associations[0].Name = "" }, "association name cannot be empty"},
		{"redeclared association", func(s *Schema) { s.Associations[1].Name = "author" }, `association "author" redeclared`},
		{"unknown macro", func(s *Schema) { s.Associations[0].Macro = "has_and_belongs_to_many" }, "unknown macro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := postSchema()
			tt.modify(s)
			err := s.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMacro_Valid(t *testing.T) {
	assert.True(t, BelongsTo.Valid())
	assert.True(t, HasOne.Valid())
	assert.True(t, HasMany.Valid())
	assert.False(t, Macro("").Valid())
	assert.False(t, Macro("belongsTo").Valid())
}

func TestUnmarshalSchema(t *testing.T) {
	buf, err := MarshalSchema(postSchema())
	require.NoError(t, err)
	s, err := UnmarshalSchema(buf)
	require.NoError(t, err)
	assert.Equal(t, postSchema(), s)

	s, err = UnmarshalSchema([]byte(`{"name":"Tag","columns":[{"name":"label","type":"VARCHAR(64)"}]}`))
	require.NoError(t, err)
	assert.Equal(t, TypeString, s.Columns[0].Type)

	_, err = UnmarshalSchema([]byte(`{"name":""}`))
	require.Error(t, err)
	_, err = UnmarshalSchema([]byte(`{`))
	require.Error(t, err)
}
