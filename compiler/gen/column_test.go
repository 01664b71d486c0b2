package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnTypeOf(t *testing.T) {
	post, article := postSchema(), articleSchema()
	tests := []struct {
		attr string
		want ColumnType
	}{
		{"title", TypeString},
		{"price", TypeFloat},
		{"status", TypeEnum},
		{"created_at", TypeDateTime},
		{"author_id", TypeInteger},
		{"author", TypeNone},
		{"missing", TypeNone},
	}
	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnTypeOf(post, tt.attr))
		})
	}
	assert.Equal(t, TypeUUID, ColumnTypeOf(article, "id"))
	assert.Equal(t, ColumnType("json"), ColumnTypeOf(article, "metadata"))
}

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "none", TypeNone.String())
	assert.Equal(t, "enum", TypeEnum.String())
	assert.Equal(t, "datetime", TypeDateTime.String())
}
