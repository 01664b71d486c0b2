package load

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/dashgen"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	p, err := NewStatic(postSchema(), &Schema{Name: "Comment"}, &Schema{Name: "Author"})
	require.NoError(t, err)

	models, err := p.Models(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Author", "Comment", "Post"}, models)

	s, err := p.Load(ctx, "Post")
	require.NoError(t, err)
	assert.Equal(t, "Post", s.Name)

	_, err = p.Load(ctx, "Missing")
	require.Error(t, err)
	assert.True(t, dashgen.IsNotFound(err))
	assert.ErrorIs(t, err, dashgen.ErrNotFound)
	assert.Contains(t, err.Error(), `"Missing"`)

	all, err := All(ctx, p)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Author", all[0].Name)
	assert.Equal(t, all, p.Schemas())
}

func TestNewStatic_Errors(t *testing.T) {
	_, err := NewStatic(&Schema{Name: "Post"}, &Schema{Name: "Post"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redeclared")

	_, err = NewStatic(&Schema{})
	require.Error(t, err)

	assert.Panics(t, func() { MustStatic(&Schema{}) })
	assert.NotPanics(t, func() { MustStatic(postSchema()) })
}
