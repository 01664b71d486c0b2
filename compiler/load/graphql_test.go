package load

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraphQL(t *testing.T) {
	buf, err := os.ReadFile(filepath.Join("testdata", "blog.graphql"))
	require.NoError(t, err)
	schemas, err := ParseGraphQL("blog.graphql", string(buf))
	require.NoError(t, err)

	names := make([]string, 0, len(schemas))
	tables := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.Name)
		tables = append(tables, s.Table)
	}
	assert.Equal(t, []string{"Post", "User", "Image", "Comment"}, names)
	assert.Equal(t, []string{"posts", "users", "images", "comments"}, tables)

	post := schemas[0]
	assert.Equal(t, []string{"id", "author_id", "title", "price", "status", "tags", "created_at"}, post.ColumnNames())
	assert.Equal(t, []*Association{
		{Name: "author", Macro: BelongsTo, ClassName: "User"},
		{Name: "comments", Macro: HasMany, ClassName: "Comment"},
	}, post.Associations)
	status, ok := post.Column("status")
	require.True(t, ok)
	assert.Equal(t, []string{"draft", "published"}, status.Enum)
	tags, ok := post.Column("tags")
	require.True(t, ok)
	assert.Equal(t, TypeJSON, tags.Type)
	created, ok := post.Column("created_at")
	require.True(t, ok)
	assert.Equal(t, TypeDateTime, created.Type)
	price, ok := post.Column("price")
	require.True(t, ok)
	assert.Equal(t, TypeFloat, price.Type)

	user := schemas[1]
	assert.Equal(t, []string{"id", "email"}, user.ColumnNames())
	assert.Equal(t, []*Association{
		{Name: "bio", Macro: HasOne, ClassName: RichTextClass},
		{Name: "avatar", Macro: HasOne, ClassName: "Image"},
	}, user.Associations)

	image := schemas[2]
	assert.Equal(t, []string{"id", "attachable_id", "attachable_type"}, image.ColumnNames())
	assert.Equal(t, []*Association{
		{Name: "attachable", Macro: BelongsTo, Polymorphic: true},
	}, image.Associations)
}

func TestParseGraphQL_DeclaredDirectives(t *testing.T) {
	schemas, err := ParseGraphQL("doc.graphql", `
directive @hasOne on FIELD_DEFINITION
type Profile { id: ID! }
type Account { id: ID! profile: Profile @hasOne }
`)
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	assert.Equal(t, "Account", schemas[1].Name)
	assert.Equal(t, HasOne, schemas[1].Associations[0].Macro)
}

func TestParseGraphQL_DeclaredForeignKeys(t *testing.T) {
	schemas, err := ParseGraphQL("keys.graphql", `
scalar UUID
union Attachable = Post | User
type User { id: ID! name: String }
type Post { id: ID! authorId: ID! author: User! title: String }
type Comment { id: ID! post: Post! postId: UUID! }
type Image { id: ID! attachableType: String! attachable: Attachable attachableId: ID! }
`)
	require.NoError(t, err)
	require.Len(t, schemas, 4)

	post := schemas[1]
	assert.Equal(t, []string{"id", "author_id", "title"}, post.ColumnNames())
	assert.Equal(t, []*Association{{Name: "author", Macro: BelongsTo, ClassName: "User"}}, post.Associations)

	comment := schemas[2]
	assert.Equal(t, []string{"id", "post_id"}, comment.ColumnNames())
	postID, ok := comment.Column("post_id")
	require.True(t, ok)
	assert.Equal(t, TypeUUID, postID.Type)

	image := schemas[3]
	assert.Equal(t, []string{"id", "attachable_type", "attachable_id"}, image.ColumnNames())
	assert.True(t, image.Associations[0].Polymorphic)
}

func TestParseGraphQL_Errors(t *testing.T) {
	_, err := ParseGraphQL("bad.graphql", "type Post {")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.graphql")

	_, err = ParseGraphQL("undefined.graphql", "type Post { author: Author }")
	require.Error(t, err)
}

func TestNewGraphQLProvider(t *testing.T) {
	ctx := context.Background()
	p, err := NewGraphQLProvider(filepath.Join("testdata", "blog.graphql"))
	require.NoError(t, err)
	models, err := p.Models(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Comment", "Image", "Post", "User"}, models)

	comment, err := p.Load(ctx, "Comment")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "body", "post_id"}, comment.ColumnNames())

	_, err = NewGraphQLProvider(filepath.Join(t.TempDir(), "missing.graphql"))
	require.Error(t, err)
}
