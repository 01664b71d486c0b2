package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNames(t *testing.T) {
	tests := []struct {
		model       string
		class, file string
		path        []string
		pluralFile  string
		pluralClass string
		route       string
		human       string
	}{
		{"Post", "Post", "post", []string{}, "posts", "Posts", "posts", "posts"},
		{"post", "Post", "post", []string{}, "posts", "Posts", "posts", "posts"},
		{"BlogPost", "BlogPost", "blog_post", []string{}, "blog_posts", "BlogPosts", "blog_posts", "blog posts"},
		{"Blog::Post", "Blog::Post", "post", []string{"blog"}, "posts", "Blog::Posts", "blog_posts", "posts"},
		{"blog/post", "Blog::Post", "post", []string{"blog"}, "posts", "Blog::Posts", "blog_posts", "posts"},
		{"Category", "Category", "category", []string{}, "categories", "Categories", "categories", "categories"},
		{"Person", "Person", "person", []string{}, "people", "People", "people", "people"},
		{"Media", "Media", "media", []string{}, "media", "Media", "media_index", "media"},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			n := NewNames(tt.model)
			assert.Equal(t, tt.class, n.ClassName)
			assert.Equal(t, tt.file, n.FileName)
			assert.Equal(t, tt.path, n.ClassPath)
			assert.Equal(t, tt.pluralFile, n.PluralFileName())
			assert.Equal(t, tt.pluralClass, n.PluralClassName())
			assert.Equal(t, tt.route, n.PluralRouteName())
			assert.Equal(t, tt.human, n.HumanPlural())
		})
	}
}

func TestNewNames_Empty(t *testing.T) {
	assert.Equal(t, Names{}, NewNames("  "))
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "Admin", ModuleName("admin"))
	assert.Equal(t, "SuperAdmin", ModuleName("super_admins"))
	assert.Equal(t, "Admin::V2", ModuleName("admin/v2"))
}

func TestInflections(t *testing.T) {
	assert.Equal(t, "statuses", pluralize("status"))
	assert.Equal(t, "status", singularize("statuses"))
	assert.Equal(t, "BlogPost", camelize("blog_post"))
	assert.Equal(t, "blog_post", snake("BlogPost"))
	assert.Equal(t, "", snake(""))
}
