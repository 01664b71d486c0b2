package gen

import "github.com/syssam/dashgen/compiler/load"

func postSchema() *load.Schema {
	return &load.Schema{
		Name: "Post",
		Associations: []*load.Association{
			{Name: "author", Macro: load.BelongsTo, ClassName: "User"},
		},
		Columns: []*load.Column{
			{Name: "id", Type: load.TypeInteger},
			{Name: "author_id", Type: load.TypeInteger},
			{Name: "title", Type: load.TypeString},
			{Name: "price", Type: load.TypeFloat},
			{Name: "status", Type: load.TypeInteger, Enum: []string{"draft", "published"}},
			{Name: "created_at", Type: load.TypeDateTime},
			{Name: "updated_at", Type: load.TypeDateTime},
		},
	}
}

func imageSchema() *load.Schema {
	return &load.Schema{
		Name: "Image",
		Associations: []*load.Association{
			{Name: "attachable", Macro: load.BelongsTo, Polymorphic: true},
		},
		Columns: []*load.Column{
			{Name: "attachable_id", Type: load.TypeInteger},
			{Name: "attachable_type", Type: load.TypeString},
			{Name: "url", Type: load.TypeString},
		},
	}
}

func articleSchema() *load.Schema {
	return &load.Schema{
		Name: "Blog::Article",
		Associations: []*load.Association{
			{Name: "rich_text_body", Macro: load.HasOne, ClassName: load.RichTextClass},
			{Name: "cover", Macro: load.HasOne, ClassName: "Image"},
			{Name: "comments", Macro: load.HasMany, ClassName: "Comment"},
			{Name: "pinned", Macro: load.HasOne, Polymorphic: true},
		},
		Columns: []*load.Column{
			{Name: "id", Type: load.TypeUUID},
			{Name: "published", Type: load.TypeBoolean},
			{Name: "published_on", Type: load.TypeDate},
			{Name: "reading_time", Type: load.TypeTime},
			{Name: "summary", Type: load.TypeText},
			{Name: "metadata", Type: load.TypeJSON},
		},
	}
}
