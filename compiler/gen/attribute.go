package gen

import (
	"strings"

	"github.com/samber/lo"

	"github.com/syssam/dashgen/compiler/load"
)

// DefaultCollectionLimit is the number of attributes shown on index pages.
const DefaultCollectionLimit = 4

// ReadOnlyAttributes are never editable through forms.
var ReadOnlyAttributes = []string{"id", "created_at", "updated_at"}

// richTextPrefix is the name prefix of rich-text associations.
const richTextPrefix = "rich_text_"

// Attributes returns the attributes exposed on the dashboard: the
// association names followed by the column names, both in declaration
// order, without the columns made redundant by an association. Each name
// appears once.
func Attributes(s *load.Schema) []string {
	all := append(s.AssociationNames(), s.ColumnNames()...)
	return lo.Without(lo.Uniq(all), RedundantAttributes(s)...)
}

// RedundantAttributes returns the foreign-key columns that are already
// represented by an association: `R_id` and `R_type` for a polymorphic
// association R, `R_id` for a belongs_to association R.
func RedundantAttributes(s *load.Schema) []string {
	return lo.FlatMap(s.AssociationNames(), func(name string, _ int) []string {
		kind, _ := AssociationKindOf(s, name)
		switch kind {
		case Polymorphic:
			return []string{name + "_id", name + "_type"}
		case BelongsTo:
			return []string{name + "_id"}
		default:
			return nil
		}
	})
}

// FormAttributes returns the editable attributes: Attributes without the
// read-only ones.
func FormAttributes(s *load.Schema) []string {
	return lo.Without(Attributes(s), ReadOnlyAttributes...)
}

// CollectionAttributes returns the first limit attributes. A non-positive
// limit returns all attributes.
func CollectionAttributes(s *load.Schema, limit int) []string {
	attrs := Attributes(s)
	if limit <= 0 || limit >= len(attrs) {
		return attrs
	}
	return attrs[:limit]
}

// AttrName returns the dashboard key of an attribute. Rich-text
// associations are declared as "rich_text_<name>" but exposed as "<name>".
func AttrName(attr string) string {
	return strings.ReplaceAll(attr, richTextPrefix, "")
}
