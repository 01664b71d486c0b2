package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rules holds the inflection rules used for all generated names.
var rules = ruleset()

func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{"media", "metadata", "information", "equipment"} {
		r.AddUncountable(w)
	}
	return r
}

var lower = cases.Lower(language.English)

// Names holds the naming variants derived from a model name such as
// "Post", "BlogPost", "Blog::Post" or "blog/post".
type Names struct {
	// ClassName is the fully qualified class name ("Blog::Post").
	ClassName string
	// FileName is the snake_case name of the last segment ("post").
	FileName string
	// ClassPath holds the snake_case enclosing modules (["blog"]).
	ClassPath []string
}

// NewNames parses a model name.
func NewNames(model string) Names {
	model = strings.ReplaceAll(strings.TrimSpace(model), "::", "/")
	parts := strings.FieldsFunc(model, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return Names{}
	}
	classes := make([]string, len(parts))
	snakes := make([]string, len(parts))
	for i, p := range parts {
		classes[i] = rules.Camelize(p)
		snakes[i] = snake(p)
	}
	return Names{
		ClassName: strings.Join(classes, "::"),
		FileName:  snakes[len(snakes)-1],
		ClassPath: snakes[:len(snakes)-1],
	}
}

// PluralFileName returns the plural of the file name ("posts").
func (n Names) PluralFileName() string {
	return rules.Pluralize(n.FileName)
}

// PluralClassName returns the plural of the class name ("Blog::Posts").
func (n Names) PluralClassName() string {
	plural := rules.Camelize(n.PluralFileName())
	i := strings.LastIndex(n.ClassName, "::")
	if i < 0 {
		return plural
	}
	return n.ClassName[:i+2] + plural
}

// SingularTableName returns the class path and file name joined by "_" ("blog_post").
func (n Names) SingularTableName() string {
	return strings.Join(append(append([]string{}, n.ClassPath...), n.FileName), "_")
}

// PluralRouteName returns the resource name used in the routes file
// ("blog_posts"). Uncountable names get an "_index" suffix so the
// collection route does not clash with the member route.
func (n Names) PluralRouteName() string {
	singular := n.SingularTableName()
	plural := rules.Pluralize(singular)
	if plural == singular {
		return plural + "_index"
	}
	return plural
}

// HumanPlural returns the lower-cased, human readable plural ("blog posts").
func (n Names) HumanPlural() string {
	return lower.String(strings.ReplaceAll(n.PluralFileName(), "_", " "))
}

// ModuleName returns the module name of a namespace ("admin" => "Admin",
// "super_admins" => "SuperAdmin", "admin/v2" => "Admin::V2").
func ModuleName(namespace string) string {
	parts := strings.FieldsFunc(namespace, func(r rune) bool { return r == '/' || r == ':' })
	for i, p := range parts {
		parts[i] = rules.Camelize(rules.Singularize(p))
	}
	return strings.Join(parts, "::")
}

// snake converts the given name to snake_case ("BlogPost" => "blog_post").
func snake(s string) string {
	if s == "" {
		return s
	}
	return rules.Underscore(s)
}

// pluralize returns the plural form of a word.
func pluralize(s string) string { return rules.Pluralize(s) }

// singularize returns the singular form of a word.
func singularize(s string) string { return rules.Singularize(s) }

// camelize converts snake_case to CamelCase.
func camelize(s string) string { return rules.Camelize(s) }
