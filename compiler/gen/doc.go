// Package gen generates Administrate dashboards for data models.
//
// For a model loaded from a load.Provider the package decides which
// attributes are exposed, resolves a field descriptor for each of them
// and renders the dashboard and controller artifacts. A route for the
// model is then inserted into the routes file.
//
// # Pipeline
//
//	load.Schema
//	     ↓
//	Attributes / FormAttributes / CollectionAttributes
//	     ↓
//	ColumnTypeOf → AssociationKindOf → Mapper.Resolve
//	     ↓
//	FieldDescriptor.Expression ("Number.with_options(decimals: 2)")
//	     ↓
//	Plan (dashboard.rb, controller.rb, RoutePatch)
//	     ↓
//	Writer, Patcher
//
// # Field Options
//
// Option values are rendered as literals. Values that must run in the
// generated file are declared as Code templates and embedded verbatim
// after template execution:
//
//	gen.WithFieldOptions(gen.TypeEnum, gen.FieldOption{
//		Name:  "collection",
//		Value: gen.Code(`->(field) { {{ .Class }}.{{ pluralize .Attribute }}.values }`),
//	})
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: invalid options
//   - GenerationError: rendering or writing failures
//   - PatchError: the routes file is missing or has no namespace declaration
//
// Example error handling:
//
//	if _, err := g.Generate(ctx, "Post"); err != nil {
//		if errors.Is(err, gen.ErrSentinelNotFound) {
//			// the routes file does not declare the namespace
//		}
//		if dashgen.IsNotFound(err) {
//			// unknown model
//		}
//	}
package gen
