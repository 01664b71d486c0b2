// Package dashgen generates Administrate dashboards, controllers and
// routes from a data model schema.
//
// The generator lives in compiler/gen, the schema sources in
// compiler/load and the command line tool in cmd/dashgen. This package
// holds the errors shared by all of them.
package dashgen
