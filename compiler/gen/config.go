package gen

import (
	"log/slog"
	"path/filepath"
	"runtime"
)

// Defaults.
const (
	DefaultNamespace  = "admin"
	DefaultRoutesFile = "config/routes.rb"
)

// Config holds the configuration of a generation run.
type Config struct {
	// Namespace of the generated controllers and routes.
	Namespace string
	// Routes enables the route insertion into the routes file.
	Routes bool
	// Root is the application root all output paths are relative to.
	Root string
	// RoutesFile is the routes file path, relative to Root.
	RoutesFile string
	// SkipExisting keeps artifacts that already exist instead of overwriting them.
	SkipExisting bool
	// CollectionLimit is the number of attributes shown on index pages.
	CollectionLimit int
	// FieldTypes overrides or extends the column type => descriptor table.
	FieldTypes map[ColumnType]string
	// FieldOptions are merged over the default options of their column type.
	FieldOptions map[ColumnType]FieldOptions
	// Workers bounds the number of models rendered in parallel by Install.
	Workers int
	// Logger receives the generation events.
	Logger *slog.Logger
	// Writer writes rendered artifacts. Defaults to a FileWriter.
	Writer Writer
	// Patcher applies the route insertion. Defaults to a FilePatcher.
	Patcher Patcher
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Namespace:       DefaultNamespace,
		Routes:          true,
		Root:            ".",
		RoutesFile:      DefaultRoutesFile,
		CollectionLimit: DefaultCollectionLimit,
		Workers:         runtime.GOMAXPROCS(0),
	}
}

// DashboardPath returns the dashboard file path of a model, relative to Root.
func (c *Config) DashboardPath(n Names) string {
	return filepath.Join("app", "dashboards", n.FileName+"_dashboard.rb")
}

// ControllerPath returns the controller file path of a model, relative to Root.
func (c *Config) ControllerPath(n Names) string {
	return filepath.Join("app", "controllers", filepath.FromSlash(c.Namespace), n.PluralFileName()+"_controller.rb")
}

// path returns the absolute (Root based) path of a relative output path.
func (c *Config) path(rel string) string {
	return filepath.Join(c.Root, rel)
}

// logger returns the configured logger or the default one.
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
