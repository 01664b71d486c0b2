package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/dashgen/compiler/gen"
	"github.com/syssam/dashgen/compiler/load"
)

// cli holds the state shared by all commands.
type cli struct {
	configFile string
	verbose    bool
	logFormat  string
	source     sourceConfig

	// set by the root pre-run.
	file   *fileConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:           "dashgen",
		Short:         "Generate Administrate dashboards from a data model schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVarP(&c.configFile, "config", "c", defaultConfigFile, "config file")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	f.StringVar(&c.source.Manifest, "manifest", "", "YAML schema manifest")
	f.StringVar(&c.source.GraphQL, "graphql", "", "GraphQL SDL schema file")
	f.StringVar(&c.source.Snapshot, "snapshot", "", "msgpack schema snapshot")
	f.StringVar(&c.source.Driver, "driver", "", fmt.Sprintf("database driver %v", load.Drivers()))
	f.StringVar(&c.source.DSN, "dsn", "", "database connection string")
	f.StringVar(&c.source.Schema, "db-schema", "", "inspected database schema, defaults to the connection schema")

	cmd.AddCommand(
		newDashboardCmd(c),
		newInstallCmd(c),
		newFieldsCmd(c),
		newSchemaCmd(c),
		newWatchCmd(c),
	)
	return cmd
}

// setup reads the config file and creates the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	file, err := readConfig(c.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	c.file = file
	// Flags win over the file.
	src := c.source
	if src == (sourceConfig{}) {
		src = file.Schema
	}
	c.source = src
	c.logger, err = newLogger(cmd.ErrOrStderr(), c.logFormat, c.verbose)
	return err
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// provider opens the configured schema source. The returned function
// releases the source.
func (c *cli) provider(ctx context.Context) (load.Provider, func() error, error) {
	nop := func() error { return nil }
	set := 0
	for _, s := range []string{c.source.Manifest, c.source.GraphQL, c.source.Snapshot, c.source.Driver} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, nil, fmt.Errorf("exactly one schema source is required: --manifest, --graphql, --snapshot or --driver with --dsn")
	}
	switch {
	case c.source.Manifest != "":
		p, err := load.NewManifestProvider(c.source.Manifest)
		return p, nop, err
	case c.source.GraphQL != "":
		p, err := load.NewGraphQLProvider(c.source.GraphQL)
		return p, nop, err
	case c.source.Snapshot != "":
		p, err := load.NewSnapshotProvider(c.source.Snapshot)
		return p, nop, err
	default:
		if c.source.DSN == "" {
			return nil, nil, fmt.Errorf("--driver %s requires --dsn", c.source.Driver)
		}
		p, err := load.Open(ctx, c.source.Driver, c.source.DSN, c.source.Schema)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
}

// fileProvider opens a file based schema source for the watch command.
func (c *cli) fileProvider() (string, func(string) (load.Provider, error), error) {
	switch {
	case c.source.Manifest != "":
		return c.source.Manifest, func(path string) (load.Provider, error) {
			return load.NewManifestProvider(path)
		}, nil
	case c.source.GraphQL != "":
		return c.source.GraphQL, func(path string) (load.Provider, error) {
			return load.NewGraphQLProvider(path)
		}, nil
	case c.source.Snapshot != "":
		return c.source.Snapshot, func(path string) (load.Provider, error) {
			return load.NewSnapshotProvider(path)
		}, nil
	default:
		return "", nil, fmt.Errorf("watch requires a file schema source: --manifest, --graphql or --snapshot")
	}
}

// genFlags are the generation flags shared by several commands.
type genFlags struct {
	namespace       string
	routes          bool
	root            string
	routesFile      string
	skipExisting    bool
	collectionLimit int
	workers         int
}

func (g *genFlags) register(cmd *cobra.Command, routes bool) {
	f := cmd.Flags()
	f.StringVarP(&g.namespace, "namespace", "n", gen.DefaultNamespace, "namespace of the controllers and routes")
	f.StringVar(&g.root, "root", ".", "application root")
	f.BoolVar(&g.skipExisting, "skip-existing", false, "keep existing artifacts")
	f.IntVar(&g.collectionLimit, "collection-limit", gen.DefaultCollectionLimit, "attributes shown on index pages, 0 for all")
	f.IntVar(&g.workers, "workers", 0, "models rendered in parallel, defaults to GOMAXPROCS")
	if routes {
		f.BoolVar(&g.routes, "routes", true, "insert the resource routes")
		f.StringVar(&g.routesFile, "routes-file", gen.DefaultRoutesFile, "routes file, relative to the root")
	}
}

// options returns the config file options overridden by the changed flags.
func (c *cli) options(cmd *cobra.Command, g *genFlags) []gen.Option {
	opts := append(c.file.options(), gen.WithLogger(c.logger))
	changed := cmd.Flags().Changed
	if changed("namespace") {
		opts = append(opts, gen.WithNamespace(g.namespace))
	}
	if changed("root") {
		opts = append(opts, gen.WithRoot(g.root))
	}
	if changed("skip-existing") {
		opts = append(opts, gen.WithSkipExisting(g.skipExisting))
	}
	if changed("collection-limit") {
		opts = append(opts, gen.WithCollectionLimit(g.collectionLimit))
	}
	if changed("workers") {
		opts = append(opts, gen.WithWorkers(g.workers))
	}
	if changed("routes") {
		opts = append(opts, gen.WithRoutes(g.routes))
	}
	if changed("routes-file") {
		opts = append(opts, gen.WithRoutesFile(g.routesFile))
	}
	return opts
}

// report prints a generation result the way rails generators do.
func report(w io.Writer, res *gen.Result) {
	if res == nil {
		return
	}
	for _, p := range res.Written {
		fmt.Fprintf(w, "%12s  %s\n", "create", p)
	}
	for _, p := range res.Skipped {
		fmt.Fprintf(w, "%12s  %s\n", "skip", p)
	}
	for _, r := range res.Routes {
		fmt.Fprintf(w, "%12s  %s\n", "route", r)
	}
}
