package main

import (
	"github.com/spf13/cobra"

	"github.com/syssam/dashgen/compiler"
)

func newDashboardCmd(c *cli) *cobra.Command {
	var g genFlags
	cmd := &cobra.Command{
		Use:     "dashboard <Model>",
		Short:   "Generate the dashboard, controller and route of a model.",
		Example: "  dashgen --manifest db/schema.yml dashboard Post --namespace admin",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, closer, err := c.provider(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()
			res, err := compiler.Generate(cmd.Context(), p, args[0], c.options(cmd, &g)...)
			report(cmd.OutOrStdout(), res)
			return err
		},
	}
	g.register(cmd, true)
	return cmd
}

func newInstallCmd(c *cli) *cobra.Command {
	var g genFlags
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Generate the dashboards, controllers and routes of every model.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, closer, err := c.provider(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()
			res, err := compiler.Install(cmd.Context(), p, c.options(cmd, &g)...)
			report(cmd.OutOrStdout(), res)
			return err
		},
	}
	g.register(cmd, true)
	return cmd
}

func newWatchCmd(c *cli) *cobra.Command {
	var g genFlags
	cmd := &cobra.Command{
		Use:   "watch [Model...]",
		Short: "Regenerate dashboards and controllers when the schema file changes.",
		Long: `Regenerate dashboards and controllers when the schema file changes.
Routes are never inserted. Without models, every model is regenerated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, open, err := c.fileProvider()
			if err != nil {
				return err
			}
			w := &compiler.Watcher{
				Path:    path,
				Open:    open,
				Models:  args,
				Options: c.options(cmd, &g),
			}
			return w.Run(cmd.Context())
		},
	}
	g.register(cmd, false)
	return cmd
}
