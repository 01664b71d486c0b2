package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/dashgen/compiler/load"
)

func newSchemaCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the schema source.",
	}
	cmd.AddCommand(newSchemaDumpCmd(c))
	return cmd
}

func newSchemaDumpCmd(c *cli) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the models of the schema source to a snapshot or a manifest.",
		Example: `  dashgen --driver postgres --dsn "$DATABASE_URL" schema dump --out schema.msgpack
  dashgen --graphql schema.graphql schema dump --format yaml --out schema.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			p, closer, err := c.provider(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()
			snap, err := load.TakeSnapshot(cmd.Context(), p)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			switch format {
			case "msgpack":
				err = load.WriteSnapshot(w, snap)
			case "yaml":
				err = load.WriteManifest(w, snap.Models)
			default:
				return fmt.Errorf("unknown dump format %q", format)
			}
			if err != nil {
				return err
			}
			c.logger.Info("dump schema", "models", len(snap.Models), "format", format, "out", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "msgpack", "dump format: msgpack or yaml")
	return cmd
}
