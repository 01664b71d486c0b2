package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/dashgen/compiler/gen"
)

func newFieldsCmd(c *cli) *cobra.Command {
	var (
		g      genFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "fields <Model>",
		Short: "Print the resolved dashboard fields of a model without writing files.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, closer, err := c.provider(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()
			gn, err := gen.NewGenerator(p, c.options(cmd, &g)...)
			if err != nil {
				return err
			}
			s, err := p.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fields, err := gn.Fields(s)
			if err != nil {
				return err
			}
			return printFields(cmd.OutOrStdout(), output, fields)
		},
	}
	g.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	return cmd
}

func printFields(w io.Writer, format string, fields []gen.Field) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ATTRIBUTE\tKEY\tFIELD")
		for _, f := range fields {
			fmt.Fprintf(tw, "%s\t%s\tField::%s\n", f.Attribute, f.Key, f.Expression)
		}
		return tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fields); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
