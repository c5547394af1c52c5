package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/setanarut/phys2d/internal/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDESCRIPTION")
		for _, name := range scenario.Builtins() {
			f, err := scenario.LoadBuiltin(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\n", name, f.Description)
		}
		return tw.Flush()
	},
}
