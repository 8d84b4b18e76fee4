// Package list prints a registry with usage counts
package list

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/taxonomy"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list KIND",
	Short: "List accounts or categories with how often each is used",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		kind, err := common.ParseKindArg(args[0])
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), kind)
	},
}

// Run prints the kind's registry in stored order
func Run(c *container.Container, out io.Writer, kind models.Kind) error {
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	entries := snap.Registry(kind)
	if len(entries) == 0 {
		fmt.Fprintf(out, "No %s registered\n", kind)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tUSED\tARCHIVED")
	for _, e := range entries {
		d := taxonomy.CheckDependencies(snap, kind, e.Name)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\n", e.Name, e.ID, d.Total, e.Archived)
	}
	return tw.Flush()
}
