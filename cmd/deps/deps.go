// Package deps reports how many records use a registry name
package deps

import (
	"fmt"
	"io"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/taxonomy"

	"github.com/spf13/cobra"
)

// Cmd represents the deps command
var Cmd = &cobra.Command{
	Use:   "deps KIND NAME",
	Short: "Count the transactions and recurring templates using a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		kind, err := common.ParseKindArg(args[0])
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), kind, args[1])
	},
}

// Run prints the dependency counts for name
func Run(c *container.Container, out io.Writer, kind models.Kind, name string) error {
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}
	name = common.ResolveName(snap, kind, name)

	d := taxonomy.CheckDependencies(snap, kind, name)
	fmt.Fprintf(out, "%s '%s'\n", kind, name)
	fmt.Fprintf(out, "  transactions: %d\n", d.TxCount)
	fmt.Fprintf(out, "  recurrents:   %d\n", d.RecCount)
	fmt.Fprintf(out, "  total:        %d\n", d.Total)
	return nil
}
