// Package remove deletes registry entries
package remove

import (
	"context"
	"fmt"
	"io"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/taxonomy"

	"github.com/spf13/cobra"
)

var force bool

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:     "delete KIND NAME",
	Aliases: []string{"rm"},
	Short:   "Delete an account or category from the registry",
	Long: `Delete an account or category from the registry. Records that use it keep
their name for historical display. The command refuses while records still
reference the name unless --force is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		kind, err := common.ParseKindArg(args[0])
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, cmd.OutOrStdout(), kind, args[1], force)
	},
}

func init() {
	Cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even when records still reference the name")
}

// Run deletes name after checking its dependencies
func Run(ctx context.Context, c *container.Container, out io.Writer, kind models.Kind, name string, force bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}
	name = common.ResolveName(snap, kind, name)

	deps := taxonomy.CheckDependencies(snap, kind, name)
	if deps.Total > 0 {
		fmt.Fprintf(out, "'%s' is used by %d transactions and %d recurring templates\n", name, deps.TxCount, deps.RecCount)
		if !force {
			return fmt.Errorf("refusing to delete %s '%s' while in use; pass --force to delete anyway", kind, name)
		}
	}

	outcome, err := c.GetEngine().Delete(ctx, snap, kind, name)
	if err != nil {
		return err
	}
	if !outcome.Removed {
		return fmt.Errorf("%s '%s' not found", kind, name)
	}

	fmt.Fprintf(out, "Deleted %s '%s'\n", kind, name)
	return nil
}
