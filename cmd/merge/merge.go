// Package merge folds one registry entry into another
package merge

import (
	"context"
	"fmt"
	"io"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the merge command
var Cmd = &cobra.Command{
	Use:   "merge KIND SOURCE TARGET",
	Short: "Merge one account or category into another",
	Long: `Merge SOURCE into TARGET: every record referring to SOURCE by name or id
is re-pointed at TARGET, then SOURCE is removed from the registry.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		kind, err := common.ParseKindArg(args[0])
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, cmd.OutOrStdout(), kind, args[1], args[2])
	},
}

// Run merges source into target
func Run(ctx context.Context, c *container.Container, out io.Writer, kind models.Kind, source, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}
	source = common.ResolveName(snap, kind, source)
	target = common.ResolveName(snap, kind, target)

	outcome, err := c.GetEngine().Merge(ctx, snap, kind, source, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Merged '%s' into '%s': %d records updated\n", source, target, outcome.Applied)
	return nil
}
