// Package rename renames registry entries and cascades the new name
package rename

import (
	"context"
	"fmt"
	"io"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/registry"

	"github.com/spf13/cobra"
)

var mergeExisting bool

// Cmd represents the rename command
var Cmd = &cobra.Command{
	Use:   "rename KIND OLD NEW",
	Short: "Rename an account or category everywhere it is used",
	Long: `Rename an account or category. Every transaction, recurring template and
(for categories) budget referring to it by name or id is updated in the
same write. Renaming onto an existing name is a merge and requires --merge.`,
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
		return Run(cmd.Context(), c, cmd.OutOrStdout(), kind, args[1], args[2], mergeExisting)
	},
}

func init() {
	Cmd.Flags().BoolVarP(&mergeExisting, "merge", "m", false, "Merge into NEW when it already exists")
}

// Run renames oldName to newName. When newName is already registered the
// rename becomes a merge, which must be allowed explicitly.
func Run(ctx context.Context, c *container.Container, out io.Writer, kind models.Kind, oldName, newName string, allowMerge bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}
	oldName = common.ResolveName(snap, kind, oldName)

	if oldName != newName {
		if _, exists := registry.Find(snap.Registry(kind), newName); exists {
			if !allowMerge {
				return fmt.Errorf("%s '%s' already exists; rerun with --merge to fold '%s' into it", kind, newName, oldName)
			}
			outcome, err := c.GetEngine().Merge(ctx, snap, kind, oldName, newName)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Merged '%s' into '%s': %d records updated\n", oldName, newName, outcome.Applied)
			return nil
		}
		common.WarnSimilar(out, snap, kind, newName)
	}

	outcome, err := c.GetEngine().Rename(ctx, snap, kind, oldName, newName)
	if err != nil {
		return err
	}
	if outcome.Update.IsEmpty() {
		fmt.Fprintln(out, "Nothing to rename")
		return nil
	}

	fmt.Fprintf(out, "Renamed '%s' to '%s': %d records updated\n", oldName, newName, outcome.Applied)
	return nil
}
