// Package add registers new accounts and categories
package add

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/registry"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add KIND NAME",
	Short: "Add an account or category to the registry",
	Long: `Add an account or category to the registry with a fresh id.
Accounts default to the ledger's base currency. A warning is printed when
the name is close to an existing entry.`,
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
		return Run(cmd.Context(), c, cmd.OutOrStdout(), kind, args[1])
	},
}

// Run adds name to the kind's registry
func Run(ctx context.Context, c *container.Container, out io.Writer, kind models.Kind, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name = strings.TrimSpace(name)
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	if _, exists := registry.Find(snap.Registry(kind), name); exists {
		return fmt.Errorf("%s '%s' already exists", kind, name)
	}
	common.WarnSimilar(out, snap, kind, name)

	outcome, err := c.GetEngine().Add(ctx, snap, kind, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Added %s '%s' (id %s)\n", kind, outcome.Entity.Name, outcome.Entity.ID)
	return nil
}
