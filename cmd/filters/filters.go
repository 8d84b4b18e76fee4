// Package filters shows and clears the saved quick filter
package filters

import (
	"fmt"
	"io"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/export"
	"fjacquet/ledger-taxonomy/internal/filter"

	"github.com/spf13/cobra"
)

// Cmd represents the filters command
var Cmd = &cobra.Command{
	Use:   "filters",
	Short: "Manage the saved quick filter",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved quick filter, or the defaults when none is saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		return Show(c, cmd.OutOrStdout())
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved quick filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		return Clear(c, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.AddCommand(showCmd, clearCmd)
}

// Show prints the saved quick filter as YAML
func Show(c *container.Container, out io.Writer) error {
	saved, err := c.GetFilterStateStore().Load()
	if err != nil {
		return fmt.Errorf("error loading filter: %w", err)
	}
	if saved == nil {
		fmt.Fprintln(out, "# no saved filter, showing defaults")
		return export.WriteYAML(out, filter.Default())
	}
	return export.WriteYAML(out, saved)
}

// Clear removes the saved quick filter
func Clear(c *container.Container, out io.Writer) error {
	if err := c.GetFilterStateStore().Clear(); err != nil {
		return fmt.Errorf("error clearing filter: %w", err)
	}
	fmt.Fprintln(out, "Saved filter cleared")
	return nil
}
