// Package query lists transactions matching quick filters and conditions
package query

import (
	"fmt"
	"io"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/export"
	"fjacquet/ledger-taxonomy/internal/filter"
	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/validation"

	"github.com/spf13/cobra"
)

// Options controls a query run
type Options struct {
	Quick      filter.QuickFilter
	Conditions []filter.Condition
	Format     string
	SaveFilter bool
}

var (
	quickFlags common.QuickFlags
	format     string
	saveFilter bool
)

// Cmd represents the query command
var Cmd = &cobra.Command{
	Use:   "query",
	Short: "List transactions matching a filter, newest first",
	Long: `List transactions matching the quick filter and every --where condition.
Areas and accounts match by id or by name; accounts match either leg.

Conditions take the form field:operator:value where operator is one of
equals, contains, greater_than or less_than. Examples:

  ledger-taxonomy query --type expense --time all
  ledger-taxonomy query --area cat-food --where amount:greater_than:100
  ledger-taxonomy query --search taxi --format csv > taxi.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RequireContainer(root.GetContainer())
		if err != nil {
			return err
		}
		q, err := quickFlags.ResolveQuick(cmd, c.GetFilterStateStore())
		if err != nil {
			return err
		}
		conds, err := common.ParseConditions(quickFlags.Where, c.GetLogger())
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), Options{
			Quick:      q,
			Conditions: conds,
			Format:     format,
			SaveFilter: saveFilter,
		})
	},
}

func init() {
	common.BindQuickFlags(Cmd, &quickFlags)
	Cmd.Flags().StringVarP(&format, "format", "o", export.FormatTable, "Output format: table, csv or yaml")
	Cmd.Flags().BoolVar(&saveFilter, "save-filter", false, "Remember this quick filter for --use-saved")
}

// Run filters the ledger and writes the result in the requested format
func Run(c *container.Container, out io.Writer, opts Options) error {
	if err := validation.IsValidOutputFormat(opts.Format); err != nil {
		return err
	}

	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	result := common.Query(snap, opts.Quick, opts.Conditions)
	c.GetLogger().Debug("Query evaluated",
		logging.F(logging.FieldCount, len(result)),
		logging.F("conditions", len(opts.Conditions)))

	if opts.SaveFilter {
		if err := c.GetFilterStateStore().Save(opts.Quick); err != nil {
			return fmt.Errorf("error saving filter: %w", err)
		}
	}

	return export.Write(out, opts.Format, result)
}
