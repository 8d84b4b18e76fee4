// Package stats summarizes filtered transactions
package stats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/ledger-taxonomy/cmd/common"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/internal/analytics"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/currencyutils"
	"fjacquet/ledger-taxonomy/internal/export"
	"fjacquet/ledger-taxonomy/internal/filter"

	"github.com/spf13/cobra"
)

// Options controls a stats run
type Options struct {
	Quick      filter.QuickFilter
	Conditions []filter.Condition
	Days       int
	Format     string
}

var (
	quickFlags common.QuickFlags
	days       int
	format     string
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show income, expense and a daily series for a filter",
	Long: `Show income, expense and net totals in the base currency for the
transactions matching the filter, followed by a daily series of the most
recent days. Amounts in other currencies use the configured rates.`,
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
		if !cmd.Flags().Changed("days") {
			days = c.GetConfig().Analytics.SeriesDays
		}
		return Run(c, cmd.OutOrStdout(), Options{
			Quick:      q,
			Conditions: conds,
			Days:       days,
			Format:     format,
		})
	},
}

func init() {
	common.BindQuickFlags(Cmd, &quickFlags)
	Cmd.Flags().IntVar(&days, "days", analytics.DefaultSeriesDays, "Number of most recent days in the series")
	Cmd.Flags().StringVarP(&format, "format", "o", export.FormatTable, "Output format: table or yaml")
}

// Run computes the report and prints it
func Run(c *container.Container, out io.Writer, opts Options) error {
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	txs := common.Query(snap, opts.Quick, opts.Conditions)
	report := analytics.Report(txs, c.GetConverter().ToBase, opts.Days)

	switch opts.Format {
	case export.FormatYAML:
		return export.WriteYAML(out, report)
	case export.FormatTable, "":
		return writeTable(out, c.GetConverter().Base(), report)
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'table', 'yaml'", opts.Format)
	}
}

func writeTable(out io.Writer, base string, r analytics.Result) error {
	if r.Count == 0 {
		fmt.Fprintln(out, "No records for this filter")
		return nil
	}

	fmt.Fprintf(out, "Transactions: %d\n", r.Count)
	fmt.Fprintf(out, "Income:       %s\n", currencyutils.FormatAmount(r.Stats.Income, base))
	fmt.Fprintf(out, "Expense:      %s\n", currencyutils.FormatAmount(r.Stats.Expense, base))
	fmt.Fprintf(out, "Net:          %s %s\n", currencyutils.SignedAmount(r.Stats.Net), base)
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tDAY\tINCOME\tEXPENSE\t")
	for _, p := range r.Series {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", p.Date, p.Label, p.Income.StringFixed(2), p.Expense.StringFixed(2))
	}
	return tw.Flush()
}
