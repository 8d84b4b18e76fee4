// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/filter"
	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/registry"
	"fjacquet/ledger-taxonomy/internal/validation"

	"github.com/spf13/cobra"
)

// SimilarNameDistance is the edit distance under which two registry names
// are reported as likely duplicates.
const SimilarNameDistance = 2

// Now is the clock used by time-based filters
var Now = time.Now

// ErrNotInitialized is returned when a command runs without the root setup
var ErrNotInitialized = errors.New("application not initialized")

// RequireContainer returns c or ErrNotInitialized
func RequireContainer(c *container.Container) (*container.Container, error) {
	if c == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}

// LoadSnapshot reads the current ledger snapshot
func LoadSnapshot(c *container.Container) (models.Snapshot, error) {
	snap, err := c.GetSnapshotStore().Load()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("error loading ledger: %w", err)
	}
	return snap, nil
}

// ParseKindArg resolves the KIND positional argument
func ParseKindArg(arg string) (models.Kind, error) {
	return validation.ParseKind(arg)
}

// ResolveName turns a NAME argument into the registry name it denotes. The
// argument may be an entity id or a name; anything the registry does not
// know is returned as given, so legacy-only names still work.
func ResolveName(snap models.Snapshot, kind models.Kind, arg string) string {
	if e, ok := registry.Resolve(snap.Registry(kind), models.NewRef(arg, arg)); ok {
		return e.Name
	}
	return arg
}

// WarnSimilar prints registry names close to name, excluding exact matches
func WarnSimilar(out io.Writer, snap models.Snapshot, kind models.Kind, name string) {
	var near []string
	for _, m := range registry.Similar(snap.Registry(kind), name, SimilarNameDistance) {
		if m.Entity.Name != name {
			near = append(near, m.Entity.Name)
		}
	}
	if len(near) > 0 {
		fmt.Fprintf(out, "Warning: %s '%s' looks similar to existing %s.\n",
			kind, name, strings.Join(quote(near), ", "))
	}
}

func quote(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "'" + v + "'"
	}
	return out
}

// QuickFlags are the quick-filter flags shared by query and stats
type QuickFlags struct {
	Type           string
	Area           string
	Account        string
	Search         string
	Time           string
	OnlyRecurrents bool
	UseSaved       bool
	Where          []string
}

// BindQuickFlags registers the quick-filter and condition flags on cmd
func BindQuickFlags(cmd *cobra.Command, f *QuickFlags) {
	d := filter.Default()
	cmd.Flags().StringVarP(&f.Type, "type", "t", d.Type, "Transaction type: income, expense, transfer, investment, revaluation or all")
	cmd.Flags().StringVarP(&f.Area, "area", "a", d.Area, "Category id or name, or all")
	cmd.Flags().StringVar(&f.Account, "account", d.Account, "Account id or name (either leg), or all")
	cmd.Flags().StringVarP(&f.Search, "search", "s", d.Search, "Case-insensitive text search")
	cmd.Flags().StringVar(&f.Time, "time", d.Time, "Time window: today, thisMonth, 7d, lastMonth or all")
	cmd.Flags().BoolVar(&f.OnlyRecurrents, "only-recurrents", false, "Only transactions generated from recurring templates")
	cmd.Flags().BoolVar(&f.UseSaved, "use-saved", false, "Start from the saved quick filter")
	cmd.Flags().StringArrayVarP(&f.Where, "where", "w", nil, "Advanced condition field:operator:value (repeatable)")
}

// ResolveQuick builds the quick filter: the saved one when UseSaved is set,
// otherwise the defaults, with every explicitly set flag applied on top.
func (f QuickFlags) ResolveQuick(cmd *cobra.Command, states filter.StateStore) (filter.QuickFilter, error) {
	q := filter.Default()
	if f.UseSaved {
		q = filter.LoadOrDefault(states)
	}

	changed := func(name string) bool {
		return !f.UseSaved || cmd.Flags().Changed(name)
	}
	if changed("type") {
		q.Type = f.Type
	}
	if changed("area") {
		q.Area = f.Area
	}
	if changed("account") {
		q.Account = f.Account
	}
	if changed("search") {
		q.Search = f.Search
	}
	if changed("time") {
		q.Time = f.Time
	}
	if changed("only-recurrents") {
		q.OnlyRecurrents = f.OnlyRecurrents
	}

	if err := validation.IsValidTransactionType(q.Type); err != nil {
		return filter.QuickFilter{}, err
	}
	if err := validation.IsValidTimeWindow(q.Time); err != nil {
		return filter.QuickFilter{}, err
	}
	return q, nil
}

// ParseConditions parses every --where expression. Operators that are not
// evaluated are accepted and logged, since they pass every transaction.
func ParseConditions(exprs []string, log logging.Logger) ([]filter.Condition, error) {
	conds := make([]filter.Condition, 0, len(exprs))
	for _, expr := range exprs {
		c, err := filter.ParseCondition(expr)
		if err != nil {
			return nil, err
		}
		if !filter.KnownOperator(c.Operator) {
			log.Warn("Condition operator is not evaluated, it matches everything",
				logging.F("operator", string(c.Operator)),
				logging.F("field", c.Field))
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// Query applies the resolved quick filter and conditions to the snapshot
func Query(snap models.Snapshot, q filter.QuickFilter, conds []filter.Condition) []models.Transaction {
	return filter.Apply(snap.Transactions, q, conds, Now())
}
