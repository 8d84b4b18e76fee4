// Package filter evaluates transaction queries in two tiers: a fixed-shape
// quick filter and an open list of advanced conditions. Entity references
// resolve through either the registry id or the legacy name.
package filter

import (
	"strings"
	"time"

	"fjacquet/ledger-taxonomy/internal/dateutils"
	"fjacquet/ledger-taxonomy/internal/models"
)

// All disables a quick-filter field
const All = "all"

// Time windows understood by the quick filter. Any other value passes.
const (
	TimeAll       = "all"
	TimeToday     = "today"
	TimeThisMonth = "thisMonth"
	Time7Days     = "7d"
	TimeLastMonth = "lastMonth"
)

// QuickFilter is the always-present filter tier
type QuickFilter struct {
	Type           string `yaml:"type" json:"type"`
	Area           string `yaml:"area" json:"area"`
	Account        string `yaml:"account" json:"account"`
	Search         string `yaml:"search" json:"search"`
	Time           string `yaml:"time" json:"time"`
	OnlyRecurrents bool   `yaml:"only_recurrents,omitempty" json:"onlyRecurrents,omitempty"`
}

// Default is the quick filter used when nothing was saved
func Default() QuickFilter {
	return QuickFilter{
		Search:  "",
		Type:    All,
		Time:    TimeThisMonth,
		Area:    All,
		Account: All,
	}
}

// Match reports whether tx passes every active field. now anchors the
// today and thisMonth windows.
func (q QuickFilter) Match(tx models.Transaction, now time.Time) bool {
	if active(q.Type) && string(tx.Type) != q.Type {
		return false
	}

	if active(q.Area) && !tx.Area.Matches(q.Area) {
		return false
	}

	// Either leg of a transfer can be the account of interest.
	if active(q.Account) && !tx.From.Matches(q.Account) && !tx.To.Matches(q.Account) {
		return false
	}

	if q.Search != "" && !matchesSearch(tx, q.Search) {
		return false
	}

	switch q.Time {
	case TimeToday:
		if !dateutils.IsToday(tx.Date, now) {
			return false
		}
	case TimeThisMonth:
		if !dateutils.InMonth(tx.Date, now) {
			return false
		}
	}

	if q.OnlyRecurrents && !tx.IsRecurrent() {
		return false
	}

	return true
}

func active(v string) bool {
	return v != "" && v != All
}

func matchesSearch(tx models.Transaction, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(tx.Note), s) ||
		strings.Contains(strings.ToLower(tx.Area.Name), s) ||
		strings.Contains(strings.ToLower(tx.From.Name), s) ||
		strings.Contains(tx.Date, s) ||
		strings.Contains(tx.Amount.String(), s)
}
