package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"
)

// Dependencies counts the records that still reference an entity by its
// legacy name.
type Dependencies struct {
	TxCount  int `json:"txCount" yaml:"tx_count"`
	RecCount int `json:"recCount" yaml:"rec_count"`
	Total    int `json:"total" yaml:"total"`
}

// CheckDependencies is a pre-delete advisory: it matches legacy names only
// and never fails. An account counts a transaction once even when both legs
// name it.
func CheckDependencies(snap models.Snapshot, kind models.Kind, name string) Dependencies {
	var d Dependencies
	if name == "" {
		return d
	}
	for _, tx := range snap.Transactions {
		if kind == models.KindAccount {
			if tx.From.Name == name || tx.To.Name == name {
				d.TxCount++
			}
		} else if tx.Area.Name == name {
			d.TxCount++
		}
	}
	for _, r := range snap.Recurrents {
		if kind == models.KindAccount {
			if r.Account.Name == name {
				d.RecCount++
			}
		} else if r.Area.Name == name {
			d.RecCount++
		}
	}
	d.Total = d.TxCount + d.RecCount
	return d
}
