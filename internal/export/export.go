// Package export renders query results as a table, CSV or YAML.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/ledger-taxonomy/internal/currencyutils"
	"fjacquet/ledger-taxonomy/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatYAML  = "yaml"
)

// Formats lists every supported output format
var Formats = []string{FormatTable, FormatCSV, FormatYAML}

// CSVRow is the flat shape of a transaction in CSV output. Both halves of
// every reference are written so the file can be reconciled later.
type CSVRow struct {
	ID       string `csv:"ID"`
	Date     string `csv:"Date"`
	Type     string `csv:"Type"`
	Amount   string `csv:"Amount"`
	Currency string `csv:"Currency"`
	Area     string `csv:"Area"`
	AreaID   string `csv:"AreaID"`
	From     string `csv:"From"`
	FromID   string `csv:"FromID"`
	To       string `csv:"To"`
	ToID     string `csv:"ToID"`
	Note     string `csv:"Note"`
	Tags     string `csv:"Tags"`
}

// ToCSVRow flattens one transaction
func ToCSVRow(tx models.Transaction) CSVRow {
	return CSVRow{
		ID:       tx.ID,
		Date:     tx.Date,
		Type:     string(tx.Type),
		Amount:   tx.Amount.StringFixed(2),
		Currency: tx.Currency,
		Area:     tx.Area.Name,
		AreaID:   tx.Area.ID,
		From:     tx.From.Name,
		FromID:   tx.From.ID,
		To:       tx.To.Name,
		ToID:     tx.To.ID,
		Note:     tx.Note,
		Tags:     strings.Join(tx.Tags, "|"),
	}
}

// WriteCSV marshals txs with gocsv using delimiter
func WriteCSV(w io.Writer, txs []models.Transaction, delimiter rune) error {
	rows := make([]CSVRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, ToCSVRow(tx))
	}

	csvWriter := csv.NewWriter(w)
	if delimiter != 0 {
		csvWriter.Comma = delimiter
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteYAML writes txs as a YAML sequence
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing YAML: %w", err)
	}
	return enc.Close()
}

// WriteTable writes txs as aligned columns for the terminal
func WriteTable(w io.Writer, txs []models.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tAREA\tFROM\tTO\tNOTE")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date,
			tx.Type,
			currencyutils.FormatAmount(tx.Amount, tx.Currency),
			tx.Area.Name,
			tx.From.Name,
			tx.To.Name,
			tx.Note)
	}
	return tw.Flush()
}

// Write renders txs in format
func Write(w io.Writer, format string, txs []models.Transaction) error {
	switch format {
	case FormatTable, "":
		return WriteTable(w, txs)
	case FormatCSV:
		return WriteCSV(w, txs, ',')
	case FormatYAML:
		if txs == nil {
			txs = []models.Transaction{}
		}
		return WriteYAML(w, txs)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
