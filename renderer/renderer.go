// Package renderer turns tables into markdown reports, and markdown into HTML.
package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/stockframe"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Options holds configuration for rendering a table.
type Options struct {
	Title    string // Rendered as a level one heading, omitted if empty.
	Currency string // If set, values are displayed as amounts in that currency.
	Decimals int32  // Digits after the decimal point when Currency is not used, 2 if zero.
}

func (o Options) decimals() int32 {
	if o.Decimals <= 0 {
		return 2
	}
	return o.Decimals
}

// TableMarkdown renders a table to a markdown string, one row per date and one column per
// table column.
func TableMarkdown(t *stockframe.Table, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if opts.Title != "" {
		doc.H1(opts.Title)
	}

	columns := t.Columns()
	if domain, ok := t.Domain(); ok {
		doc.PlainText(fmt.Sprintf("%d days from %s to %s, %d columns.", t.Len(), domain.From, domain.To, len(columns)))
	} else {
		doc.PlainText("No data.")
	}
	// a table must not continue the paragraph above
	doc.PlainText("")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    append([]string{"Date"}, columns...),
		Rows:      [][]string{},
	}
	for range columns {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for on, row := range t.Rows() {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, on.String())
		for _, v := range row {
			cells = append(cells, FormatValue(v, opts))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

// FormatValue formats a single cell.
//
// Missing cells and NaN are shown as "NaN", like the arithmetic artifacts of a normalization.
func FormatValue(v stockframe.Value, opts Options) string {
	x, ok := v.Get()
	switch {
	case !ok, math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	d := decimal.NewFromFloat(x)
	if opts.Currency != "" {
		if s, ok := formatMoney(d, opts.Currency); ok {
			return s
		}
	}
	return d.StringFixed(opts.decimals())
}

// formatMoney displays d in the currency, and false if the currency is unknown.
func formatMoney(d decimal.Decimal, currency string) (string, bool) {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return "", false
	}
	// go-money works in minor units
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display(), true
}

// ValidateCurrency reports an error if the currency code is not known.
func ValidateCurrency(currency string) error {
	if money.GetCurrency(strings.ToUpper(currency)) == nil {
		return fmt.Errorf("unknown currency %q", currency)
	}
	return nil
}
