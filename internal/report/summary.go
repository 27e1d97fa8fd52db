// Package report renders the per-file financial summary that accompanies
// a cleaned export: totals, VAT breakdown and date range, for a quick
// operator sanity check before the import file is handed over.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andrew-0807/ExcelProcessor/internal/models"
)

// Summary renders a plain-text financial summary of cleaned records.
func Summary(records []models.BorderouRecord, generatedAt time.Time) string {
	totalSales := decimal.Zero
	vat21 := decimal.Zero
	vat11 := decimal.Zero
	var first, last models.Date

	for _, r := range records {
		totalSales = totalSales.Add(r.Total.Decimal)
		vat21 = vat21.Add(r.VAT21.Decimal)
		vat11 = vat11.Add(r.VAT11.Decimal)
		if r.Date.IsZero() {
			continue
		}
		if first.IsZero() || r.Date.Before(first.Time) {
			first = r.Date
		}
		if last.IsZero() || r.Date.After(last.Time) {
			last = r.Date
		}
	}

	avg := decimal.Zero
	if len(records) > 0 {
		avg = totalSales.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
	}

	dateRange := "Date information not available"
	if !first.IsZero() {
		dateRange = fmt.Sprintf("%s to %s", first.Format("2006-01-02"), last.Format("2006-01-02"))
	}

	var b strings.Builder
	b.WriteString("FINANCIAL SUMMARY REPORT\n")
	b.WriteString("========================\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Period: %s\n\n", dateRange)
	b.WriteString("TRANSACTION OVERVIEW:\n")
	fmt.Fprintf(&b, "- Total Transactions: %d\n", len(records))
	fmt.Fprintf(&b, "- Total Sales Value: %s RON\n", totalSales.StringFixed(2))
	fmt.Fprintf(&b, "- Average Transaction: %s RON\n\n", avg.StringFixed(2))
	b.WriteString("TAX BREAKDOWN:\n")
	fmt.Fprintf(&b, "- TVA 21%%: %s RON\n", vat21.StringFixed(2))
	fmt.Fprintf(&b, "- TVA 11%%: %s RON\n", vat11.StringFixed(2))
	fmt.Fprintf(&b, "- Total TVA: %s RON\n", vat21.Add(vat11).StringFixed(2))
	return b.String()
}

// Write renders the summary and writes it to path.
func Write(records []models.BorderouRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating report directory: %w", err)
	}
	content := Summary(records, time.Now())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("error writing summary report: %w", err)
	}
	return nil
}
