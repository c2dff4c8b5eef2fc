// Package output provides utilities for formatting and displaying mortgage results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/mortgage-calculator/internal/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Options controls what is written.
type Options struct {
	// Yearly writes the lowest remaining balance of each year instead of every period.
	Yearly bool
}

// Write renders result in the named output format.
func Write(w io.Writer, outputFormat string, result *mortgage.Result, opts Options) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, result, opts)
	case constants.OutputFormatCSV:
		if opts.Yearly {
			return CsvYearlyFormat(w, result)
		}
		return CsvFormat(w, result)
	case constants.OutputFormatJSON:
		return JSONFormat(w, result)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// Summary renders the headline totals as a boxed block.
func Summary(result *mortgage.Result) string {
	title := "Fixed Rate Mortgage (FRM)"
	if result.Type == constants.MortgageTypeAdjustable {
		title = "Adjustable Rate Mortgage (ARM)"
	}

	lines := []string{
		titleStyle.Render(title),
		summaryLine("Monthly Repayments", format.Currency(result.Summary.MonthlyPayment)),
		summaryLine("Total Repayments", format.WholeCurrency(result.Summary.TotalPaid)),
		summaryLine("Total Interest", format.WholeCurrency(result.Summary.TotalInterest)),
		summaryLine("Loan Amount", format.WholeCurrency(result.Summary.LoanAmount)),
	}
	if result.Type == constants.MortgageTypeAdjustable {
		for i, segment := range result.Segments {
			lines = append(lines, summaryLine(fmt.Sprintf("Rate Period %d", i+1),
				fmt.Sprintf("%.2f%% for %d years", segment.AnnualRatePercent, segment.DurationYears)))
		}
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func summaryLine(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-20s", label)) + value
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result *mortgage.Result, opts Options) error {
	p := message.NewPrinter(language.English)

	if _, err := fmt.Fprintln(w, Summary(result)); err != nil {
		return err
	}

	if opts.Yearly {
		_, _ = fmt.Fprintf(w, "Year | Remaining Balance\n")
		_, _ = fmt.Fprintf(w, "____ | _________________\n")
		for _, point := range result.Yearly {
			if _, err := p.Fprintf(w, "%4d | $%.2f\n", point.Year, displayValue(point.RemainingBalance)); err != nil {
				return err
			}
		}
		return nil
	}

	dated := hasDates(result)
	if dated {
		_, _ = fmt.Fprintf(w, "Month | Year | Payment | Principal | Interest | Remaining Balance | Date\n")
		_, _ = fmt.Fprintf(w, "_____ | ____ | _______ | _________ | ________ | _________________ | _______\n")
	} else {
		_, _ = fmt.Fprintf(w, "Month | Year | Payment | Principal | Interest | Remaining Balance\n")
		_, _ = fmt.Fprintf(w, "_____ | ____ | _______ | _________ | ________ | _________________\n")
	}
	for _, row := range result.Schedule {
		line := p.Sprintf("%5d | %4d | $%.2f | $%.2f | $%.2f | $%.2f",
			row.Period, row.Year,
			displayValue(row.Payment), displayValue(row.Principal),
			displayValue(row.Interest), displayValue(row.RemainingBalance))
		if dated {
			line += " | " + row.Date
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs every period in comma-separated value format.
func CsvFormat(w io.Writer, result *mortgage.Result) error {
	writer := csv.NewWriter(w)
	dated := hasDates(result)
	header := []string{"month", "year", "segment", "payment", "principal", "interest", "remaining balance"}
	if dated {
		header = append(header, "date")
	}

	records := [][]string{header}
	for _, row := range result.Schedule {
		record := []string{
			strconv.Itoa(row.Period),
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Segment),
			format.Fixed(row.Payment, 2),
			format.Fixed(row.Principal, 2),
			format.Fixed(row.Interest, 2),
			format.Fixed(row.RemainingBalance, 2),
		}
		if dated {
			record = append(record, row.Date)
		}
		records = append(records, record)
	}
	return writer.WriteAll(records)
}

// CsvYearlyFormat outputs the lowest remaining balance of each year in
// comma-separated value format.
func CsvYearlyFormat(w io.Writer, result *mortgage.Result) error {
	writer := csv.NewWriter(w)
	records := [][]string{{"year", "remaining balance"}}
	for _, point := range result.Yearly {
		records = append(records, []string{strconv.Itoa(point.Year), format.Fixed(point.RemainingBalance, 2)})
	}
	return writer.WriteAll(records)
}

// CsvString returns the CSV rendering of every period.
func CsvString(result *mortgage.Result) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, result); err != nil {
		return "", fmt.Errorf("failed to render CSV: %w", err)
	}
	return buf.String(), nil
}

// JSONFormat outputs the full result as indented JSON.
func JSONFormat(w io.Writer, result *mortgage.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func hasDates(result *mortgage.Result) bool {
	return len(result.Schedule) > 0 && result.Schedule[0].Date != ""
}

// displayValue hides floating-point residue such as -0.0000001 in tables.
func displayValue(value float64) float64 {
	if mathutil.Round(value) == 0 {
		return 0
	}
	return value
}
