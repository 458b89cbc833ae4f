package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(36)

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// ConsoleFormatter renders styled, human-readable reports.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) FormatStateReturn(result *domain.StateReturnResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	header := fmt.Sprintf("%s STATE RETURN (FORM %s)", result.StateCode, result.FormNumber)
	fmt.Fprintln(buf, titleStyle.Render(header))
	fmt.Fprintln(buf, result.FormTitle)
	fmt.Fprintln(buf, strings.Repeat("=", 60))

	if !result.HasIncomeTax {
		fmt.Fprintln(buf, positiveStyle.Render(result.Note))
		return buf.Bytes(), nil
	}

	writeLine := func(label string, amount decimal.Decimal) {
		fmt.Fprintf(buf, "%s %s\n", labelStyle.Render(label), FormatCurrency(amount))
	}

	fmt.Fprintln(buf, sectionStyle.Render("INCOME"))
	writeLine("Federal AGI", result.FederalAGI)
	writeLine("State additions", result.StateAdditions)
	writeLine("State subtractions", result.StateSubtractions)
	writeLine("State AGI", result.StateAGI)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, sectionStyle.Render("DEDUCTIONS & TAX"))
	writeLine(fmt.Sprintf("Deduction (%s)", result.DeductionType), result.DeductionAmount)
	writeLine("Taxable income", result.StateTaxableIncome)
	writeLine("State tax", result.StateTax)
	writeLine("Credits", result.StateCredits)
	writeLine("Tax after credits", result.StateTaxAfterCredits)
	writeLine("Withheld", result.StateWithheld)
	fmt.Fprintln(buf)

	if result.StateRefund.GreaterThan(decimal.Zero) {
		fmt.Fprintln(buf, positiveStyle.Render(fmt.Sprintf("REFUND: %s", FormatCurrency(result.StateRefund))))
	} else if result.StateOwed.GreaterThan(decimal.Zero) {
		fmt.Fprintln(buf, negativeStyle.Render(fmt.Sprintf("AMOUNT OWED: %s", FormatCurrency(result.StateOwed))))
	} else {
		fmt.Fprintln(buf, "Balanced: no refund, nothing owed")
	}
	if !result.RequiresFiling {
		fmt.Fprintln(buf, warnStyle.Render("Income is below the state filing threshold"))
	}

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatDepreciation(report *domain.DepreciationReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, titleStyle.Render(fmt.Sprintf("DEPRECIATION SUMMARY FOR TAX YEAR %d", report.TaxYear)))
	fmt.Fprintln(buf, strings.Repeat("=", 60))

	for _, asset := range report.Assets {
		fmt.Fprintln(buf, sectionStyle.Render(strings.ToUpper(asset.Description)))
		fmt.Fprintf(buf, "  Method: %s   Recovery period: %s years\n", asset.Method, asset.RecoveryPeriod)
		fmt.Fprintf(buf, "  Adjusted basis:      %s\n", FormatCurrency(asset.AdjustedBasis))
		fmt.Fprintf(buf, "  Section 179:         %s\n", FormatCurrency(asset.Section179))
		fmt.Fprintf(buf, "  Bonus depreciation:  %s\n", FormatCurrency(asset.BonusDepreciation))
		fmt.Fprintf(buf, "  Regular depreciation: %s\n", FormatCurrency(asset.RegularDepreciation))
		fmt.Fprintf(buf, "  First-year total:    %s\n", FormatCurrency(asset.CurrentYearTotal))

		if len(asset.Schedule) > 0 {
			fmt.Fprintf(buf, "  %-6s %14s %14s %14s %14s\n", "Year", "Begin", "Depreciation", "Accumulated", "End")
			for _, year := range asset.Schedule {
				fmt.Fprintf(buf, "  %-6d %14s %14s %14s %14s\n",
					year.Year,
					year.BeginningBookValue.StringFixed(2),
					year.Depreciation.StringFixed(2),
					year.AccumulatedDepreciation.StringFixed(2),
					year.EndingBookValue.StringFixed(2))
			}
		}
		fmt.Fprintln(buf)
	}

	if report.Portfolio != nil {
		fmt.Fprintln(buf, sectionStyle.Render("PORTFOLIO TOTALS"))
		fmt.Fprintf(buf, "  Total Section 179:   %s\n", FormatCurrency(report.Portfolio.TotalSection179))
		fmt.Fprintf(buf, "  Total bonus:         %s\n", FormatCurrency(report.Portfolio.TotalBonus))
		fmt.Fprintf(buf, "  Total depreciation:  %s\n", FormatCurrency(report.Portfolio.TotalDepreciation))
		fmt.Fprintln(buf)
	}

	if report.Section179 != nil {
		fmt.Fprintln(buf, sectionStyle.Render("SECTION 179 VALIDATION"))
		fmt.Fprintf(buf, "  Requested: %s   Allowed: %s\n",
			FormatCurrency(report.Section179.RequestedSection179),
			FormatCurrency(report.Section179.AllowedSection179))
		for _, issue := range report.Section179.Issues {
			fmt.Fprintln(buf, warnStyle.Render("  ! "+issue))
		}
		fmt.Fprintln(buf)
	}

	if report.MidQuarter != nil {
		fmt.Fprintln(buf, sectionStyle.Render("MID-QUARTER CONVENTION"))
		fmt.Fprintf(buf, "  Q4 share of basis: %s\n", FormatPercentage(report.MidQuarter.Q4Percentage))
		if report.MidQuarter.RequiresMidQuarter {
			fmt.Fprintln(buf, warnStyle.Render("  ! "+report.MidQuarter.Note))
		} else {
			fmt.Fprintln(buf, "  "+report.MidQuarter.Note)
		}
	}

	return buf.Bytes(), nil
}
