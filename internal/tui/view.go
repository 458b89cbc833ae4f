package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the current tab (required by tea.Model).
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return TitleStyle.Render("taxcore") + "\n\nLoading filing...\n"
	}

	var body string
	switch m.activeTab {
	case TabDepreciation:
		body = m.depreciationView()
	default:
		body = m.stateReturnView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		StatusBarStyle.Render("tab: switch view • ←/→: select asset • ↑/↓: scroll schedule • q: quit"),
	)
}

func (m Model) headerView() string {
	labels := []struct {
		tab   Tab
		label string
	}{
		{TabStateReturn, "State Return"},
		{TabDepreciation, "Depreciation"},
	}
	tabs := []string{}
	for _, t := range labels {
		if t.tab == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(t.label))
		} else {
			tabs = append(tabs, TabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render("taxcore"),
		strings.Join(tabs, " "),
	)
}

func (m Model) stateReturnView() string {
	r := m.stateReturn
	if r == nil {
		return "No state return computed.\n"
	}
	if !r.HasIncomeTax {
		return CardStyle.Render(fmt.Sprintf("%s (%s)\n%s", r.StateCode, r.FormTitle, r.Note))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Federal AGI", "$"+r.FederalAGI.StringFixed(2)),
		metricCard("State AGI", "$"+r.StateAGI.StringFixed(2)),
		metricCard("Taxable", "$"+r.StateTaxableIncome.StringFixed(2)),
		metricCard("Tax", "$"+r.StateTaxAfterCredits.StringFixed(2)),
	)

	var outcome string
	if r.StateRefund.GreaterThan(decimal.Zero) {
		outcome = RefundStyle.Render(fmt.Sprintf("REFUND $%s", r.StateRefund.StringFixed(2)))
	} else if r.StateOwed.GreaterThan(decimal.Zero) {
		outcome = OwedStyle.Render(fmt.Sprintf("OWED $%s", r.StateOwed.StringFixed(2)))
	} else {
		outcome = "Balanced"
	}

	details := fmt.Sprintf(
		"%s, Form %s\nDeduction: %s ($%s)   Credits: $%s   Withheld: $%s",
		r.FormTitle, r.FormNumber,
		r.DeductionType, r.DeductionAmount.StringFixed(2),
		r.StateCredits.StringFixed(2), r.StateWithheld.StringFixed(2),
	)

	return lipgloss.JoinVertical(lipgloss.Left, cards, details, outcome)
}

func (m Model) depreciationView() string {
	if m.report == nil || len(m.report.Assets) == 0 {
		return "No assets in the filing.\n"
	}
	asset := m.report.Assets[m.selectedAsset]

	header := fmt.Sprintf("Asset %d/%d: %s (%s, %s-year)",
		m.selectedAsset+1, len(m.report.Assets),
		asset.Description, asset.Method, asset.RecoveryPeriod)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Basis", "$"+asset.AdjustedBasis.StringFixed(2)),
		metricCard("§179", "$"+asset.Section179.StringFixed(2)),
		metricCard("Bonus", "$"+asset.BonusDepreciation.StringFixed(2)),
		metricCard("Year 1 total", "$"+asset.CurrentYearTotal.StringFixed(2)),
	)

	var schedule string
	if len(asset.Schedule) > 0 {
		schedule = m.scheduleTable.View()
	} else {
		schedule = "No schedule for this method."
	}

	var advisories []string
	if m.report.Section179 != nil {
		for _, issue := range m.report.Section179.Issues {
			advisories = append(advisories, OwedStyle.Render("! "+issue))
		}
	}
	if m.report.MidQuarter != nil && m.report.MidQuarter.RequiresMidQuarter {
		advisories = append(advisories, OwedStyle.Render("! "+m.report.MidQuarter.Note))
	}

	parts := []string{header, cards, schedule}
	parts = append(parts, advisories...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
