package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/calculation"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/config"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// Tab identifies the visible view.
type Tab int

const (
	TabStateReturn Tab = iota
	TabDepreciation
)

// Model is the application state: the loaded filing, computed results, and
// the schedule table for the selected asset.
type Model struct {
	configPath string
	filing     *config.TaxFiling

	activeTab     Tab
	selectedAsset int

	stateReturn *domain.StateReturnResult
	report      *domain.DepreciationReport

	scheduleTable table.Model

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates the application model for an input file.
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		loading:    true,
		width:      80,
		height:     24,
	}
}

// Init kicks off loading the input file (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadFilingCmd(m.configPath)
}

// loadFilingCmd returns a command that parses the input file.
func loadFilingCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return FilingLoadedMsg{Filing: filing}
	}
}

// computeCmd returns a command that runs both pipelines over the filing.
func computeCmd(filing *config.TaxFiling) tea.Cmd {
	return func() tea.Msg {
		engine := calculation.NewEngine()

		stateReturn, err := engine.GenerateStateReturn(filing.StateCode, &filing.Federal, &filing.StateData)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		report := &domain.DepreciationReport{
			TaxYear:        filing.Federal.TaxYear,
			BusinessIncome: filing.BusinessIncome,
		}
		for i := range filing.Assets {
			result, err := engine.CalculateDepreciation(&filing.Assets[i])
			if err != nil {
				return ErrorMsg{Err: err}
			}
			report.Assets = append(report.Assets, *result)
		}
		portfolio, err := engine.CalculateTotalDepreciation(filing.Assets, filing.Federal.TaxYear)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		report.Portfolio = portfolio
		report.Section179 = engine.ValidateSection179(filing.Assets, filing.BusinessIncome)
		report.MidQuarter = engine.CheckMidQuarterConvention(filing.Assets)

		return ResultsMsg{StateReturn: stateReturn, Report: report}
	}
}

// newScheduleTable builds the bubbles table for one asset's schedule.
func newScheduleTable(result *domain.DepreciationResult, height int) table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Begin", Width: 14},
		{Title: "Depreciation", Width: 14},
		{Title: "Accumulated", Width: 14},
		{Title: "End", Width: 14},
	}
	rows := make([]table.Row, 0, len(result.Schedule))
	for _, year := range result.Schedule {
		rows = append(rows, table.Row{
			strconv.Itoa(year.Year),
			year.BeginningBookValue.StringFixed(2),
			year.Depreciation.StringFixed(2),
			year.AccumulatedDepreciation.StringFixed(2),
			year.EndingBookValue.StringFixed(2),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ColorPrimary)
	styles.Selected = styles.Selected.Foreground(ColorSuccess)
	t.SetStyles(styles)
	return t
}
