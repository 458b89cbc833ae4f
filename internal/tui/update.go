package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and key events (required by tea.Model).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FilingLoadedMsg:
		m.filing = msg.Filing
		return m, computeCmd(msg.Filing)

	case ResultsMsg:
		m.loading = false
		m.stateReturn = msg.StateReturn
		m.report = msg.Report
		if len(m.report.Assets) > 0 {
			m.scheduleTable = newScheduleTable(&m.report.Assets[0], m.tableHeight())
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.activeTab == TabStateReturn {
				m.activeTab = TabDepreciation
			} else {
				m.activeTab = TabStateReturn
			}
			return m, nil
		case "left", "h":
			return m.selectAsset(m.selectedAsset - 1), nil
		case "right", "l":
			return m.selectAsset(m.selectedAsset + 1), nil
		}
	}

	// Schedule table handles scrolling keys on the depreciation tab.
	if m.activeTab == TabDepreciation && m.report != nil && len(m.report.Assets) > 0 {
		var cmd tea.Cmd
		m.scheduleTable, cmd = m.scheduleTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectAsset clamps the asset index and rebuilds the schedule table.
func (m Model) selectAsset(index int) Model {
	if m.report == nil || len(m.report.Assets) == 0 {
		return m
	}
	if index < 0 {
		index = 0
	}
	if index > len(m.report.Assets)-1 {
		index = len(m.report.Assets) - 1
	}
	if index != m.selectedAsset {
		m.selectedAsset = index
		m.scheduleTable = newScheduleTable(&m.report.Assets[index], m.tableHeight())
	}
	return m
}

func (m Model) tableHeight() int {
	h := m.height - 14
	if h < 4 {
		h = 4
	}
	return h
}
