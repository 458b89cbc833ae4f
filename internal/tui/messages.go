package tui

import (
	"github.com/eakarsu/AiTaxPrep-sub001/internal/config"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// FilingLoadedMsg is sent when the input file has been parsed.
type FilingLoadedMsg struct {
	Filing *config.TaxFiling
}

// ResultsMsg carries the computed state return and depreciation report.
type ResultsMsg struct {
	StateReturn *domain.StateReturnResult
	Report      *domain.DepreciationReport
}

// ErrorMsg reports a load or computation failure.
type ErrorMsg struct {
	Err error
}
