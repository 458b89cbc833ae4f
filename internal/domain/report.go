package domain

import (
	"github.com/shopspring/decimal"
)

// DepreciationReport collects everything the depreciation pipeline produces
// for one filing: per-asset results, portfolio totals, and the advisory
// checks.
type DepreciationReport struct {
	TaxYear        int                          `json:"taxYear"`
	BusinessIncome decimal.Decimal              `json:"businessIncome"`
	Assets         []DepreciationResult         `json:"assets"`
	Portfolio      *PortfolioDepreciationResult `json:"portfolio"`
	Section179     *Section179Validation        `json:"section179"`
	MidQuarter     *MidQuarterCheck             `json:"midQuarter"`
}
