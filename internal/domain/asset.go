package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod selects how regular depreciation is computed.
type DepreciationMethod string

const (
	MethodMACRS             DepreciationMethod = "macrs"
	MethodStraightLine      DepreciationMethod = "straight_line"
	MethodUnitsOfProduction DepreciationMethod = "units_of_production"
)

// Valid reports whether the method is one of the supported values.
func (m DepreciationMethod) Valid() bool {
	switch m {
	case MethodMACRS, MethodStraightLine, MethodUnitsOfProduction:
		return true
	}
	return false
}

// DepreciableAsset describes one item of business property.
// Either AssetType (classified to a MACRS recovery period) or an explicit
// RecoveryPeriod must be provided.
type DepreciableAsset struct {
	Description     string             `yaml:"description" json:"description"`
	CostBasis       decimal.Decimal    `yaml:"cost_basis" json:"costBasis"`
	SalvageValue    decimal.Decimal    `yaml:"salvage_value" json:"salvageValue"`
	PlacedInService time.Time          `yaml:"placed_in_service" json:"placedInService"`
	AssetType       string             `yaml:"asset_type" json:"assetType"`
	RecoveryPeriod  decimal.Decimal    `yaml:"recovery_period" json:"recoveryPeriod"`
	Method          DepreciationMethod `yaml:"method" json:"method"`

	Section179Elected bool            `yaml:"section_179_elected" json:"section179Elected"`
	Section179Amount  decimal.Decimal `yaml:"section_179_amount" json:"section179Amount"`
	BonusElected      bool            `yaml:"bonus_elected" json:"bonusElected"`

	BusinessUsePercent decimal.Decimal `yaml:"business_use_percent" json:"businessUsePercent"`
	IsVehicle          bool            `yaml:"is_vehicle" json:"isVehicle"`

	TotalUnits    decimal.Decimal `yaml:"total_units" json:"totalUnits"`
	UnitsThisYear decimal.Decimal `yaml:"units_this_year" json:"unitsThisYear"`
}

// ScheduleYear is one row of a multi-year depreciation schedule.
type ScheduleYear struct {
	Year                    int             `json:"year"`
	BeginningBookValue      decimal.Decimal `json:"beginningBookValue"`
	Depreciation            decimal.Decimal `json:"depreciation"`
	Section179              decimal.Decimal `json:"section179,omitempty"`
	BonusDepreciation       decimal.Decimal `json:"bonusDepreciation,omitempty"`
	TotalFirstYear          decimal.Decimal `json:"totalFirstYear,omitempty"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	EndingBookValue         decimal.Decimal `json:"endingBookValue"`
}

// DepreciationResult is the first-service-year outcome for one asset plus
// its projected schedule.
type DepreciationResult struct {
	Description         string             `json:"description"`
	Method              DepreciationMethod `json:"method"`
	RecoveryPeriod      decimal.Decimal    `json:"recoveryPeriod"`
	AdjustedBasis       decimal.Decimal    `json:"adjustedBasis"`
	Section179          decimal.Decimal    `json:"section179"`
	BonusDepreciation   decimal.Decimal    `json:"bonusDepreciation"`
	RegularDepreciation decimal.Decimal    `json:"regularDepreciation"`
	CurrentYearTotal    decimal.Decimal    `json:"currentYearTotal"`
	Schedule            []ScheduleYear     `json:"schedule"`
}

// PortfolioDepreciationResult aggregates a tax year's deductions across a
// portfolio of assets.
type PortfolioDepreciationResult struct {
	TaxYear           int               `json:"taxYear"`
	Assets            []AssetYearResult `json:"assets"`
	TotalDepreciation decimal.Decimal   `json:"totalDepreciation"`
	TotalSection179   decimal.Decimal   `json:"totalSection179"`
	TotalBonus        decimal.Decimal   `json:"totalBonus"`
}

// AssetYearResult is one asset's contribution to a portfolio tax year.
type AssetYearResult struct {
	Description         string          `json:"description"`
	YearInService       int             `json:"yearInService"`
	Section179          decimal.Decimal `json:"section179"`
	BonusDepreciation   decimal.Decimal `json:"bonusDepreciation"`
	RegularDepreciation decimal.Decimal `json:"regularDepreciation"`
	Total               decimal.Decimal `json:"total"`
}

// Section179Validation reports a portfolio-wide election check. It never
// fails; limit problems surface as advisory issue strings.
type Section179Validation struct {
	RequestedSection179 decimal.Decimal `json:"requestedSection179"`
	AllowedSection179   decimal.Decimal `json:"allowedSection179"`
	StatutoryMax        decimal.Decimal `json:"statutoryMax"`
	PhaseOutReduction   decimal.Decimal `json:"phaseOutReduction"`
	BusinessIncomeLimit decimal.Decimal `json:"businessIncomeLimit"`
	Issues              []string        `json:"issues"`
}

// MidQuarterCheck reports whether a portfolio must use the mid-quarter
// convention. Advisory only: the calculators still apply half-year rates.
type MidQuarterCheck struct {
	RequiresMidQuarter bool            `json:"requiresMidQuarter"`
	Q4Percentage       decimal.Decimal `json:"q4Percentage"`
	Note               string          `json:"note"`
}
