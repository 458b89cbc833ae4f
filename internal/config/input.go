package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// TaxFiling is the top-level YAML input: the federal return summary handed
// over by the aggregation service, the target state, and the asset
// portfolio for depreciation.
type TaxFiling struct {
	StateCode      string                      `yaml:"state_code"`
	Federal        domain.FederalReturnSummary `yaml:"federal"`
	StateData      domain.StateData            `yaml:"state_data"`
	Assets         []domain.DepreciableAsset   `yaml:"assets"`
	BusinessIncome decimal.Decimal             `yaml:"business_income"`
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a tax filing from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*TaxFiling, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var filing TaxFiling
	if err := yaml.Unmarshal(data, &filing); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateFiling(&filing); err != nil {
		return nil, fmt.Errorf("filing validation failed: %w", err)
	}

	return &filing, nil
}

// ValidateFiling enforces the basic type/range contract on the input.
// Unknown state codes and asset labels are not errors; the engine falls
// back to defaults for those.
func (ip *InputParser) ValidateFiling(filing *TaxFiling) error {
	if filing.StateCode == "" {
		return fmt.Errorf("state_code is required")
	}
	if err := ip.validateFederal(&filing.Federal); err != nil {
		return fmt.Errorf("federal summary validation failed: %w", err)
	}
	for i := range filing.Assets {
		if err := ip.validateAsset(i, &filing.Assets[i]); err != nil {
			return fmt.Errorf("asset %d validation failed: %w", i, err)
		}
	}
	if filing.BusinessIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("business income cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateFederal(fed *domain.FederalReturnSummary) error {
	if fed.TaxYear < 2000 || fed.TaxYear > 2100 {
		return fmt.Errorf("tax year %d is out of range", fed.TaxYear)
	}
	if fed.FilingStatus == "" {
		return fmt.Errorf("filing status is required")
	}
	if !fed.FilingStatus.Valid() {
		return fmt.Errorf("unknown filing status %q", fed.FilingStatus)
	}
	if fed.EarnedIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("earned income cannot be negative")
	}
	if fed.EITC.LessThan(decimal.Zero) {
		return fmt.Errorf("EITC cannot be negative")
	}
	if fed.QualifyingChildren < 0 {
		return fmt.Errorf("qualifying children cannot be negative")
	}
	if fed.StateWithheld.LessThan(decimal.Zero) {
		return fmt.Errorf("state withholding cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateAsset(_ int, asset *domain.DepreciableAsset) error {
	if asset.CostBasis.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("cost basis must be positive")
	}
	if asset.SalvageValue.LessThan(decimal.Zero) {
		return fmt.Errorf("salvage value cannot be negative")
	}
	if asset.PlacedInService.IsZero() {
		return fmt.Errorf("placed-in-service date is required")
	}
	if asset.AssetType == "" && asset.RecoveryPeriod.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("either asset type or a positive recovery period is required")
	}
	if asset.Method != "" && !asset.Method.Valid() {
		return fmt.Errorf("unknown depreciation method %q", asset.Method)
	}
	if asset.BusinessUsePercent.LessThan(decimal.Zero) || asset.BusinessUsePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("business use percent must be between 0 and 100")
	}
	if asset.Section179Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("section 179 amount cannot be negative")
	}
	if asset.Method == domain.MethodUnitsOfProduction && asset.TotalUnits.LessThan(decimal.Zero) {
		return fmt.Errorf("total units cannot be negative")
	}
	return nil
}
