package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// DepreciationCalculator computes per-asset and portfolio depreciation with
// statutory elections.
type DepreciationCalculator struct{}

// NewDepreciationCalculator creates a depreciation calculator.
func NewDepreciationCalculator() *DepreciationCalculator {
	return &DepreciationCalculator{}
}

// validateAsset enforces the basic type/range contract. Everything else in
// the depreciation path degrades gracefully instead of failing.
func validateAsset(asset *domain.DepreciableAsset) error {
	if asset == nil {
		return fmt.Errorf("asset is required")
	}
	if asset.CostBasis.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("asset %q: cost basis must be positive", asset.Description)
	}
	if asset.SalvageValue.LessThan(decimal.Zero) {
		return fmt.Errorf("asset %q: salvage value cannot be negative", asset.Description)
	}
	if asset.BusinessUsePercent.LessThan(decimal.Zero) || asset.BusinessUsePercent.GreaterThan(oneHundred) {
		return fmt.Errorf("asset %q: business use percent must be between 0 and 100", asset.Description)
	}
	if asset.Method != "" && !asset.Method.Valid() {
		return fmt.Errorf("asset %q: unknown depreciation method %q", asset.Description, asset.Method)
	}
	if asset.RecoveryPeriod.LessThanOrEqual(decimal.Zero) && asset.AssetType == "" {
		return fmt.Errorf("asset %q: recovery period or asset type is required", asset.Description)
	}
	if asset.PlacedInService.IsZero() {
		return fmt.Errorf("asset %q: placed-in-service date is required", asset.Description)
	}
	return nil
}

// resolveRecoveryPeriod prefers an explicit recovery period over label
// classification.
func resolveRecoveryPeriod(asset *domain.DepreciableAsset) decimal.Decimal {
	if asset.RecoveryPeriod.GreaterThan(decimal.Zero) {
		return asset.RecoveryPeriod
	}
	return ClassifyAsset(asset.AssetType)
}

// resolveMethod defaults an unset method to MACRS.
func resolveMethod(asset *domain.DepreciableAsset) domain.DepreciationMethod {
	if asset.Method == "" {
		return domain.MethodMACRS
	}
	return asset.Method
}

// adjustedBasis applies the business-use percentage to the cost basis.
func adjustedBasis(asset *domain.DepreciableAsset) decimal.Decimal {
	use := asset.BusinessUsePercent
	if use.IsZero() {
		use = oneHundred
	}
	return roundCents(asset.CostBasis.Mul(use).Div(oneHundred))
}

// regularDepreciation dispatches to the method calculator for one service
// year on the post-election basis.
func regularDepreciation(asset *domain.DepreciableAsset, method domain.DepreciationMethod, basis, recoveryPeriod decimal.Decimal, yearInService int) decimal.Decimal {
	switch method {
	case domain.MethodStraightLine:
		return StraightLineDepreciation(basis, asset.SalvageValue, recoveryPeriod, yearInService)
	case domain.MethodUnitsOfProduction:
		if yearInService != 1 {
			// Units consumed are only known for the current year.
			return decimal.Zero
		}
		return UnitsOfProductionDepreciation(basis, asset.SalvageValue, asset.TotalUnits, asset.UnitsThisYear)
	default:
		return MACRSDepreciation(basis, recoveryPeriod, yearInService)
	}
}

// CalculateDepreciation computes the first-service-year result and full
// schedule for one asset: Section 179, then bonus, then regular
// depreciation on the remaining basis.
func (dc *DepreciationCalculator) CalculateDepreciation(asset *domain.DepreciableAsset) (*domain.DepreciationResult, error) {
	if err := validateAsset(asset); err != nil {
		return nil, err
	}

	method := resolveMethod(asset)
	recoveryPeriod := resolveRecoveryPeriod(asset)
	basis := adjustedBasis(asset)

	alloc := AllocateElections(asset, basis)
	regular := regularDepreciation(asset, method, alloc.RemainingBasis, recoveryPeriod, 1)

	result := &domain.DepreciationResult{
		Description:         asset.Description,
		Method:              method,
		RecoveryPeriod:      recoveryPeriod,
		AdjustedBasis:       basis,
		Section179:          alloc.Section179,
		BonusDepreciation:   alloc.Bonus,
		RegularDepreciation: regular,
		CurrentYearTotal:    roundCents(alloc.Section179.Add(alloc.Bonus).Add(regular)),
		Schedule:            GenerateSchedule(method, recoveryPeriod, alloc),
	}
	return result, nil
}
