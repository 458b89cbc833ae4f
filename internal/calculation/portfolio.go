package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// midQuarterThreshold is the fraction of total basis placed in service in
// Q4 beyond which the mid-quarter convention applies.
var midQuarterThreshold = decimal.NewFromInt(40)

// yearInService computes an asset's service year for a tax year; values
// below 1 mean the asset is not yet in service.
func yearInService(asset *domain.DepreciableAsset, taxYear int) int {
	return taxYear - asset.PlacedInService.Year() + 1
}

// CalculateTotalDepreciation runs the election allocator and regular
// depreciation for every asset in a portfolio for one tax year and sums the
// results. Elections count only in each asset's first service year.
func (dc *DepreciationCalculator) CalculateTotalDepreciation(assets []domain.DepreciableAsset, taxYear int) (*domain.PortfolioDepreciationResult, error) {
	result := &domain.PortfolioDepreciationResult{TaxYear: taxYear}

	for i := range assets {
		asset := &assets[i]
		if err := validateAsset(asset); err != nil {
			return nil, err
		}
		year := yearInService(asset, taxYear)
		row := domain.AssetYearResult{
			Description:   asset.Description,
			YearInService: year,
		}
		if year >= 1 {
			method := resolveMethod(asset)
			recoveryPeriod := resolveRecoveryPeriod(asset)
			alloc := AllocateElections(asset, adjustedBasis(asset))
			row.RegularDepreciation = regularDepreciation(asset, method, alloc.RemainingBasis, recoveryPeriod, year)
			if year == 1 {
				row.Section179 = alloc.Section179
				row.BonusDepreciation = alloc.Bonus
			}
		}
		row.Total = roundCents(row.Section179.Add(row.BonusDepreciation).Add(row.RegularDepreciation))

		result.Assets = append(result.Assets, row)
		result.TotalDepreciation = roundCents(result.TotalDepreciation.Add(row.Total))
		result.TotalSection179 = roundCents(result.TotalSection179.Add(row.Section179))
		result.TotalBonus = roundCents(result.TotalBonus.Add(row.BonusDepreciation))
	}

	return result, nil
}

// ValidateSection179 checks a portfolio-wide Section 179 election against
// the statutory cap, the phase-out threshold, and the business income
// limitation. Limit problems come back as advisory issues with a computed
// allowed amount, never as an error.
func (dc *DepreciationCalculator) ValidateSection179(assets []domain.DepreciableAsset, businessIncome decimal.Decimal) *domain.Section179Validation {
	requested := decimal.Zero
	totalCost := decimal.Zero
	for i := range assets {
		asset := &assets[i]
		totalCost = totalCost.Add(asset.CostBasis)
		if asset.Section179Elected {
			amount := asset.Section179Amount
			if amount.IsZero() {
				amount = asset.CostBasis
			}
			requested = requested.Add(amount)
		}
	}
	requested = roundCents(requested)

	validation := &domain.Section179Validation{
		RequestedSection179: requested,
		StatutoryMax:        Section179Max,
		BusinessIncomeLimit: businessIncome,
		PhaseOutReduction:   decimal.Zero,
	}

	effectiveMax := Section179Max
	if totalCost.GreaterThan(Section179PhaseOutThreshold) {
		reduction := totalCost.Sub(Section179PhaseOutThreshold)
		validation.PhaseOutReduction = roundCents(reduction)
		effectiveMax = decimal.Max(decimal.Zero, Section179Max.Sub(reduction))
		validation.Issues = append(validation.Issues, fmt.Sprintf(
			"total asset cost $%s exceeds the $%s phase-out threshold; Section 179 limit reduced by $%s",
			totalCost.StringFixed(2), Section179PhaseOutThreshold.StringFixed(2), reduction.StringFixed(2)))
	}
	if requested.GreaterThan(Section179Max) {
		validation.Issues = append(validation.Issues, fmt.Sprintf(
			"requested Section 179 of $%s exceeds the statutory maximum of $%s",
			requested.StringFixed(2), Section179Max.StringFixed(2)))
	}
	if requested.GreaterThan(businessIncome) {
		validation.Issues = append(validation.Issues, fmt.Sprintf(
			"requested Section 179 of $%s exceeds business income of $%s; the excess carries forward",
			requested.StringFixed(2), businessIncome.StringFixed(2)))
	}

	validation.AllowedSection179 = roundCents(decimal.Min(requested, decimal.Min(effectiveMax, businessIncome)))
	return validation
}

// CheckMidQuarterConvention flags a portfolio whose final-quarter
// placements exceed 40% of total cost basis. Advisory only: the method
// calculators still apply half-year rates.
func (dc *DepreciationCalculator) CheckMidQuarterConvention(assets []domain.DepreciableAsset) *domain.MidQuarterCheck {
	totalBasis := decimal.Zero
	q4Basis := decimal.Zero
	for i := range assets {
		asset := &assets[i]
		totalBasis = totalBasis.Add(asset.CostBasis)
		if asset.PlacedInService.Month() >= 10 {
			q4Basis = q4Basis.Add(asset.CostBasis)
		}
	}

	check := &domain.MidQuarterCheck{Q4Percentage: decimal.Zero}
	if totalBasis.GreaterThan(decimal.Zero) {
		check.Q4Percentage = q4Basis.Div(totalBasis).Mul(oneHundred).Round(2)
	}
	check.RequiresMidQuarter = check.Q4Percentage.GreaterThan(midQuarterThreshold)
	if check.RequiresMidQuarter {
		check.Note = fmt.Sprintf("%s%% of basis was placed in service in the fourth quarter; the mid-quarter convention applies", check.Q4Percentage.StringFixed(2))
	} else {
		check.Note = "half-year convention applies"
	}
	return check
}
