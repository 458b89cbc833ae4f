package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// StateReturnCalculator composes the profile registry, adjustment and
// credit resolvers, and the bracket calculator into a full state return.
type StateReturnCalculator struct {
	Registry *StateProfileRegistry
}

// NewStateReturnCalculator creates a state return calculator backed by the
// built-in profile registry.
func NewStateReturnCalculator() *StateReturnCalculator {
	return &StateReturnCalculator{Registry: NewStateProfileRegistry()}
}

// NewStateReturnCalculatorWithRegistry creates a state return calculator
// over a caller-supplied registry (for rates overrides and tests).
func NewStateReturnCalculatorWithRegistry(registry *StateProfileRegistry) *StateReturnCalculator {
	return &StateReturnCalculator{Registry: registry}
}

// GenerateStateReturn builds a complete state return from the federal
// summary. Unknown state codes use the default fallback tables; only
// malformed input is an error.
func (sc *StateReturnCalculator) GenerateStateReturn(stateCode string, fed *domain.FederalReturnSummary, stateData *domain.StateData) (*domain.StateReturnResult, error) {
	if fed == nil {
		return nil, fmt.Errorf("federal return summary is required")
	}
	if !fed.FilingStatus.Valid() {
		return nil, fmt.Errorf("invalid filing status: %q", fed.FilingStatus)
	}
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	if code == "" {
		return nil, fmt.Errorf("state code is required")
	}

	profile, known := sc.Registry.Lookup(code)
	if !known {
		profile = sc.Registry.DefaultProfile(code)
	}

	if !profile.HasIncomeTax {
		return sc.noTaxReturn(profile, fed), nil
	}

	result := &domain.StateReturnResult{
		StateCode:    code,
		FormNumber:   profile.FormNumber,
		FormTitle:    profile.FormTitle,
		HasIncomeTax: true,
		FederalAGI:   roundCents(fed.AGI),
	}

	// 1. Additions and subtractions to federal AGI.
	adjustments := ResolveAdjustments(code, fed, stateData)
	result.StateAdditions = adjustments.Additions
	result.StateSubtractions = adjustments.Subtractions
	result.StateAGI = roundCents(result.FederalAGI.Add(adjustments.Additions).Sub(adjustments.Subtractions))

	// 2. Itemized vs standard deduction.
	deduction := ResolveDeduction(profile, fed)
	result.DeductionType = deduction.Type
	result.DeductionAmount = deduction.Amount

	// 3. Taxable income clamps at zero.
	taxable := result.StateAGI.Sub(deduction.Amount)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}
	result.StateTaxableIncome = roundCents(taxable)

	// 4. Bracket tax.
	result.StateTax = CalculateBracketTax(result.StateTaxableIncome, profile.Brackets)

	// 5. Credits, nonrefundable against tax.
	result.StateCredits = ResolveCredits(code, fed)
	afterCredits := result.StateTax.Sub(result.StateCredits)
	if afterCredits.LessThan(decimal.Zero) {
		afterCredits = decimal.Zero
	}
	result.StateTaxAfterCredits = roundCents(afterCredits)

	// 6. Refund or balance due.
	result.StateWithheld = roundCents(fed.StateWithheld)
	diff := result.StateTaxAfterCredits.Sub(result.StateWithheld)
	if diff.GreaterThan(decimal.Zero) {
		result.StateOwed = roundCents(diff)
	} else {
		result.StateRefund = roundCents(diff.Neg())
	}

	result.RequiresFiling = result.StateAGI.GreaterThanOrEqual(profile.FilingThreshold)
	result.FormData = buildFormData(profile, fed.TaxYear, result)

	return result, nil
}

// noTaxReturn produces the zeroed early result for no-income-tax states.
func (sc *StateReturnCalculator) noTaxReturn(profile StateProfile, fed *domain.FederalReturnSummary) *domain.StateReturnResult {
	result := &domain.StateReturnResult{
		StateCode:    profile.Code,
		FormNumber:   profile.FormNumber,
		FormTitle:    profile.FormTitle,
		HasIncomeTax: false,
		Note:         fmt.Sprintf("%s has no state income tax; no return is required", profile.Code),
		FederalAGI:   roundCents(fed.AGI),
	}
	result.FormData = domain.FormData{
		FormNumber: profile.FormNumber,
		FormTitle:  profile.FormTitle,
		TaxYear:    fed.TaxYear,
	}
	return result
}

func buildFormData(profile StateProfile, taxYear int, r *domain.StateReturnResult) domain.FormData {
	lines := []domain.FormLine{
		{Label: "Federal adjusted gross income", Amount: r.FederalAGI},
		{Label: "State additions", Amount: r.StateAdditions},
		{Label: "State subtractions", Amount: r.StateSubtractions},
		{Label: "State adjusted gross income", Amount: r.StateAGI},
		{Label: fmt.Sprintf("Deduction (%s)", r.DeductionType), Amount: r.DeductionAmount},
		{Label: "State taxable income", Amount: r.StateTaxableIncome},
		{Label: "State tax", Amount: r.StateTax},
		{Label: "State credits", Amount: r.StateCredits},
		{Label: "Tax after credits", Amount: r.StateTaxAfterCredits},
		{Label: "State tax withheld", Amount: r.StateWithheld},
	}
	if r.StateRefund.GreaterThan(decimal.Zero) {
		lines = append(lines, domain.FormLine{Label: "Refund", Amount: r.StateRefund})
	} else {
		lines = append(lines, domain.FormLine{Label: "Amount owed", Amount: r.StateOwed})
	}
	return domain.FormData{
		FormNumber: profile.FormNumber,
		FormTitle:  profile.FormTitle,
		TaxYear:    taxYear,
		Lines:      lines,
	}
}
