package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// AdjustmentResult carries the additions/subtractions a state applies to
// federal AGI, each rounded to the cent.
type AdjustmentResult struct {
	Additions    decimal.Decimal
	Subtractions decimal.Decimal
}

// stateAdjustmentFunc computes the state-specific portion of AGI
// adjustments. Universal rules are applied separately for every state.
type stateAdjustmentFunc func(fed *domain.FederalReturnSummary) AdjustmentResult

// nyPensionExclusionCap limits New York's pension and annuity exclusion.
var nyPensionExclusionCap = decimal.NewFromInt(20000)

// stateAdjustments maps a state code to its adjustment rule. States absent
// from the map get only the universal rules.
var stateAdjustments = map[string]stateAdjustmentFunc{
	"NY": func(fed *domain.FederalReturnSummary) AdjustmentResult {
		// Pension and annuity income exclusion, capped.
		exclusion := decimal.Min(fed.PensionIncome, nyPensionExclusionCap)
		return AdjustmentResult{Subtractions: exclusion}
	},
	"IL": func(fed *domain.FederalReturnSummary) AdjustmentResult {
		// Illinois excludes retirement income entirely.
		return AdjustmentResult{Subtractions: fullRetirementIncome(fed)}
	},
	"PA": func(fed *domain.FederalReturnSummary) AdjustmentResult {
		// Pennsylvania does not tax retirement income.
		return AdjustmentResult{Subtractions: fullRetirementIncome(fed)}
	},
	"CA": func(fed *domain.FederalReturnSummary) AdjustmentResult {
		// California does not tax Social Security benefits.
		return AdjustmentResult{Subtractions: fed.TaxableSocialSecurity}
	},
}

func fullRetirementIncome(fed *domain.FederalReturnSummary) decimal.Decimal {
	return fed.RetirementIncome.Add(fed.PensionIncome).Add(fed.TaxableSocialSecurity)
}

// ResolveAdjustments computes a state's additions and subtractions to
// federal AGI: the universal municipal-bond and US-obligation rules plus
// the per-state rule when one exists.
func ResolveAdjustments(stateCode string, fed *domain.FederalReturnSummary, stateData *domain.StateData) AdjustmentResult {
	additions := decimal.Zero
	subtractions := decimal.Zero

	if stateData != nil {
		// Interest on another state's municipal bonds is taxable here.
		additions = additions.Add(stateData.OutOfStateMuniInterest)
		// Own-state municipal interest and US government obligation
		// interest are exempt.
		subtractions = subtractions.Add(stateData.InStateMuniInterest)
		subtractions = subtractions.Add(stateData.USGovInterest)
	}

	if rule, ok := stateAdjustments[strings.ToUpper(strings.TrimSpace(stateCode))]; ok {
		stateSpecific := rule(fed)
		additions = additions.Add(stateSpecific.Additions)
		subtractions = subtractions.Add(stateSpecific.Subtractions)
	}

	return AdjustmentResult{
		Additions:    roundCents(additions),
		Subtractions: roundCents(subtractions),
	}
}

// DeductionDecision is the outcome of the itemized-vs-standard comparison.
type DeductionDecision struct {
	Type   domain.DeductionType
	Amount decimal.Decimal
}

// ResolveDeduction recomputes the state itemized deduction from the federal
// Schedule A components (states disallow the state/local tax portion) and
// picks the larger of itemized and the state standard deduction. Ties favor
// standard.
func ResolveDeduction(profile StateProfile, fed *domain.FederalReturnSummary) DeductionDecision {
	standard := profile.StandardDeduction(fed.FilingStatus)

	itemized := fed.ItemizedDeductions.Total().Sub(fed.ItemizedDeductions.StateLocalTaxes)
	if itemized.LessThan(decimal.Zero) {
		itemized = decimal.Zero
	}
	itemized = roundCents(itemized)

	if itemized.GreaterThan(standard) {
		return DeductionDecision{Type: domain.DeductionItemized, Amount: itemized}
	}
	return DeductionDecision{Type: domain.DeductionStandard, Amount: standard}
}
