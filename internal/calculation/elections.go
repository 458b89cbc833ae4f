package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// 2024 statutory election limits.
var (
	// Section179Max is the annual Section 179 expensing cap.
	Section179Max = decimal.NewFromInt(1220000)
	// Section179PhaseOutThreshold starts the dollar-for-dollar reduction
	// of the cap once total property placed in service exceeds it.
	Section179PhaseOutThreshold = decimal.NewFromInt(3050000)
	// SUVSection179Limit caps Section 179 for heavy SUVs and similar
	// vehicles.
	SUVSection179Limit = decimal.NewFromInt(30500)
	// BonusDepreciationRate applies to basis remaining after Section 179.
	BonusDepreciationRate = decimal.NewFromFloat(0.60)
)

// ElectionAllocation is the outcome of applying the statutory elections to
// an asset's adjusted basis, in order: Section 179 first, then bonus
// depreciation on what remains.
type ElectionAllocation struct {
	Section179     decimal.Decimal
	Bonus          decimal.Decimal
	RemainingBasis decimal.Decimal
}

// AllocateElections applies Section 179 and bonus depreciation to the
// adjusted basis. Each step reduces the basis available to the next; the
// remaining basis is what regular depreciation runs on.
func AllocateElections(asset *domain.DepreciableAsset, adjustedBasis decimal.Decimal) ElectionAllocation {
	remaining := adjustedBasis

	section179 := decimal.Zero
	if asset.Section179Elected {
		section179 = asset.Section179Amount
		if section179.IsZero() {
			// Electing without an amount expenses as much as allowed.
			section179 = remaining
		}
		section179 = decimal.Min(section179, Section179Max)
		if asset.IsVehicle {
			section179 = decimal.Min(section179, SUVSection179Limit)
		}
		section179 = decimal.Min(section179, remaining)
		section179 = roundCents(section179)
		remaining = remaining.Sub(section179)
	}

	bonus := decimal.Zero
	if asset.BonusElected && remaining.GreaterThan(decimal.Zero) {
		bonus = roundCents(remaining.Mul(BonusDepreciationRate))
		remaining = remaining.Sub(bonus)
	}

	return ElectionAllocation{
		Section179:     section179,
		Bonus:          bonus,
		RemainingBasis: roundCents(remaining),
	}
}
