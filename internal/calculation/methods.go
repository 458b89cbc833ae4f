package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// DEPRECIATION METHOD ASSUMPTIONS:
//
// 1. MACRS tables are the IRS half-year convention percentage tables
//    (200% declining balance for 3-10 year classes, 150% for 15/20).
// 2. 27.5 and 39-year real property has no half-year table here; rate
//    lookups for those classes yield zero and schedules come out empty.
// 3. Straight-line halves the first and final service years. Units of
//    production returns zero when total units is zero.

// macrsRate builds a table entry from a published percentage.
func macrsRate(pct float64) decimal.Decimal {
	return decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100))
}

func macrsTable(pcts ...float64) []decimal.Decimal {
	rates := make([]decimal.Decimal, 0, len(pcts))
	for _, pct := range pcts {
		rates = append(rates, macrsRate(pct))
	}
	return rates
}

// macrsTables keys the half-year percentage tables by recovery period.
var macrsTables = map[string][]decimal.Decimal{
	"3":  macrsTable(33.33, 44.45, 14.81, 7.41),
	"5":  macrsTable(20.00, 32.00, 19.20, 11.52, 11.52, 5.76),
	"7":  macrsTable(14.29, 24.49, 17.49, 12.49, 8.93, 8.92, 8.93, 4.46),
	"10": macrsTable(10.00, 18.00, 14.40, 11.52, 9.22, 7.37, 6.55, 6.55, 6.56, 6.55, 3.28),
	"15": macrsTable(5.00, 9.50, 8.55, 7.70, 6.93, 6.23, 5.90, 5.90, 5.91, 5.90,
		5.91, 5.90, 5.91, 5.90, 5.91, 2.95),
	"20": macrsTable(3.750, 7.219, 6.677, 6.177, 5.713, 5.285, 4.888, 4.522, 4.462, 4.461,
		4.462, 4.461, 4.462, 4.461, 4.462, 4.461, 4.462, 4.461, 4.462, 4.461, 2.231),
}

// MACRSRates returns the half-year rate table for a recovery period, or nil
// when the class has no table (real property).
func MACRSRates(recoveryPeriod decimal.Decimal) []decimal.Decimal {
	return macrsTables[recoveryPeriod.String()]
}

// MACRSDepreciation looks up the half-year table rate for the given year in
// service and applies it to the basis. Years past the table length return
// zero: the asset is fully depreciated.
func MACRSDepreciation(basis, recoveryPeriod decimal.Decimal, yearInService int) decimal.Decimal {
	rates := MACRSRates(recoveryPeriod)
	if yearInService < 1 || yearInService > len(rates) {
		return decimal.Zero
	}
	return roundCents(basis.Mul(rates[yearInService-1]))
}

// StraightLineDepreciation computes (basis - salvage) / usefulLife with the
// half-year convention: the first and final service years take half the
// annual amount.
func StraightLineDepreciation(basis, salvage, usefulLife decimal.Decimal, yearInService int) decimal.Decimal {
	if usefulLife.LessThanOrEqual(decimal.Zero) || yearInService < 1 {
		return decimal.Zero
	}
	lifeYears := int(math.Ceil(usefulLife.InexactFloat64()))
	if yearInService > lifeYears {
		return decimal.Zero
	}

	depreciable := basis.Sub(salvage)
	if depreciable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	annual := depreciable.Div(usefulLife)
	if yearInService == 1 || yearInService == lifeYears {
		annual = annual.Div(decimal.NewFromInt(2))
	}
	return roundCents(annual)
}

// UnitsOfProductionDepreciation computes (basis - salvage) / totalUnits *
// unitsThisYear. Zero total units yields zero rather than a division fault.
func UnitsOfProductionDepreciation(basis, salvage, totalUnits, unitsThisYear decimal.Decimal) decimal.Decimal {
	if totalUnits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	depreciable := basis.Sub(salvage)
	if depreciable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	perUnit := depreciable.Div(totalUnits)
	return roundCents(perUnit.Mul(unitsThisYear))
}
