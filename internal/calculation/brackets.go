package calculation

import (
	"github.com/shopspring/decimal"
)

// TaxBracket represents one marginal rate band. Bands must be ascending and
// non-overlapping; the top band's Max is the bracketNoMax sentinel so the
// list tiles [0, +inf).
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// bracketNoMax stands in for +infinity on the top bracket.
var bracketNoMax = decimal.NewFromInt(999999999999)

// NoMax returns the sentinel upper bound used by top brackets.
func NoMax() decimal.Decimal { return bracketNoMax }

// roundCents rounds a monetary amount to the cent, half away from zero.
// Applied after every arithmetic step so penny-level results are stable.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateBracketTax walks an ascending bracket list and sums the marginal
// tax on each band's portion of income. Each band's tax is rounded to the
// cent before accumulating. Income at or below zero owes nothing; income
// beyond the top band is taxed entirely at the top marginal rate.
func CalculateBracketTax(taxableIncome decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	totalTax := decimal.Zero
	for _, bracket := range brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(roundCents(incomeInBracket.Mul(bracket.Rate)))
		}
	}

	return roundCents(totalTax)
}

// flatBracket builds a single-band table covering all income at one rate.
func flatBracket(rate float64) []TaxBracket {
	return []TaxBracket{
		{Min: decimal.Zero, Max: bracketNoMax, Rate: decimal.NewFromFloat(rate)},
	}
}
