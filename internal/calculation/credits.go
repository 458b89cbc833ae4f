package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// stateCreditFunc computes a state's credits from federal return fields.
type stateCreditFunc func(fed *domain.FederalReturnSummary) decimal.Decimal

// nyPerChildCredit is New York's flat per-qualifying-child credit.
var nyPerChildCredit = decimal.NewFromInt(330)

// stateCreditRules maps a state code to its credit formula. Unlisted states
// contribute zero state credits.
var stateCreditRules = map[string]stateCreditFunc{
	"CA": func(fed *domain.FederalReturnSummary) decimal.Decimal {
		// CalEITC: 45% of the federal EITC.
		return fed.EITC.Mul(decimal.NewFromFloat(0.45))
	},
	"NY": func(fed *domain.FederalReturnSummary) decimal.Decimal {
		// NY EITC is 30% of federal, plus a flat per-child credit.
		eitc := fed.EITC.Mul(decimal.NewFromFloat(0.30))
		children := nyPerChildCredit.Mul(decimal.NewFromInt(int64(fed.QualifyingChildren)))
		return eitc.Add(children)
	},
	"IL": func(fed *domain.FederalReturnSummary) decimal.Decimal {
		// Illinois EIC: 20% of federal EITC.
		return fed.EITC.Mul(decimal.NewFromFloat(0.20))
	},
}

// ResolveCredits computes a state's credits against tax, rounded to the
// cent. States without a rule return zero.
func ResolveCredits(stateCode string, fed *domain.FederalReturnSummary) decimal.Decimal {
	rule, ok := stateCreditRules[strings.ToUpper(strings.TrimSpace(stateCode))]
	if !ok {
		return decimal.Zero
	}
	return roundCents(rule(fed))
}
