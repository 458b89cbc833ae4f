package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caBrackets(t *testing.T) []TaxBracket {
	t.Helper()
	registry := NewStateProfileRegistry()
	profile, ok := registry.Lookup("CA")
	require.True(t, ok)
	return profile.Brackets
}

func TestCalculateBracketTax(t *testing.T) {
	tests := []struct {
		name        string
		income      decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{
			name:        "Zero income owes nothing",
			income:      decimal.Zero,
			expectedTax: decimal.Zero,
		},
		{
			name:        "Negative income owes nothing",
			income:      decimal.NewFromInt(-500),
			expectedTax: decimal.Zero,
		},
		{
			name:        "Income inside the first bracket",
			income:      decimal.NewFromInt(10000),
			expectedTax: decimal.NewFromInt(100),
		},
		{
			name:   "California single filer at 50,000",
			income: decimal.NewFromInt(50000),
			// 10,412x1% + 14,272x2% + 14,275x4% + 11,041x6%
			expectedTax: decimal.NewFromFloat(1623.02),
		},
		{
			name:   "Bracket boundary equals sum of full lower brackets",
			income: decimal.NewFromInt(24684),
			// 10,412x1% + 14,272x2%
			expectedTax: decimal.NewFromFloat(389.56),
		},
	}

	brackets := caBrackets(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := CalculateBracketTax(tt.income, brackets)
			assert.True(t, tax.Equal(tt.expectedTax),
				"Expected %s, got %s", tt.expectedTax, tax)
		})
	}
}

func TestCalculateBracketTaxNonDecreasing(t *testing.T) {
	brackets := caBrackets(t)

	previous := decimal.Zero
	for income := int64(0); income <= 800000; income += 2500 {
		tax := CalculateBracketTax(decimal.NewFromInt(income), brackets)
		assert.True(t, tax.GreaterThanOrEqual(previous),
			"tax decreased at income %d: %s < %s", income, tax, previous)
		previous = tax
	}
}

func TestCalculateBracketTaxTopRate(t *testing.T) {
	brackets := caBrackets(t)

	// Income deep in the top bracket is taxed at the top marginal rate.
	base := CalculateBracketTax(decimal.NewFromInt(1000000), brackets)
	higher := CalculateBracketTax(decimal.NewFromInt(1001000), brackets)
	marginal := higher.Sub(base)
	assert.True(t, marginal.Equal(decimal.NewFromInt(123)),
		"expected 12.3%% marginal on 1000, got %s", marginal)
}

func TestFlatBracketCoversAllIncome(t *testing.T) {
	brackets := flatBracket(0.05)

	tax := CalculateBracketTax(decimal.NewFromInt(100000), brackets)
	assert.True(t, tax.Equal(decimal.NewFromInt(5000)), "got %s", tax)
}
