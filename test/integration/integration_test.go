package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/calculation"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/config"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/output"
)

const exampleFiling = "../testdata/example_filing.yaml"

func loadExample(t *testing.T) *config.TaxFiling {
	t.Helper()
	parser := config.NewInputParser()
	filing, err := parser.LoadFromFile(exampleFiling)
	require.NoError(t, err, "Should load example filing")
	return filing
}

// TestEndToEnd runs the example filing through the whole pipeline: parse,
// state return, portfolio depreciation, election validation, and output.
func TestEndToEnd(t *testing.T) {
	t.Run("filing_loading", func(t *testing.T) {
		filing := loadExample(t)
		assert.Equal(t, "CA", filing.StateCode)
		assert.Equal(t, 2024, filing.Federal.TaxYear)
		assert.Len(t, filing.Assets, 3)
		assert.True(t, filing.BusinessIncome.Equal(decimal.NewFromInt(120000)))
	})

	t.Run("state_return", func(t *testing.T) {
		filing := loadExample(t)
		engine := calculation.NewEngine()

		result, err := engine.GenerateStateReturn(filing.StateCode, &filing.Federal, &filing.StateData)
		require.NoError(t, err)

		// 85,000 AGI plus 250 out-of-state muni interest, minus 400
		// in-state muni and 600 US government interest.
		assert.True(t, result.StateAGI.Equal(decimal.NewFromInt(84250)),
			"state AGI: got %s", result.StateAGI)

		// Itemized net of state and local taxes beats the standard
		// deduction: 15,500 total minus 8,000 SALT leaves 7,500.
		assert.Equal(t, domain.DeductionItemized, result.DeductionType)
		assert.True(t, result.DeductionAmount.Equal(decimal.NewFromInt(7500)))
		assert.True(t, result.StateTaxableIncome.Equal(decimal.NewFromInt(76750)))

		assert.True(t, result.StateTax.Equal(decimal.NewFromFloat(3790.60)),
			"state tax: got %s", result.StateTax)
		assert.True(t, result.StateOwed.Equal(decimal.NewFromFloat(190.60)),
			"owed: got %s", result.StateOwed)
		assert.True(t, result.StateRefund.IsZero())
		assert.True(t, result.RequiresFiling)
		assert.NotEmpty(t, result.FormData.Lines)
	})

	t.Run("portfolio_depreciation", func(t *testing.T) {
		filing := loadExample(t)
		engine := calculation.NewEngine()

		portfolio, err := engine.CalculateTotalDepreciation(filing.Assets, filing.Federal.TaxYear)
		require.NoError(t, err)
		require.Len(t, portfolio.Assets, 3)

		// Workstation: 5-year class, first year at 20% of 4,200.
		assert.True(t, portfolio.Assets[0].Total.Equal(decimal.NewFromInt(840)))

		// Van: 80% business use leaves a 38,400 basis; 20,000 Section
		// 179, 60% bonus on the rest, then 5-year MACRS on 7,360.
		van := portfolio.Assets[1]
		assert.True(t, van.Section179.Equal(decimal.NewFromInt(20000)))
		assert.True(t, van.BonusDepreciation.Equal(decimal.NewFromInt(11040)))
		assert.True(t, van.RegularDepreciation.Equal(decimal.NewFromInt(1472)))

		// Racking: 7-year class at 14.29% of 15,500.
		assert.True(t, portfolio.Assets[2].Total.Equal(decimal.NewFromFloat(2214.95)))

		assert.True(t, portfolio.TotalDepreciation.Equal(decimal.NewFromFloat(35566.95)),
			"total: got %s", portfolio.TotalDepreciation)
	})

	t.Run("election_checks", func(t *testing.T) {
		filing := loadExample(t)
		engine := calculation.NewEngine()

		validation := engine.ValidateSection179(filing.Assets, filing.BusinessIncome)
		assert.True(t, validation.AllowedSection179.Equal(decimal.NewFromInt(20000)))
		assert.Empty(t, validation.Issues)

		check := engine.CheckMidQuarterConvention(filing.Assets)
		assert.False(t, check.RequiresMidQuarter)
		assert.True(t, check.Q4Percentage.Equal(decimal.NewFromFloat(22.90)),
			"Q4 share: got %s", check.Q4Percentage)
	})

	t.Run("output_generation", func(t *testing.T) {
		filing := loadExample(t)
		engine := calculation.NewEngine()

		result, err := engine.GenerateStateReturn(filing.StateCode, &filing.Federal, &filing.StateData)
		require.NoError(t, err)

		for _, name := range []string{"console", "json", "csv"} {
			formatter := output.GetFormatterByName(name)
			require.NotNil(t, formatter)
			rendered, err := formatter.FormatStateReturn(result)
			require.NoError(t, err, "formatter %q", name)
			assert.NotEmpty(t, rendered)
		}
	})
}

// TestLaterServiceYears replays the portfolio in a following tax year:
// elections vanish and the table rates advance.
func TestLaterServiceYears(t *testing.T) {
	filing := loadExample(t)
	engine := calculation.NewEngine()

	portfolio, err := engine.CalculateTotalDepreciation(filing.Assets, filing.Federal.TaxYear+1)
	require.NoError(t, err)

	assert.True(t, portfolio.TotalSection179.IsZero())
	assert.True(t, portfolio.TotalBonus.IsZero())
	for _, row := range portfolio.Assets {
		assert.Equal(t, 2, row.YearInService)
	}

	// Workstation year 2 at 32% of 4,200.
	assert.True(t, portfolio.Assets[0].Total.Equal(decimal.NewFromInt(1344)),
		"got %s", portfolio.Assets[0].Total)
}
