package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

func serviceDate(year, month int) time.Time {
	return time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
}

func TestAllocateElectionsOrder(t *testing.T) {
	asset := &domain.DepreciableAsset{
		Description:       "packaging machine",
		CostBasis:         decimal.NewFromInt(100000),
		Section179Elected: true,
		Section179Amount:  decimal.NewFromInt(40000),
		BonusElected:      true,
	}

	alloc := AllocateElections(asset, decimal.NewFromInt(100000))

	assert.True(t, alloc.Section179.Equal(decimal.NewFromInt(40000)))
	// Bonus applies to the 60,000 remaining after Section 179.
	assert.True(t, alloc.Bonus.Equal(decimal.NewFromInt(36000)), "got %s", alloc.Bonus)
	assert.True(t, alloc.RemainingBasis.Equal(decimal.NewFromInt(24000)))
}

func TestAllocateElectionsVehicleCap(t *testing.T) {
	asset := &domain.DepreciableAsset{
		Description:       "delivery SUV",
		CostBasis:         decimal.NewFromInt(60000),
		IsVehicle:         true,
		Section179Elected: true,
		Section179Amount:  decimal.NewFromInt(50000),
	}

	alloc := AllocateElections(asset, decimal.NewFromInt(60000))

	assert.True(t, alloc.Section179.Equal(SUVSection179Limit),
		"vehicle cap should hold: got %s", alloc.Section179)
}

func TestAllocateElectionsCappedAtBasis(t *testing.T) {
	asset := &domain.DepreciableAsset{
		Description:       "used press",
		CostBasis:         decimal.NewFromInt(8000),
		Section179Elected: true,
		Section179Amount:  decimal.NewFromInt(20000),
	}

	alloc := AllocateElections(asset, decimal.NewFromInt(8000))

	assert.True(t, alloc.Section179.Equal(decimal.NewFromInt(8000)))
	assert.True(t, alloc.RemainingBasis.IsZero())
}

func TestCalculateDepreciationMACRS(t *testing.T) {
	calc := NewDepreciationCalculator()

	asset := &domain.DepreciableAsset{
		Description:        "workstation",
		CostBasis:          decimal.NewFromInt(10000),
		PlacedInService:    serviceDate(2024, 3),
		AssetType:          "computer",
		Method:             domain.MethodMACRS,
		BusinessUsePercent: decimal.NewFromInt(100),
	}

	result, err := calc.CalculateDepreciation(asset)
	require.NoError(t, err)

	assert.True(t, result.RecoveryPeriod.Equal(decimal.NewFromInt(5)))
	assert.True(t, result.AdjustedBasis.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.RegularDepreciation.Equal(decimal.NewFromInt(2000)))
	assert.True(t, result.CurrentYearTotal.Equal(decimal.NewFromInt(2000)))
	assert.Len(t, result.Schedule, 6)
}

func TestCalculateDepreciationBusinessUse(t *testing.T) {
	calc := NewDepreciationCalculator()

	asset := &domain.DepreciableAsset{
		Description:        "shared laptop",
		CostBasis:          decimal.NewFromInt(2000),
		PlacedInService:    serviceDate(2024, 6),
		AssetType:          "computer",
		BusinessUsePercent: decimal.NewFromInt(75),
	}

	result, err := calc.CalculateDepreciation(asset)
	require.NoError(t, err)

	assert.True(t, result.AdjustedBasis.Equal(decimal.NewFromInt(1500)))
	assert.True(t, result.RegularDepreciation.Equal(decimal.NewFromInt(300)))
}

func TestCalculateDepreciationScheduleInvariant(t *testing.T) {
	calc := NewDepreciationCalculator()

	// A fully depreciated MACRS schedule must return the whole adjusted
	// basis across elections plus yearly depreciation, ending at zero.
	asset := &domain.DepreciableAsset{
		Description:     "conveyor",
		CostBasis:       decimal.NewFromFloat(13333.37),
		PlacedInService: serviceDate(2024, 2),
		RecoveryPeriod:  decimal.NewFromInt(7),
		Method:          domain.MethodMACRS,
	}

	result, err := calc.CalculateDepreciation(asset)
	require.NoError(t, err)
	require.Len(t, result.Schedule, 8)

	total := result.Section179.Add(result.BonusDepreciation)
	for _, year := range result.Schedule {
		total = total.Add(year.Depreciation)
	}
	diff := total.Sub(result.AdjustedBasis).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"schedule total %s differs from basis %s", total, result.AdjustedBasis)

	final := result.Schedule[len(result.Schedule)-1]
	assert.True(t, final.EndingBookValue.IsZero(),
		"final book value should be zero, got %s", final.EndingBookValue)
}

func TestCalculateDepreciationScheduleWithElections(t *testing.T) {
	calc := NewDepreciationCalculator()

	asset := &domain.DepreciableAsset{
		Description:       "lathe",
		CostBasis:         decimal.NewFromInt(50000),
		PlacedInService:   serviceDate(2024, 5),
		RecoveryPeriod:    decimal.NewFromInt(7),
		Method:            domain.MethodMACRS,
		Section179Elected: true,
		Section179Amount:  decimal.NewFromInt(20000),
		BonusElected:      true,
	}

	result, err := calc.CalculateDepreciation(asset)
	require.NoError(t, err)
	require.NotEmpty(t, result.Schedule)

	first := result.Schedule[0]
	assert.True(t, first.Section179.Equal(decimal.NewFromInt(20000)))
	assert.True(t, first.BonusDepreciation.Equal(decimal.NewFromInt(18000)))
	assert.True(t, first.TotalFirstYear.Equal(
		first.Depreciation.Add(first.Section179).Add(first.BonusDepreciation)))
	// Later years carry no election amounts.
	assert.True(t, result.Schedule[1].Section179.IsZero())
	assert.True(t, result.Schedule[1].TotalFirstYear.IsZero())
}

func TestCalculateDepreciationRealPropertyEmptySchedule(t *testing.T) {
	calc := NewDepreciationCalculator()

	asset := &domain.DepreciableAsset{
		Description:     "office park",
		CostBasis:       decimal.NewFromInt(2500000),
		PlacedInService: serviceDate(2024, 1),
		AssetType:       "commercial building",
		Method:          domain.MethodMACRS,
	}

	result, err := calc.CalculateDepreciation(asset)
	require.NoError(t, err)

	assert.True(t, result.RecoveryPeriod.Equal(decimal.NewFromInt(39)))
	assert.True(t, result.RegularDepreciation.IsZero())
	assert.Empty(t, result.Schedule)
}

func TestCalculateDepreciationUnitsOfProduction(t *testing.T) {
	calc := NewDepreciationCalculator()

	asset := &domain.DepreciableAsset{
		Description:     "stamping die",
		CostBasis:       decimal.NewFromInt(10000),
		PlacedInService: serviceDate(2024, 4),
		RecoveryPeriod:  decimal.NewFromInt(5),
		Method:          domain.MethodUnitsOfProduction,
		TotalUnits:      decimal.NewFromInt(100000),
		UnitsThisYear:   decimal.NewFromInt(15000),
	}

	result, err := calc.CalculateDepreciation(asset)
	require.NoError(t, err)

	assert.True(t, result.RegularDepreciation.Equal(decimal.NewFromInt(1500)))
	assert.Empty(t, result.Schedule)
}

func TestCalculateDepreciationInvalidAssets(t *testing.T) {
	calc := NewDepreciationCalculator()

	tests := []struct {
		name  string
		asset *domain.DepreciableAsset
	}{
		{"Nil asset", nil},
		{
			"Negative cost basis",
			&domain.DepreciableAsset{
				CostBasis:       decimal.NewFromInt(-1000),
				PlacedInService: serviceDate(2024, 1),
				AssetType:       "computer",
			},
		},
		{
			"No recovery period or asset type",
			&domain.DepreciableAsset{
				CostBasis:       decimal.NewFromInt(1000),
				PlacedInService: serviceDate(2024, 1),
			},
		},
		{
			"Business use above 100",
			&domain.DepreciableAsset{
				CostBasis:          decimal.NewFromInt(1000),
				PlacedInService:    serviceDate(2024, 1),
				AssetType:          "computer",
				BusinessUsePercent: decimal.NewFromInt(150),
			},
		},
		{
			"Missing placed-in-service date",
			&domain.DepreciableAsset{
				CostBasis: decimal.NewFromInt(1000),
				AssetType: "computer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.CalculateDepreciation(tt.asset)
			assert.Error(t, err)
		})
	}
}
