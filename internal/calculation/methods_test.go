package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMACRSDepreciation(t *testing.T) {
	tests := []struct {
		name           string
		basis          decimal.Decimal
		recoveryPeriod decimal.Decimal
		yearInService  int
		expected       decimal.Decimal
	}{
		{
			name:           "5-year asset year 1 at 20%",
			basis:          decimal.NewFromInt(10000),
			recoveryPeriod: decimal.NewFromInt(5),
			yearInService:  1,
			expected:       decimal.NewFromInt(2000),
		},
		{
			name:           "5-year asset year 2 at 32%",
			basis:          decimal.NewFromInt(10000),
			recoveryPeriod: decimal.NewFromInt(5),
			yearInService:  2,
			expected:       decimal.NewFromInt(3200),
		},
		{
			name:           "7-year asset year 1 at 14.29%",
			basis:          decimal.NewFromInt(10000),
			recoveryPeriod: decimal.NewFromInt(7),
			yearInService:  1,
			expected:       decimal.NewFromInt(1429),
		},
		{
			name:           "Year beyond table is fully depreciated",
			basis:          decimal.NewFromInt(10000),
			recoveryPeriod: decimal.NewFromInt(5),
			yearInService:  7,
			expected:       decimal.Zero,
		},
		{
			name:           "Year zero not yet in service",
			basis:          decimal.NewFromInt(10000),
			recoveryPeriod: decimal.NewFromInt(5),
			yearInService:  0,
			expected:       decimal.Zero,
		},
		{
			name:           "Real property has no half-year table",
			basis:          decimal.NewFromInt(500000),
			recoveryPeriod: decimal.NewFromFloat(27.5),
			yearInService:  1,
			expected:       decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MACRSDepreciation(tt.basis, tt.recoveryPeriod, tt.yearInService)
			assert.True(t, result.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, result)
		})
	}
}

func TestMACRSTablesSumToOne(t *testing.T) {
	for period, rates := range macrsTables {
		total := decimal.Zero
		for _, rate := range rates {
			total = total.Add(rate)
		}
		assert.True(t, total.Equal(decimal.NewFromInt(1)),
			"%s-year table sums to %s", period, total)
	}
}

func TestStraightLineDepreciation(t *testing.T) {
	basis := decimal.NewFromInt(10000)
	salvage := decimal.NewFromInt(1000)
	life := decimal.NewFromInt(5)

	tests := []struct {
		name     string
		year     int
		expected decimal.Decimal
	}{
		{"First year halved", 1, decimal.NewFromInt(900)},
		{"Middle year full", 3, decimal.NewFromInt(1800)},
		{"Final year halved", 5, decimal.NewFromInt(900)},
		{"Past useful life", 6, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StraightLineDepreciation(basis, salvage, life, tt.year)
			assert.True(t, result.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, result)
		})
	}
}

func TestStraightLineDepreciationEdgeCases(t *testing.T) {
	t.Run("Zero life", func(t *testing.T) {
		result := StraightLineDepreciation(decimal.NewFromInt(1000), decimal.Zero, decimal.Zero, 1)
		assert.True(t, result.IsZero())
	})

	t.Run("Salvage above basis", func(t *testing.T) {
		result := StraightLineDepreciation(decimal.NewFromInt(1000), decimal.NewFromInt(2000), decimal.NewFromInt(5), 1)
		assert.True(t, result.IsZero())
	})
}

func TestUnitsOfProductionDepreciation(t *testing.T) {
	tests := []struct {
		name          string
		basis         decimal.Decimal
		salvage       decimal.Decimal
		totalUnits    decimal.Decimal
		unitsThisYear decimal.Decimal
		expected      decimal.Decimal
	}{
		{
			name:          "Proportional to units consumed",
			basis:         decimal.NewFromInt(10000),
			salvage:       decimal.Zero,
			totalUnits:    decimal.NewFromInt(100000),
			unitsThisYear: decimal.NewFromInt(15000),
			expected:      decimal.NewFromInt(1500),
		},
		{
			name:          "Zero total units yields zero",
			basis:         decimal.NewFromInt(10000),
			salvage:       decimal.Zero,
			totalUnits:    decimal.Zero,
			unitsThisYear: decimal.NewFromInt(5000),
			expected:      decimal.Zero,
		},
		{
			name:          "Salvage reduces depreciable base",
			basis:         decimal.NewFromInt(10000),
			salvage:       decimal.NewFromInt(2000),
			totalUnits:    decimal.NewFromInt(8000),
			unitsThisYear: decimal.NewFromInt(1000),
			expected:      decimal.NewFromInt(1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UnitsOfProductionDepreciation(tt.basis, tt.salvage, tt.totalUnits, tt.unitsThisYear)
			assert.True(t, result.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, result)
		})
	}
}

func TestClassifyAsset(t *testing.T) {
	tests := []struct {
		label    string
		expected decimal.Decimal
	}{
		{"computer", decimal.NewFromInt(5)},
		{"COMPUTER", decimal.NewFromInt(5)},
		{"server", decimal.NewFromInt(5)},
		{"servers", decimal.NewFromInt(5)},
		{"  Office Furniture  ", decimal.NewFromInt(7)},
		{"fences", decimal.NewFromInt(15)},
		{"warehouse", decimal.NewFromInt(39)},
		{"residential rental", decimal.NewFromFloat(27.5)},
		{"quantum flux capacitor", decimal.NewFromInt(7)},
		{"", decimal.NewFromInt(7)},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			period := ClassifyAsset(tt.label)
			assert.True(t, period.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, period)
		})
	}
}
