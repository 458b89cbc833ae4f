package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// assetClass groups the asset-type labels belonging to one MACRS recovery
// class.
type assetClass struct {
	period decimal.Decimal
	labels []string
}

// assetClasses follows the MACRS property class listings. Membership is
// case-insensitive on the trimmed label.
var assetClasses = []assetClass{
	{decimal.NewFromInt(3), []string{
		"tractor unit", "racehorse", "software", "special tools",
	}},
	{decimal.NewFromInt(5), []string{
		"computer", "computers", "server", "servers", "office equipment",
		"car", "cars", "truck", "trucks", "vehicle", "vehicles", "copier",
		"research equipment", "breeding cattle",
	}},
	{decimal.NewFromInt(7), []string{
		"office furniture", "furniture", "fixtures", "machinery",
		"equipment", "appliances", "agricultural machinery",
	}},
	{decimal.NewFromInt(10), []string{
		"boat", "boats", "water transportation equipment",
		"single purpose agricultural structure", "fruit trees",
	}},
	{decimal.NewFromInt(15), []string{
		"land improvements", "fences", "roads", "bridges",
		"qualified improvement property",
	}},
	{decimal.NewFromInt(20), []string{
		"farm buildings", "municipal sewers",
	}},
	{decimal.NewFromFloat(27.5), []string{
		"residential rental", "residential rental property", "apartment building",
	}},
	{decimal.NewFromInt(39), []string{
		"commercial building", "office building", "warehouse",
		"nonresidential real property",
	}},
}

// defaultRecoveryPeriod is used for labels matching no class list.
var defaultRecoveryPeriod = decimal.NewFromInt(7)

// ClassifyAsset maps an asset-type label to its MACRS recovery period.
// Unmatched labels default to the 7-year class.
func ClassifyAsset(assetType string) decimal.Decimal {
	normalized := strings.ToLower(strings.TrimSpace(assetType))
	for _, class := range assetClasses {
		for _, label := range class.labels {
			if label == normalized {
				return class.period
			}
		}
	}
	return defaultRecoveryPeriod
}
