package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/calculation"
	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// RatesFile is an optional YAML overlay of per-state tax tables, merged
// over the built-in registry. Used when a new tax year's figures ship
// before the built-ins are updated.
type RatesFile struct {
	DataYear int                   `yaml:"data_year"`
	States   map[string]StateRates `yaml:"states"`
}

// StateRates is one state's override entry.
type StateRates struct {
	FormNumber         string                     `yaml:"form_number"`
	FormTitle          string                     `yaml:"form_title"`
	HasIncomeTax       bool                       `yaml:"has_income_tax"`
	Brackets           []BracketRates             `yaml:"brackets"`
	StandardDeductions map[string]decimal.Decimal `yaml:"standard_deductions"`
	FilingThreshold    decimal.Decimal            `yaml:"filing_threshold"`
}

// BracketRates is one bracket row in an override file. A zero max marks
// the open-ended top bracket.
type BracketRates struct {
	Min  decimal.Decimal `yaml:"min"`
	Max  decimal.Decimal `yaml:"max"`
	Rate decimal.Decimal `yaml:"rate"`
}

// LoadRegistryWithOverrides builds the state profile registry, layering an
// override file over the built-ins when filename is non-empty.
func LoadRegistryWithOverrides(filename string) (*calculation.StateProfileRegistry, error) {
	registry := calculation.NewStateProfileRegistry()
	if filename == "" {
		return registry, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file %s: %w", filename, err)
	}
	var rates RatesFile
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to parse rates file: %w", err)
	}

	for code, sr := range rates.States {
		profile, err := buildProfile(code, sr)
		if err != nil {
			return nil, fmt.Errorf("rates for %s: %w", code, err)
		}
		registry.Override(profile)
	}
	return registry, nil
}

func buildProfile(code string, sr StateRates) (calculation.StateProfile, error) {
	profile := calculation.StateProfile{
		Code:            code,
		FormNumber:      sr.FormNumber,
		FormTitle:       sr.FormTitle,
		HasIncomeTax:    sr.HasIncomeTax,
		FilingThreshold: sr.FilingThreshold,
	}
	if !sr.HasIncomeTax {
		return profile, nil
	}

	if len(sr.Brackets) == 0 {
		return profile, fmt.Errorf("at least one bracket is required")
	}
	prevMax := decimal.Zero
	for i, b := range sr.Brackets {
		if !b.Min.Equal(prevMax) {
			return profile, fmt.Errorf("bracket %d: min %s does not continue from %s", i, b.Min, prevMax)
		}
		max := b.Max
		if i == len(sr.Brackets)-1 {
			max = calculation.NoMax()
		} else if max.LessThanOrEqual(b.Min) {
			return profile, fmt.Errorf("bracket %d: max %s must exceed min %s", i, b.Max, b.Min)
		}
		profile.Brackets = append(profile.Brackets, calculation.TaxBracket{Min: b.Min, Max: max, Rate: b.Rate})
		prevMax = b.Max
	}

	profile.StandardDeductions = make(map[domain.FilingStatus]decimal.Decimal, len(sr.StandardDeductions))
	for status, amount := range sr.StandardDeductions {
		fs := domain.FilingStatus(status)
		if !fs.Valid() {
			return profile, fmt.Errorf("unknown filing status %q in standard deductions", status)
		}
		profile.StandardDeductions[fs] = amount
	}
	return profile, nil
}
