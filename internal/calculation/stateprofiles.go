package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// STATE PROFILE ASSUMPTIONS:
//
// 1. Bracket tables use 2023/2024 published values for the states listed and
//    are not inflation-indexed for later years.
// 2. One bracket table per state regardless of filing status; filing status
//    only selects the standard deduction.
// 3. States without an explicit profile fall back to a flat 5% bracket and
//    the default standard deduction table rather than erroring.

// StateProfile holds the static per-state tax tables and form metadata.
// Read-only after registry construction; safe for concurrent reads.
type StateProfile struct {
	Code               string
	FormNumber         string
	FormTitle          string
	HasIncomeTax       bool
	Brackets           []TaxBracket
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
	FilingThreshold    decimal.Decimal
}

// StateProfileRegistry is the lookup table of per-state profiles plus the
// default fallback tables for unlisted states.
type StateProfileRegistry struct {
	profiles          map[string]StateProfile
	defaultBrackets   []TaxBracket
	defaultDeductions map[domain.FilingStatus]decimal.Decimal
	defaultThreshold  decimal.Decimal
}

func deductions(single, mfj, mfs, hoh, qss int64) map[domain.FilingStatus]decimal.Decimal {
	return map[domain.FilingStatus]decimal.Decimal{
		domain.FilingSingle:             decimal.NewFromInt(single),
		domain.FilingMarriedJointly:     decimal.NewFromInt(mfj),
		domain.FilingMarriedSeparately:  decimal.NewFromInt(mfs),
		domain.FilingHeadOfHousehold:    decimal.NewFromInt(hoh),
		domain.FilingQualifyingSurvivor: decimal.NewFromInt(qss),
	}
}

func progressiveBrackets(bands ...[3]float64) []TaxBracket {
	brackets := make([]TaxBracket, 0, len(bands))
	for i, b := range bands {
		max := decimal.NewFromFloat(b[1])
		if i == len(bands)-1 {
			max = bracketNoMax
		}
		brackets = append(brackets, TaxBracket{
			Min:  decimal.NewFromFloat(b[0]),
			Max:  max,
			Rate: decimal.NewFromFloat(b[2]),
		})
	}
	return brackets
}

// NewStateProfileRegistry builds the built-in state profile tables.
func NewStateProfileRegistry() *StateProfileRegistry {
	r := &StateProfileRegistry{
		profiles:          make(map[string]StateProfile),
		defaultBrackets:   flatBracket(0.05),
		defaultDeductions: deductions(6000, 12000, 6000, 9000, 12000),
		defaultThreshold:  decimal.NewFromInt(6000),
	}

	// No-income-tax states.
	for _, code := range []string{"AK", "FL", "NV", "SD", "TN", "TX", "WA", "WY"} {
		r.profiles[code] = StateProfile{
			Code:         code,
			FormNumber:   "N/A",
			FormTitle:    "No State Income Tax Return Required",
			HasIncomeTax: false,
		}
	}

	r.profiles["CA"] = StateProfile{
		Code:         "CA",
		FormNumber:   "540",
		FormTitle:    "California Resident Income Tax Return",
		HasIncomeTax: true,
		Brackets: progressiveBrackets(
			[3]float64{0, 10412, 0.01},
			[3]float64{10412, 24684, 0.02},
			[3]float64{24684, 38959, 0.04},
			[3]float64{38959, 54081, 0.06},
			[3]float64{54081, 68350, 0.08},
			[3]float64{68350, 349137, 0.093},
			[3]float64{349137, 418961, 0.103},
			[3]float64{418961, 698271, 0.113},
			[3]float64{698271, 0, 0.123},
		),
		StandardDeductions: deductions(5363, 10726, 5363, 10726, 10726),
		FilingThreshold:    decimal.NewFromInt(21561),
	}

	r.profiles["NY"] = StateProfile{
		Code:         "NY",
		FormNumber:   "IT-201",
		FormTitle:    "New York Resident Income Tax Return",
		HasIncomeTax: true,
		Brackets: progressiveBrackets(
			[3]float64{0, 8500, 0.04},
			[3]float64{8500, 11700, 0.045},
			[3]float64{11700, 13900, 0.0525},
			[3]float64{13900, 80650, 0.055},
			[3]float64{80650, 215400, 0.06},
			[3]float64{215400, 1077550, 0.0685},
			[3]float64{1077550, 5000000, 0.0965},
			[3]float64{5000000, 25000000, 0.103},
			[3]float64{25000000, 0, 0.109},
		),
		StandardDeductions: deductions(8000, 16050, 8000, 11200, 16050),
		FilingThreshold:    decimal.NewFromInt(4000),
	}

	r.profiles["GA"] = StateProfile{
		Code:         "GA",
		FormNumber:   "500",
		FormTitle:    "Georgia Individual Income Tax Return",
		HasIncomeTax: true,
		Brackets: progressiveBrackets(
			[3]float64{0, 750, 0.01},
			[3]float64{750, 2250, 0.02},
			[3]float64{2250, 3750, 0.03},
			[3]float64{3750, 5250, 0.04},
			[3]float64{5250, 7000, 0.05},
			[3]float64{7000, 0, 0.0575},
		),
		StandardDeductions: deductions(5400, 7100, 3550, 5400, 7100),
		FilingThreshold:    decimal.NewFromInt(5400),
	}

	r.profiles["VA"] = StateProfile{
		Code:         "VA",
		FormNumber:   "760",
		FormTitle:    "Virginia Resident Income Tax Return",
		HasIncomeTax: true,
		Brackets: progressiveBrackets(
			[3]float64{0, 3000, 0.02},
			[3]float64{3000, 5000, 0.03},
			[3]float64{5000, 17000, 0.05},
			[3]float64{17000, 0, 0.0575},
		),
		StandardDeductions: deductions(8000, 16000, 8000, 8000, 16000),
		FilingThreshold:    decimal.NewFromInt(11950),
	}

	flatStates := []struct {
		code, form, title string
		rate              float64
		single, mfj       int64
		threshold         int64
	}{
		{"IL", "IL-1040", "Illinois Individual Income Tax Return", 0.0495, 2425, 4850, 2425},
		{"PA", "PA-40", "Pennsylvania Income Tax Return", 0.0307, 0, 0, 33},
		{"MA", "Form 1", "Massachusetts Resident Income Tax Return", 0.05, 4400, 8800, 8000},
		{"NC", "D-400", "North Carolina Individual Income Tax Return", 0.045, 12750, 25500, 12750},
		{"CO", "DR 0104", "Colorado Individual Income Tax Return", 0.044, 14600, 29200, 14600},
		{"AZ", "Form 140", "Arizona Resident Personal Income Tax Return", 0.025, 14600, 29200, 14600},
		{"MI", "MI-1040", "Michigan Individual Income Tax Return", 0.0425, 0, 0, 5600},
	}
	for _, fs := range flatStates {
		r.profiles[fs.code] = StateProfile{
			Code:               fs.code,
			FormNumber:         fs.form,
			FormTitle:          fs.title,
			HasIncomeTax:       true,
			Brackets:           flatBracket(fs.rate),
			StandardDeductions: deductions(fs.single, fs.mfj, fs.single, fs.single, fs.mfj),
			FilingThreshold:    decimal.NewFromInt(fs.threshold),
		}
	}

	return r
}

// Lookup returns the profile for a state code. The second return reports
// whether the state has an explicit profile; callers fall back to
// DefaultProfile when it is false.
func (r *StateProfileRegistry) Lookup(stateCode string) (StateProfile, bool) {
	profile, ok := r.profiles[strings.ToUpper(strings.TrimSpace(stateCode))]
	return profile, ok
}

// DefaultProfile returns the graceful-degradation profile used for states
// without an explicit entry: flat 5% tax and the default deduction table.
func (r *StateProfileRegistry) DefaultProfile(stateCode string) StateProfile {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	return StateProfile{
		Code:               code,
		FormNumber:         code + "-1040",
		FormTitle:          "State Individual Income Tax Return",
		HasIncomeTax:       true,
		Brackets:           r.defaultBrackets,
		StandardDeductions: r.defaultDeductions,
		FilingThreshold:    r.defaultThreshold,
	}
}

// StandardDeduction returns a profile's standard deduction for the filing
// status, falling back to the single amount for unknown statuses.
func (p StateProfile) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if amount, ok := p.StandardDeductions[status]; ok {
		return amount
	}
	return p.StandardDeductions[domain.FilingSingle]
}

// Override replaces a state's profile. Used by the rates-override config to
// layer updated tables over the built-in registry.
func (r *StateProfileRegistry) Override(profile StateProfile) {
	r.profiles[strings.ToUpper(profile.Code)] = profile
}
