package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus is the federal filing status carried onto the state return.
type FilingStatus string

const (
	FilingSingle             FilingStatus = "single"
	FilingMarriedJointly     FilingStatus = "married_filing_jointly"
	FilingMarriedSeparately  FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold    FilingStatus = "head_of_household"
	FilingQualifyingSurvivor FilingStatus = "qualifying_surviving_spouse"
)

// Valid reports whether the filing status is one of the recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly, FilingMarriedSeparately,
		FilingHeadOfHousehold, FilingQualifyingSurvivor:
		return true
	}
	return false
}

// ItemizedDeductions holds the federal Schedule A components the state
// deduction recomputation starts from.
type ItemizedDeductions struct {
	StateLocalTaxes  decimal.Decimal `yaml:"state_local_taxes" json:"stateLocalTaxes"`
	MortgageInterest decimal.Decimal `yaml:"mortgage_interest" json:"mortgageInterest"`
	CharitableGifts  decimal.Decimal `yaml:"charitable_gifts" json:"charitableGifts"`
	MedicalExpenses  decimal.Decimal `yaml:"medical_expenses" json:"medicalExpenses"`
	OtherDeductions  decimal.Decimal `yaml:"other_deductions" json:"otherDeductions"`
}

// Total returns the sum of all itemized components.
func (id ItemizedDeductions) Total() decimal.Decimal {
	return id.StateLocalTaxes.
		Add(id.MortgageInterest).
		Add(id.CharitableGifts).
		Add(id.MedicalExpenses).
		Add(id.OtherDeductions)
}

// FederalReturnSummary is the federal 1040 summary supplied by the
// aggregation service. It is read-only input for a state computation.
type FederalReturnSummary struct {
	TaxYear               int                `yaml:"tax_year" json:"taxYear"`
	FilingStatus          FilingStatus       `yaml:"filing_status" json:"filingStatus"`
	AGI                   decimal.Decimal    `yaml:"agi" json:"agi"`
	EarnedIncome          decimal.Decimal    `yaml:"earned_income" json:"earnedIncome"`
	ItemizedDeductions    ItemizedDeductions `yaml:"itemized_deductions" json:"itemizedDeductions"`
	EITC                  decimal.Decimal    `yaml:"eitc" json:"eitc"`
	QualifyingChildren    int                `yaml:"qualifying_children" json:"qualifyingChildren"`
	StateWithheld         decimal.Decimal    `yaml:"state_withheld" json:"stateWithheld"`
	TaxableSocialSecurity decimal.Decimal    `yaml:"taxable_social_security" json:"taxableSocialSecurity"`
	RetirementIncome      decimal.Decimal    `yaml:"retirement_income" json:"retirementIncome"`
	PensionIncome         decimal.Decimal    `yaml:"pension_income" json:"pensionIncome"`
}

// StateData carries per-return state-specific figures that do not appear on
// the federal summary, such as municipal bond interest split by source.
type StateData struct {
	InStateMuniInterest    decimal.Decimal `yaml:"in_state_muni_interest" json:"inStateMuniInterest"`
	OutOfStateMuniInterest decimal.Decimal `yaml:"out_of_state_muni_interest" json:"outOfStateMuniInterest"`
	USGovInterest          decimal.Decimal `yaml:"us_gov_interest" json:"usGovInterest"`
}
