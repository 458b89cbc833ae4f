package domain

import (
	"github.com/shopspring/decimal"
)

// DeductionType identifies which deduction the state return used.
type DeductionType string

const (
	DeductionStandard DeductionType = "standard"
	DeductionItemized DeductionType = "itemized"
)

// StateReturnResult is the complete outcome of a state return computation.
// Every monetary field is rounded to the cent.
type StateReturnResult struct {
	StateCode    string `json:"stateCode"`
	FormNumber   string `json:"formNumber"`
	FormTitle    string `json:"formTitle"`
	HasIncomeTax bool   `json:"hasIncomeTax"`
	Note         string `json:"note,omitempty"`

	FederalAGI        decimal.Decimal `json:"federalAGI"`
	StateAdditions    decimal.Decimal `json:"stateAdditions"`
	StateSubtractions decimal.Decimal `json:"stateSubtractions"`
	StateAGI          decimal.Decimal `json:"stateAGI"`

	DeductionType      DeductionType   `json:"deductionType"`
	DeductionAmount    decimal.Decimal `json:"deductionAmount"`
	StateTaxableIncome decimal.Decimal `json:"stateTaxableIncome"`

	StateTax             decimal.Decimal `json:"stateTax"`
	StateCredits         decimal.Decimal `json:"stateCredits"`
	StateTaxAfterCredits decimal.Decimal `json:"stateTaxAfterCredits"`

	StateWithheld decimal.Decimal `json:"stateWithheld"`
	StateRefund   decimal.Decimal `json:"stateRefund"`
	StateOwed     decimal.Decimal `json:"stateOwed"`

	RequiresFiling bool `json:"requiresFiling"`

	FormData FormData `json:"formData"`
}

// FormData is the flat projection of a state return onto a form layout:
// form metadata plus named line items in display order.
type FormData struct {
	FormNumber string     `json:"formNumber"`
	FormTitle  string     `json:"formTitle"`
	TaxYear    int        `json:"taxYear"`
	Lines      []FormLine `json:"lines"`
}

// FormLine is a single labeled amount on the projected form.
type FormLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}
