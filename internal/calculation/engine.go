package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// Logger is a minimal leveled logger the engine uses for debug tracing.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// noopLogger discards everything; the default until SetLogger is called.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Engine bundles the state return and depreciation calculators behind one
// entry point. Stateless after construction; safe for concurrent use.
type Engine struct {
	StateCalc    *StateReturnCalculator
	Depreciation *DepreciationCalculator
	Debug        bool

	logger Logger
}

// NewEngine creates an engine over the built-in state profile registry.
func NewEngine() *Engine {
	return &Engine{
		StateCalc:    NewStateReturnCalculator(),
		Depreciation: NewDepreciationCalculator(),
		logger:       noopLogger{},
	}
}

// NewEngineWithRegistry creates an engine over a caller-supplied registry,
// used when a rates-override file is loaded.
func NewEngineWithRegistry(registry *StateProfileRegistry) *Engine {
	return &Engine{
		StateCalc:    NewStateReturnCalculatorWithRegistry(registry),
		Depreciation: NewDepreciationCalculator(),
		logger:       noopLogger{},
	}
}

// SetLogger installs a logger for debug tracing.
func (e *Engine) SetLogger(l Logger) {
	if l != nil {
		e.logger = l
	}
}

// GenerateStateReturn runs the state return pipeline.
func (e *Engine) GenerateStateReturn(stateCode string, fed *domain.FederalReturnSummary, stateData *domain.StateData) (*domain.StateReturnResult, error) {
	result, err := e.StateCalc.GenerateStateReturn(stateCode, fed, stateData)
	if err != nil {
		return nil, err
	}
	if e.Debug {
		e.logger.Debugf("state return %s: AGI %s -> taxable %s -> tax %s",
			result.StateCode, result.StateAGI, result.StateTaxableIncome, result.StateTaxAfterCredits)
	}
	return result, nil
}

// CalculateDepreciation runs the per-asset depreciation pipeline.
func (e *Engine) CalculateDepreciation(asset *domain.DepreciableAsset) (*domain.DepreciationResult, error) {
	result, err := e.Depreciation.CalculateDepreciation(asset)
	if err != nil {
		return nil, err
	}
	if e.Debug {
		e.logger.Debugf("depreciation %q: basis %s, 179 %s, bonus %s, regular %s",
			result.Description, result.AdjustedBasis, result.Section179,
			result.BonusDepreciation, result.RegularDepreciation)
	}
	return result, nil
}

// CalculateTotalDepreciation aggregates a portfolio for a tax year.
func (e *Engine) CalculateTotalDepreciation(assets []domain.DepreciableAsset, taxYear int) (*domain.PortfolioDepreciationResult, error) {
	return e.Depreciation.CalculateTotalDepreciation(assets, taxYear)
}

// ValidateSection179 checks the portfolio-wide election.
func (e *Engine) ValidateSection179(assets []domain.DepreciableAsset, businessIncome decimal.Decimal) *domain.Section179Validation {
	return e.Depreciation.ValidateSection179(assets, businessIncome)
}

// CheckMidQuarterConvention flags mid-quarter applicability.
func (e *Engine) CheckMidQuarterConvention(assets []domain.DepreciableAsset) *domain.MidQuarterCheck {
	return e.Depreciation.CheckMidQuarterConvention(assets)
}
