package output

import (
	"encoding/json"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) FormatStateReturn(result *domain.StateReturnResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (JSONFormatter) FormatDepreciation(report *domain.DepreciationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
