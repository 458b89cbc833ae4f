package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// CSVFormatter implements simple CSV output: one row per form line for a
// state return, one row per asset-year for depreciation schedules.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) FormatStateReturn(result *domain.StateReturnResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Line", "Amount"}); err != nil {
		return nil, err
	}
	for _, line := range result.FormData.Lines {
		if err := w.Write([]string{line.Label, line.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatDepreciation(report *domain.DepreciationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Asset", "Year", "BeginningBookValue", "Section179", "Bonus", "Depreciation", "AccumulatedDepreciation", "EndingBookValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, asset := range report.Assets {
		for _, year := range asset.Schedule {
			row := []string{
				asset.Description,
				strconv.Itoa(year.Year),
				year.BeginningBookValue.StringFixed(2),
				year.Section179.StringFixed(2),
				year.BonusDepreciation.StringFixed(2),
				year.Depreciation.StringFixed(2),
				year.AccumulatedDepreciation.StringFixed(2),
				year.EndingBookValue.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
