package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/eakarsu/AiTaxPrep-sub001/internal/domain"
)

// GenerateSchedule projects the year-by-year depreciation of the
// post-election basis. Schedule length equals the MACRS table length for
// the recovery class; methods without a rate table produce an empty
// schedule. Year 1 additionally records the elections and the combined
// first-year figure.
func GenerateSchedule(method domain.DepreciationMethod, recoveryPeriod decimal.Decimal, alloc ElectionAllocation) []domain.ScheduleYear {
	if method != domain.MethodMACRS {
		return nil
	}
	rates := MACRSRates(recoveryPeriod)
	if len(rates) == 0 {
		return nil
	}

	schedule := make([]domain.ScheduleYear, 0, len(rates))
	bookValue := alloc.RemainingBasis
	accumulated := decimal.Zero

	for year, rate := range rates {
		depreciation := roundCents(alloc.RemainingBasis.Mul(rate))
		if year == len(rates)-1 {
			// The final year absorbs rounding drift so the basis
			// depreciates exactly to zero.
			depreciation = bookValue
		}
		accumulated = roundCents(accumulated.Add(depreciation))
		entry := domain.ScheduleYear{
			Year:                    year + 1,
			BeginningBookValue:      bookValue,
			Depreciation:            depreciation,
			AccumulatedDepreciation: accumulated,
			EndingBookValue:         roundCents(bookValue.Sub(depreciation)),
		}
		if year == 0 {
			entry.Section179 = alloc.Section179
			entry.BonusDepreciation = alloc.Bonus
			entry.TotalFirstYear = roundCents(depreciation.Add(alloc.Section179).Add(alloc.Bonus))
		}
		bookValue = entry.EndingBookValue
		schedule = append(schedule, entry)
	}

	return schedule
}
