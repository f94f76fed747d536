package helpers

import (
	"fmt"

	"github.com/kaietech/revenue-engine/constants"
)

// UnknownFrequencyError is returned when a conversion is asked for a
// cadence the engine does not recognize.
type UnknownFrequencyError struct {
	Frequency constants.Frequency
}

func (e *UnknownFrequencyError) Error() string {
	return fmt.Sprintf("unknown payment frequency %q", string(e.Frequency))
}

// AnnualFactor returns the number of periods of the given frequency in
// a year, using fixed calendar conventions (52 weeks, 26 fortnights,
// 12 months).
func AnnualFactor(frequency constants.Frequency) (float64, error) {
	switch frequency {
	case constants.FrequencyWeekly:
		return constants.WeeksPerYear, nil
	case constants.FrequencyBiWeekly:
		return constants.BiWeeksPerYear, nil
	case constants.FrequencyMonthly:
		return constants.MonthsPerYear, nil
	case constants.FrequencyAnnual:
		return 1, nil
	default:
		return 0, &UnknownFrequencyError{Frequency: frequency}
	}
}

// ConvertAmount converts a monetary amount between payment cadences.
// No rounding is applied here; callers round at the point of producing
// a final result field.
func ConvertAmount(amount float64, from, to constants.Frequency) (float64, error) {
	if from == to {
		if _, err := AnnualFactor(from); err != nil {
			return 0, err
		}
		return amount, nil
	}

	fromFactor, err := AnnualFactor(from)
	if err != nil {
		return 0, err
	}
	toFactor, err := AnnualFactor(to)
	if err != nil {
		return 0, err
	}

	annual := amount * fromFactor
	return annual / toFactor, nil
}
