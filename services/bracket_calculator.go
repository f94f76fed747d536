package services

import (
	"github.com/kaietech/revenue-engine/types/business"
)

// BracketCalculator applies an ordered progressive bracket schedule to
// a taxable amount. Every income-based regime shares it; zero-rate
// brackets are ordinary brackets, not a special case.
type BracketCalculator struct{}

// NewBracketCalculator creates a new bracket calculator
func NewBracketCalculator() *BracketCalculator {
	return &BracketCalculator{}
}

// Calculate walks the brackets in order and returns the total tax plus
// a per-bracket breakdown. Negative taxable income must be clamped to
// zero by the caller; for any non-negative input no error is possible.
func (c *BracketCalculator) Calculate(taxable float64, brackets []business.TaxBracket) (float64, []business.BracketTax) {
	var total float64
	var breakdown []business.BracketTax

	if taxable <= 0 {
		return 0, breakdown
	}

	for _, bracket := range brackets {
		upper := bracket.UpperBound
		if bracket.Unbounded() || taxable < upper {
			upper = taxable
		}

		span := upper - bracket.LowerBound
		if span <= 0 {
			break
		}

		tax := span * bracket.Rate
		total += tax
		breakdown = append(breakdown, business.BracketTax{
			Bracket:       bracket,
			TaxableAmount: span,
			Tax:           tax,
		})

		if !bracket.Unbounded() && taxable <= bracket.UpperBound {
			break
		}
	}

	return total, breakdown
}

// MarginalRate returns the rate of the bracket containing the amount,
// or the final bracket's rate when the amount exceeds every bound.
func (c *BracketCalculator) MarginalRate(amount float64, brackets []business.TaxBracket) float64 {
	if len(brackets) == 0 {
		return 0
	}
	for _, bracket := range brackets {
		if bracket.Contains(amount) {
			return bracket.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}
