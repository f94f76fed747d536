package business

// TaxBracket is one contiguous income range taxed at a single marginal
// rate. Brackets are ordered and non-overlapping: the lower bound of
// bracket n+1 equals the upper bound of bracket n. An UpperBound below
// zero marks the final, unbounded bracket.
type TaxBracket struct {
	LowerBound float64 `json:"lower_bound" mapstructure:"lower_bound" validate:"gte=0"`
	UpperBound float64 `json:"upper_bound" mapstructure:"upper_bound"`
	Rate       float64 `json:"rate" mapstructure:"rate" validate:"gte=0,lte=1"`
}

// Unbounded reports whether this is the open-ended top bracket.
func (b TaxBracket) Unbounded() bool {
	return b.UpperBound < 0
}

// Contains reports whether amount falls in [LowerBound, UpperBound).
func (b TaxBracket) Contains(amount float64) bool {
	if amount < b.LowerBound {
		return false
	}
	return b.Unbounded() || amount < b.UpperBound
}

// BracketTax is the portion of a progressive calculation attributable
// to a single bracket.
type BracketTax struct {
	Bracket       TaxBracket `json:"bracket"`
	TaxableAmount float64    `json:"taxable_amount"`
	Tax           float64    `json:"tax"`
}
