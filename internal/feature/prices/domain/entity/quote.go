package entity

// QuoteSummary holds the descriptive quote fields for a symbol.
// The upstream provider may omit any of them, so every field is a pointer:
// nil means "not reported", which is distinct from a zero value and must be
// carried through to the API response as null.
type QuoteSummary struct {
	LongName             *string
	ShortName            *string
	Currency             *string
	Exchange             *string
	MarketCap            *int64
	Volume               *int64
	AverageVolume        *int64
	TrailingPE           *float64
	ForwardPE            *float64
	DividendYield        *float64
	FiftyTwoWeekHigh     *float64
	FiftyTwoWeekLow      *float64
	FiftyDayAverage      *float64
	TwoHundredDayAverage *float64
}

// DisplayName returns the name to present for the symbol: the long name when
// reported, otherwise the short name, otherwise nil.
func (q *QuoteSummary) DisplayName() *string {
	if q.LongName != nil {
		return q.LongName
	}
	return q.ShortName
}
