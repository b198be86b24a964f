package dist

var (
	// DefaultQuantiles is the probability grid used by QuantileSummary
	// when the caller does not supply one.
	DefaultQuantiles = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99}
)

const (
	// QuantileValueRound is the decimal precision quantile values are
	// rounded to in summaries.
	QuantileValueRound = 3
)
