package domain

// Impression is one simulated view event. Countdown is the time remaining
// until the drop expires, in the same unit as the stream's horizon.
type Impression struct {
	Index     int     `json:"index"`
	Countdown float64 `json:"countdown"`
}

// OutcomeRecord is the per-impression result of a simulation run.
// Issued=false always implies Converted=false.
type OutcomeRecord struct {
	Index          int  `json:"index"`
	Issued         bool `json:"issued"`
	Converted      bool `json:"converted"`
	StockRemaining int  `json:"stock_remaining"`
}

// MetricsSummary is the headline KPI set for one policy run.
type MetricsSummary struct {
	Views       int `json:"views"`
	Tokens      int `json:"tokens"`
	Redemptions int `json:"redemptions"`

	CTR                  float64 `json:"ctr"`
	ConversionGivenToken float64 `json:"conversion_given_token"`
	UtilizationStock     float64 `json:"utilization_stock"`
}

// ComparisonResult holds one summary per policy, plus the raw outcome
// records when the caller asked for them (e.g. for stock depletion plots).
type ComparisonResult struct {
	Summaries map[string]MetricsSummary  `json:"summaries"`
	Records   map[string][]OutcomeRecord `json:"records,omitempty"`
}
