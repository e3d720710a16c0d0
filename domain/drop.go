package domain

// Drop is a single time-limited promotional offer. BaseRate is the intrinsic
// conversion probability, unknown to the allocation policy. Stock is the
// number of tokens available (scarcity) and DurationS the total drop lifetime
// in seconds (urgency).
type Drop struct {
	Name     string  `json:"name" yaml:"name"`
	BaseRate float64 `json:"base_rate" yaml:"base_rate"`
	Stock    int     `json:"stock" yaml:"stock"`

	DurationS int `json:"duration_s" yaml:"duration_s"`

	// updated during a feed simulation
	Sold        int `json:"sold" yaml:"-"`
	Redemptions int `json:"redemptions" yaml:"-"`
}
