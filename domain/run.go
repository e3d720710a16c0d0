package domain

import (
	"time"

	"gorm.io/datatypes"
)

// SimulationRun is one persisted policy run, kept so the dashboard can list
// and re-plot past comparisons. This is run-level history only, not a ledger
// of individual token transactions.
type SimulationRun struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Scenario string `gorm:"column:scenario;not null" json:"scenario"`
	Policy   string `gorm:"column:policy;not null" json:"policy"`
	Seed     int64  `gorm:"column:seed" json:"seed"`

	Views       int `gorm:"column:views" json:"views"`
	Tokens      int `gorm:"column:tokens" json:"tokens"`
	Redemptions int `gorm:"column:redemptions" json:"redemptions"`

	CTR                  float64 `gorm:"column:ctr" json:"ctr"`
	ConversionGivenToken float64 `gorm:"column:conversion_given_token" json:"conversion_given_token"`
	UtilizationStock     float64 `gorm:"column:utilization_stock" json:"utilization_stock"`

	Params    datatypes.JSONMap `gorm:"column:params;type:jsonb" json:"params"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SimulationRun) TableName() string {
	return "simulation_runs"
}

// Summary re-derives the KPI view of a stored run.
func (r SimulationRun) Summary() MetricsSummary {
	return MetricsSummary{
		Views:                r.Views,
		Tokens:               r.Tokens,
		Redemptions:          r.Redemptions,
		CTR:                  r.CTR,
		ConversionGivenToken: r.ConversionGivenToken,
		UtilizationStock:     r.UtilizationStock,
	}
}
