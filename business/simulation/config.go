package simulation

import "errors"

// UrgencyCurve selects the amplification shape applied as the countdown
// runs out.
type UrgencyCurve string

const (
	CurveLinear      UrgencyCurve = "linear"
	CurveExponential UrgencyCurve = "exponential"
)

// Configuration errors. All of them are raised before the first impression
// is processed; a run never fails midway.
var (
	ErrInvalidViews         = errors.New("views must be positive")
	ErrInvalidStock         = errors.New("stock must be positive")
	ErrInvalidBaseRate      = errors.New("base rate must be in [0,1]")
	ErrInvalidAmplification = errors.New("amplification factor must be non-negative")
	ErrInvalidHorizon       = errors.New("horizon must be positive")
	ErrInvalidIssueProb     = errors.New("random issue probability must be in [0,1]")
	ErrInvalidThreshold     = errors.New("thompson threshold must be in [0,1]")
	ErrInvalidCurve         = errors.New("unknown urgency curve")
	ErrNoDrops              = errors.New("at least one drop is required")
	ErrInvalidUsers         = errors.New("users must be positive")
)

const (
	defaultViews         = 1000
	defaultStock         = 120
	defaultBaseRate      = 0.10
	defaultAmplification = 1.25
	defaultHorizonS      = 900
	defaultIssueProb     = 0.5

	// Tuned to the base-rate neighbourhood of the default scenarios; the
	// Beta(1,1) prior mean (0.5) would choke issuance once the posterior
	// concentrates near realistic conversion rates.
	defaultThreshold = 0.10
)

// Config is the drop configuration for one single-drop simulation run.
// It is immutable for the duration of the run.
type Config struct {
	Views         int     `json:"views"`
	Stock         int     `json:"stock"`
	BaseRate      float64 `json:"base_rate"`
	Amplification float64 `json:"amplification"`

	// HorizonS is the drop lifetime; impression countdowns start here.
	HorizonS float64      `json:"horizon_s"`
	Schedule Schedule     `json:"schedule"`
	Curve    UrgencyCurve `json:"curve"`
	Seed     int64        `json:"seed"`

	// IssueProb is the Random policy's coin bias.
	IssueProb float64 `json:"issue_prob"`
	// Threshold is the posterior sample cutoff for the Thompson policy.
	Threshold float64 `json:"threshold"`
}

func DefaultConfig() Config {
	return Config{
		Views:         defaultViews,
		Stock:         defaultStock,
		BaseRate:      defaultBaseRate,
		Amplification: defaultAmplification,
		HorizonS:      defaultHorizonS,
		Schedule:      ScheduleUniform,
		Curve:         CurveLinear,
		Seed:          42,
		IssueProb:     defaultIssueProb,
		Threshold:     defaultThreshold,
	}
}

func (c Config) Validate() error {
	if c.Views <= 0 {
		return ErrInvalidViews
	}
	if c.Stock <= 0 {
		return ErrInvalidStock
	}
	if c.BaseRate < 0 || c.BaseRate > 1 {
		return ErrInvalidBaseRate
	}
	if c.Amplification < 0 {
		return ErrInvalidAmplification
	}
	if c.HorizonS <= 0 {
		return ErrInvalidHorizon
	}
	if c.IssueProb < 0 || c.IssueProb > 1 {
		return ErrInvalidIssueProb
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return ErrInvalidThreshold
	}
	switch c.Curve {
	case CurveLinear, CurveExponential, "":
	default:
		return ErrInvalidCurve
	}
	switch c.Schedule {
	case ScheduleLinear, ScheduleUniform, "":
	default:
		return ErrInvalidSchedule
	}
	return nil
}
