package simulation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// Scenario is a named drop set plus feed parameters, loadable from YAML so
// the CLI and the API can run shared scenario files instead of only the
// built-in defaults.
type Scenario struct {
	Name          string        `yaml:"name"`
	Users         int           `yaml:"users"`
	HorizonS      int           `yaml:"horizon_s"`
	Amplification float64       `yaml:"amplification"`
	Curve         UrgencyCurve  `yaml:"curve"`
	Drops         []domain.Drop `yaml:"drops"`
}

func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	cfg := s.FeedConfig(0)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if err := validateDrops(s.Drops); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return nil
}

// FeedConfig materialises the scenario's feed parameters with the given seed.
func (s *Scenario) FeedConfig(seed int64) FeedConfig {
	cfg := FeedConfig{
		Users:         s.Users,
		HorizonS:      s.HorizonS,
		Seed:          seed,
		Amplification: s.Amplification,
		Curve:         s.Curve,
	}
	if cfg.Curve == "" {
		cfg.Curve = CurveLinear
	}
	return cfg
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultScenario mirrors the built-in drop set used when no scenario file
// is given.
func DefaultScenario(k int) *Scenario {
	return &Scenario{
		Name:          "default",
		Users:         500,
		HorizonS:      defaultHorizonS,
		Amplification: defaultAmplification,
		Curve:         CurveLinear,
		Drops:         DefaultDrops(k, 120, defaultHorizonS),
	}
}
