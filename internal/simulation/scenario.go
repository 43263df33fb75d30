// Package simulation replays a scripted list of account operations against a
// bank service driven by a manual clock.
package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Step operations.
const (
	OpOpen     = "open"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
	OpInterest = "interest"
	OpClose    = "close"
	OpAdvance  = "advance"
)

// ErrInvalidScenario is returned for scenarios that cannot be replayed.
var ErrInvalidScenario = errors.New("invalid scenario")

var defaultStart = time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

// Scenario is a start time and an ordered list of steps.
type Scenario struct {
	Start time.Time `mapstructure:"start"`
	Steps []Step    `mapstructure:"steps"`
}

// Step is one operation. Which fields matter depends on Op.
type Step struct {
	Op          string        `mapstructure:"op"`
	Account     string        `mapstructure:"account"`
	To          string        `mapstructure:"to"`
	Type        string        `mapstructure:"type"`
	Amount      string        `mapstructure:"amount"`
	Description string        `mapstructure:"description"`
	Duration    time.Duration `mapstructure:"duration"`
}

// Load reads a scenario file in any format viper understands.
func Load(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var sc Scenario
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&sc, hook); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if sc.Start.IsZero() {
		sc.Start = defaultStart
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate checks that each step carries the fields its operation needs.
func (sc Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	var errs []error
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpOpen, OpDeposit, OpWithdraw, OpClose, OpInterest:
		if st.Account == "" && st.Op != OpInterest {
			return fmt.Errorf("%s needs an account", st.Op)
		}
	case OpTransfer:
		if st.Account == "" || st.To == "" {
			return errors.New("transfer needs account and to")
		}
	case OpAdvance:
		if st.Duration <= 0 {
			return errors.New("advance needs a positive duration")
		}
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}
