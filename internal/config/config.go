package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "COREBANK"

	defaultAppName           = "corebank"
	defaultAppEnv            = "development"
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
	defaultTimezone          = "UTC"
	defaultPrimeWorkers      = 4
	defaultInterestWorkers   = 4
	defaultCompoundFrequency = 12
)

// Config captures runtime configuration loaded from an optional file and
// COREBANK_* environment variables.
type Config struct {
	AppName    string           `mapstructure:"app_name"`
	AppEnv     string           `mapstructure:"app_env"`
	Log        LogConfig        `mapstructure:"log"`
	Clock      ClockConfig      `mapstructure:"clock"`
	Primes     PrimesConfig     `mapstructure:"primes"`
	Bank       BankConfig       `mapstructure:"bank"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClockConfig decides which calendar day boundaries apply to.
type ClockConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type PrimesConfig struct {
	Workers int `mapstructure:"workers"`
}

// BankConfig tunes the account service.
type BankConfig struct {
	InterestWorkers int `mapstructure:"interest_workers"`
}

type CalculatorConfig struct {
	CompoundFrequency int `mapstructure:"compound_frequency"`
}

// Load reads configuration. An empty path skips the file and uses defaults
// plus environment overrides. A missing explicit file is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		AppName:    defaultAppName,
		AppEnv:     defaultAppEnv,
		Log:        LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Clock:      ClockConfig{Timezone: defaultTimezone},
		Primes:     PrimesConfig{Workers: defaultPrimeWorkers},
		Bank:       BankConfig{InterestWorkers: defaultInterestWorkers},
		Calculator: CalculatorConfig{CompoundFrequency: defaultCompoundFrequency},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if _, err := time.LoadLocation(c.Clock.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("clock.timezone: %w", err))
	}
	if c.Primes.Workers <= 0 {
		errs = append(errs, fmt.Errorf("primes.workers must be positive, got %d", c.Primes.Workers))
	}
	if c.Bank.InterestWorkers <= 0 {
		errs = append(errs, fmt.Errorf("bank.interest_workers must be positive, got %d", c.Bank.InterestWorkers))
	}
	if c.Calculator.CompoundFrequency <= 0 {
		errs = append(errs, fmt.Errorf("calculator.compound_frequency must be positive, got %d", c.Calculator.CompoundFrequency))
	}
	return errors.Join(errs...)
}

// Location resolves the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("app_name", d.AppName)
	v.SetDefault("app_env", d.AppEnv)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("clock.timezone", d.Clock.Timezone)
	v.SetDefault("primes.workers", d.Primes.Workers)
	v.SetDefault("bank.interest_workers", d.Bank.InterestWorkers)
	v.SetDefault("calculator.compound_frequency", d.Calculator.CompoundFrequency)
}
