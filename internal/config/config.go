// Package config provides Viper-based configuration loading for the dieconv
// self-test binary.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SelfTestConfig holds the self-test run settings.
type SelfTestConfig struct {
	// Seed seeds the base dice deterministically; 0 selects the
	// crypto/rand source instead.
	Seed int64 `mapstructure:"seed"`
	// Samples is the number of rolls drawn per chain.
	Samples int `mapstructure:"samples"`
	// Tolerance is the maximum allowed |mean - theoretical mean| per chain.
	Tolerance float64 `mapstructure:"tolerance"`
	// RejectLimit caps consecutive rejections per conversion stage before
	// the run is aborted as anomalous; 0 disables the cap.
	RejectLimit int `mapstructure:"reject_limit"`
	// Chains lists the conversion-chain expressions to exercise,
	// e.g. "d6 > radix:d16".
	Chains []string `mapstructure:"chains"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	SelfTest SelfTestConfig `mapstructure:"selftest"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if the configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSelfTest(c.SelfTest); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSelfTest(s SelfTestConfig) error {
	var errs []string
	if s.Samples < 1 {
		errs = append(errs, fmt.Sprintf("selftest.samples must be >= 1, got %d", s.Samples))
	}
	if s.Tolerance <= 0 {
		errs = append(errs, fmt.Sprintf("selftest.tolerance must be > 0, got %g", s.Tolerance))
	}
	if s.RejectLimit < 0 {
		errs = append(errs, fmt.Sprintf("selftest.reject_limit must be >= 0, got %d", s.RejectLimit))
	}
	if len(s.Chains) == 0 {
		errs = append(errs, "selftest.chains must list at least one chain")
	}
	for i, chain := range s.Chains {
		if strings.TrimSpace(chain) == "" {
			errs = append(errs, fmt.Sprintf("selftest.chains[%d] must not be empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and DIECONV_ environment
// overrides installed. When path is non-empty it is bound as the config
// file, but not yet read.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}
	bindEnv(v)
	SetDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults installs the default value for every configuration key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("selftest.seed", 1)
	v.SetDefault("selftest.samples", 10000)
	v.SetDefault("selftest.tolerance", 0.25)
	v.SetDefault("selftest.reject_limit", 0)
	v.SetDefault("selftest.chains", []string{
		"d6 > d3",
		"d6 > radix:d16",
		"d10 > combo:d50",
	})
}

// bindEnv enables environment variable overrides with a DIECONV_ prefix,
// e.g. DIECONV_SELFTEST_SAMPLES=500.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("DIECONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
