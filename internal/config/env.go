// This file contains the environment variable layer of the configuration.

package config

import (
	"flag"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/agbru/recur/internal/errors"
)

// envValues mirrors AppConfig for environment parsing. Pointer fields stay
// nil when the variable is unset, so defaults and flags are left untouched.
type envValues struct {
	LogLevel    *string `env:"LOG_LEVEL"`
	LogFormat   *string `env:"LOG_FORMAT"`
	MetricsFile *string `env:"METRICS_FILE"`
	Progress    *bool   `env:"PROGRESS"`
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the RECUR_ prefix) to the CLI flag it
// corresponds to and a function that copies the parsed value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, envValues)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v envValues) {
		if v.LogLevel != nil {
			c.LogLevel = *v.LogLevel
		}
	}},
	{"LOG_FORMAT", "log-format", func(c *AppConfig, v envValues) {
		if v.LogFormat != nil {
			c.LogFormat = *v.LogFormat
		}
	}},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v envValues) {
		if v.MetricsFile != nil {
			c.MetricsFile = *v.MetricsFile
		}
	}},
	{"PROGRESS", "progress", func(c *AppConfig, v envValues) {
		if v.Progress != nil {
			c.Progress = *v.Progress
		}
	}},
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies RECUR_* values to the configuration for any flag
// that was not explicitly set on the command line. Malformed values (for
// example RECUR_PROGRESS=maybe) are reported as a ConfigError.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) error {
	var values envValues
	if err := env.ParseWithOptions(&values, env.Options{Prefix: EnvPrefix}); err != nil {
		return apperrors.NewConfigError("invalid environment: %v", err)
	}
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		o.apply(cfg, values)
	}
	return nil
}
