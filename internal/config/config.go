// Package config parses the ambient settings shared by the three programs.
//
// None of these settings affect what a program prints on standard output:
// they control logging, progress display on stderr and metrics export.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/recur/internal/errors"
	"github.com/agbru/recur/internal/logging"
)

// EnvPrefix is prepended to every environment variable read by the programs.
const EnvPrefix = "RECUR_"

// Defaults.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = logging.FormatConsole
)

// AppConfig holds the resolved settings of a program run.
type AppConfig struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
	// MetricsFile, when set, receives the run's Prometheus metrics in the
	// textfile-collector format.
	MetricsFile string
	// Progress shows a spinner on stderr when stderr is a terminal.
	Progress bool
	// NoColor disables ANSI colours in logs (also set by NO_COLOR).
	NoColor bool
}

// ParseConfig parses command-line arguments for programName, then applies
// RECUR_* environment overrides for every flag not given on the command line.
// The priority is: CLI flags > environment variables > defaults.
//
// flag.ErrHelp is returned unchanged when -h/--help is requested; every other
// parse failure is a ConfigError.
func ParseConfig(programName, summary string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level written to stderr (trace, debug, info, warn, error, disabled).")
	fs.StringVar(&cfg.LogFormat, "log-format", DefaultLogFormat, "Log format: console or json.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file when the run completes.")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a progress spinner on stderr (terminal only).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored log output.")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n%s\n\nFlags:\n", programName, summary)
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment:\n")
		for _, o := range envOverrides {
			fmt.Fprintf(out, "  %s%s\n", EnvPrefix, o.envKey)
		}
		fmt.Fprintf(out, "  NO_COLOR\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.ConfigError{Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("%s takes no arguments, got %q", programName, strings.Join(fs.Args(), " "))
	}

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return cfg, err
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	return cfg, cfg.Validate()
}

// Validate checks the log level and format.
func (c AppConfig) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return apperrors.NewConfigError("invalid log format %q (want %s or %s)", c.LogFormat, logging.FormatConsole, logging.FormatJSON)
	}
	return nil
}

// LoggingOptions converts the configuration into logging.Options.
func (c AppConfig) LoggingOptions(component string) logging.Options {
	return logging.Options{
		Level:     c.LogLevel,
		Format:    c.LogFormat,
		Component: component,
		NoColor:   c.NoColor,
	}
}
