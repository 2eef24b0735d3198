package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/recur/internal/cli"
	"github.com/agbru/recur/internal/config"
	"github.com/agbru/recur/internal/driver"
	apperrors "github.com/agbru/recur/internal/errors"
	"github.com/agbru/recur/internal/logging"
	"github.com/agbru/recur/internal/metrics"
	"github.com/agbru/recur/internal/sysmon"
)

// Command describes one of the binaries: its name, the one-line summary shown
// by --help, and the program it runs.
type Command struct {
	Name    string
	Summary string
	Program driver.Program
}

// Application represents a single program invocation.
type Application struct {
	Config    config.AppConfig
	Command   Command
	ErrWriter io.Writer

	tracer trace.Tracer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithTracer sets the tracer used for the run span. The global
// OpenTelemetry tracer is used otherwise.
func WithTracer(t trace.Tracer) AppOption {
	return func(a *Application) { a.tracer = t }
}

// New creates a new Application by parsing the command-line arguments (without
// the program name) and the RECUR_* environment.
func New(args []string, errWriter io.Writer, cmd Command, opts ...AppOption) (*Application, error) {
	app := &Application{Command: cmd, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	cfg, err := config.ParseConfig(cmd.Name, cmd.Summary, args, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the program, writing its values to out, and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	logger, err := logging.New(a.ErrWriter, a.Config.LoggingOptions(a.Command.Name))
	if err != nil {
		return ReportError(a.ErrWriter, err)
	}
	log := logger.With(logging.String("run_id", uuid.NewString()))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	observers := []driver.Observer{driver.NewLoggingObserver(log)}

	var recorder *metrics.Recorder
	if a.Config.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		observers = append(observers, recorder)
	}

	var progress *cli.SpinnerObserver
	if a.Config.Progress && cli.IsTerminal(a.ErrWriter) {
		progress = cli.NewSpinnerObserver(a.ErrWriter, a.Command.Program.Len())
		progress.Start(a.Command.Name)
		observers = append(observers, progress)
	}

	runOpts := []driver.Option{driver.WithObservers(observers...)}
	if a.tracer != nil {
		runOpts = append(runOpts, driver.WithTracer(a.tracer))
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	runErr := driver.Run(ctx, a.Command.Program, driver.NewTextSink(out), runOpts...)
	if progress != nil {
		progress.Stop()
	}
	a.logResources(context.WithoutCancel(ctx), log, mc.Snapshot().Since(before))

	if recorder != nil {
		if err := recorder.WriteToTextfile(a.Config.MetricsFile); err != nil {
			log.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
			if runErr == nil {
				runErr = err
			}
		} else {
			log.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
		}
	}

	if runErr != nil {
		log.Error("run failed", runErr, logging.String("program", a.Command.Name))
		return apperrors.ExitCodeFor(runErr)
	}
	return apperrors.ExitSuccess
}

// logResources records the memory used by the run and the system load at its
// end. Both are debug-level only.
func (a *Application) logResources(ctx context.Context, log logging.Logger, mem metrics.MemorySnapshot) {
	stats := sysmon.Sample(ctx)
	log.Debug("resource usage",
		logging.Uint64("heap_alloc", mem.HeapAlloc),
		logging.Uint64("total_alloc", mem.TotalAlloc),
		logging.Uint64("num_gc", uint64(mem.NumGC)),
		logging.Float64("cpu_percent", stats.CPUPercent),
		logging.Float64("mem_percent", stats.MemPercent),
		logging.Int("cpu_count", stats.CPUCount),
	)
}

// ReportError prints err to w, unless it is a help request, and returns the
// matching exit code.
func ReportError(w io.Writer, err error) int {
	if err != nil && !IsHelpError(err) {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return apperrors.ExitCodeFor(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
