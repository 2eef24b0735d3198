package driver

import "github.com/agbru/recur/internal/logging"

// NoOpObserver ignores all notifications.
type NoOpObserver struct{}

// OnStep implements Observer.
func (NoOpObserver) OnStep(string, Step) {}

// OnComplete implements Observer.
func (NoOpObserver) OnComplete(string, Summary) {}

// LoggingObserver logs each step at debug level and the summary at info level.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver returns an observer writing to logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnStep implements Observer.
func (o *LoggingObserver) OnStep(program string, step Step) {
	o.logger.Debug("step evaluated",
		logging.String("program", program),
		logging.String("expr", step.Label),
		logging.Int("value", step.Value),
		logging.Uint64("work", step.Work),
		logging.Duration("elapsed", step.Elapsed),
	)
}

// OnComplete implements Observer.
func (o *LoggingObserver) OnComplete(program string, summary Summary) {
	o.logger.Info("run complete",
		logging.String("program", program),
		logging.Int("steps", summary.Steps),
		logging.Uint64("total_work", summary.TotalWork),
		logging.Duration("elapsed", summary.Elapsed),
	)
}
