//go:generate mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks

// Package driver runs a Program: it evaluates the program's function for every
// index in a fixed inclusive range, in ascending order, writes each value to a
// Sink and finishes with the completion marker.
package driver

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/recur/internal/errors"
)

// instrumentationName identifies spans emitted by this package.
const instrumentationName = "github.com/agbru/recur/internal/driver"

// Result is the value computed for one index.
type Result struct {
	// Value is the integer written to the sink.
	Value int
	// Work is the amount of elementary work the evaluation performed
	// (window advances or recursive invocations). It is never printed.
	Work uint64
}

// EvalFunc computes the result for index i.
type EvalFunc func(ctx context.Context, i int) (Result, error)

// Program describes one driver loop.
type Program struct {
	// Name identifies the program in logs, metrics and spans.
	Name string
	// First and Last bound the loop variable, both inclusive.
	First, Last int
	// Label renders the evaluated expression for index i, e.g. "F(7)".
	Label func(i int) string
	// Eval computes the value for index i.
	Eval EvalFunc
}

// Len returns the number of values the program produces.
func (p Program) Len() int {
	if p.Last < p.First {
		return 0
	}
	return p.Last - p.First + 1
}

// Step describes one completed evaluation.
type Step struct {
	Index   int
	Label   string
	Value   int
	Work    uint64
	Elapsed time.Duration
}

// Summary describes a completed run.
type Summary struct {
	Steps     int
	TotalWork uint64
	Elapsed   time.Duration
}

// Sink receives the program output.
type Sink interface {
	// Emit writes one computed value.
	Emit(value int) error
	// Done writes the completion marker and flushes any buffered output.
	Done() error
}

// Observer is notified as the run progresses. Observers must not write to
// the program's standard output.
type Observer interface {
	OnStep(program string, step Step)
	OnComplete(program string, summary Summary)
}

// Option configures Run.
type Option func(*runner)

// WithObservers registers observers, notified in order.
func WithObservers(observers ...Observer) Option {
	return func(r *runner) { r.observers = append(r.observers, observers...) }
}

// WithTracer overrides the tracer used for spans. By default the tracer comes
// from the global OpenTelemetry provider, which is a no-op unless configured.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *runner) { r.tracer = tracer }
}

type runner struct {
	observers []Observer
	tracer    trace.Tracer
}

// Run executes program sequentially and writes its output to sink.
//
// The context is checked before each evaluation; on cancellation or on any
// evaluation or write error the run stops and the completion marker is not
// written.
func Run(ctx context.Context, program Program, sink Sink, opts ...Option) (err error) {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(instrumentationName)
	}

	ctx, span := r.tracer.Start(ctx, "driver.Run", trace.WithAttributes(
		attribute.String("program", program.Name),
		attribute.Int("first", program.First),
		attribute.Int("last", program.Last),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	start := time.Now()
	var total uint64
	for i := program.First; i <= program.Last; i++ {
		if err := ctx.Err(); err != nil {
			return apperrors.WrapError(err, "%s stopped before %s", program.Name, program.label(i))
		}

		stepStart := time.Now()
		res, err := program.Eval(ctx, i)
		if err != nil {
			return apperrors.WrapError(err, "evaluating %s", program.label(i))
		}
		if err := sink.Emit(res.Value); err != nil {
			return apperrors.WrapError(err, "writing %s", program.label(i))
		}

		step := Step{Index: i, Label: program.label(i), Value: res.Value, Work: res.Work, Elapsed: time.Since(stepStart)}
		total += res.Work
		span.AddEvent("step", trace.WithAttributes(
			attribute.Int("index", i),
			attribute.Int("value", res.Value),
			attribute.Int64("work", int64(res.Work)),
		))
		for _, o := range r.observers {
			o.OnStep(program.Name, step)
		}
	}

	if err := sink.Done(); err != nil {
		return apperrors.WrapError(err, "writing completion marker")
	}

	summary := Summary{Steps: program.Len(), TotalWork: total, Elapsed: time.Since(start)}
	span.SetAttributes(attribute.Int64("total_work", int64(total)))
	for _, o := range r.observers {
		o.OnComplete(program.Name, summary)
	}
	return nil
}

func (p Program) label(i int) string {
	if p.Label == nil {
		return p.Name
	}
	return p.Label(i)
}
