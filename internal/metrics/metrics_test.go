package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/recur/internal/driver"
)

// TestRecorder_Observer feeds steps directly and checks the counters.
func TestRecorder_Observer(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.OnStep("ackermann", driver.Step{Index: 0, Value: 5, Work: 15, Elapsed: time.Microsecond})
	r.OnStep("ackermann", driver.Step{Index: 1, Value: 13, Work: 106, Elapsed: 2 * time.Microsecond})
	r.OnComplete("ackermann", driver.Summary{Steps: 2, TotalWork: 121, Elapsed: time.Millisecond})

	if got := testutil.ToFloat64(r.evaluations.WithLabelValues("ackermann")); got != 2 {
		t.Errorf("evaluations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.work.WithLabelValues("ackermann")); got != 121 {
		t.Errorf("work = %v, want 121", got)
	}
	if got := testutil.ToFloat64(r.lastValue.WithLabelValues("ackermann")); got != 13 {
		t.Errorf("last value = %v, want 13", got)
	}
	if got := testutil.ToFloat64(r.runs.WithLabelValues("ackermann")); got != 1 {
		t.Errorf("runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.runSeconds.WithLabelValues("ackermann")); got != 0.001 {
		t.Errorf("run seconds = %v, want 0.001", got)
	}
}

// TestRecorder_DriverRun wires the recorder into a real run.
func TestRecorder_DriverRun(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	var out strings.Builder
	err := driver.Run(context.Background(), driver.FibonacciRecordProgram(), driver.NewTextSink(&out), driver.WithObservers(r))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got := testutil.ToFloat64(r.evaluations.WithLabelValues(driver.FibonacciRecordName)); got != 11 {
		t.Errorf("evaluations = %v, want 11", got)
	}
	if got := testutil.ToFloat64(r.lastValue.WithLabelValues(driver.FibonacciRecordName)); got != 55 {
		t.Errorf("last value = %v, want 55", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Errorf("duration histogram series = %d, want 1", got)
	}
}

// TestRecorder_Handler tests the Prometheus exposition endpoint.
func TestRecorder_Handler(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.OnStep("fib", driver.Step{Value: 1, Work: 0})

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()

	t.Run("Contains evaluation counter", func(t *testing.T) {
		if !strings.Contains(body, `recur_evaluations_total{program="fib"} 1`) {
			t.Errorf("metrics output should contain recur_evaluations_total, got:\n%s", body)
		}
	})

	t.Run("Contains Go runtime metrics", func(t *testing.T) {
		if !strings.Contains(body, "go_goroutines") {
			t.Error("metrics output should contain Go runtime metrics")
		}
	})

	t.Run("Status OK", func(t *testing.T) {
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

// TestRecorder_WriteToTextfile checks the textfile-collector export.
func TestRecorder_WriteToTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.OnStep("fib", driver.Step{Value: 55, Work: 8})
	r.OnComplete("fib", driver.Summary{Steps: 1, TotalWork: 8})

	path := filepath.Join(t.TempDir(), "recur.prom")
	if err := r.WriteToTextfile(path); err != nil {
		t.Fatalf("WriteToTextfile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	for _, want := range []string{
		`recur_last_value{program="fib"} 55`,
		`recur_work_units_total{program="fib"} 8`,
		`recur_runs_completed_total{program="fib"} 1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile should contain %q", want)
		}
	}
}

func TestRecorder_WriteToTextfileBadPath(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	if err := r.WriteToTextfile(filepath.Join(t.TempDir(), "missing", "recur.prom")); err == nil {
		t.Error("expected error for missing directory")
	}
}
