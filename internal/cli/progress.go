//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/agbru/recur/internal/driver"
	"github.com/agbru/recur/internal/format"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so that SpinnerObserver can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// newSpinner is a variable so tests can substitute a fake.
var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(w), spinner.WithHiddenCursor(true))
	return &realSpinner{s: s}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SpinnerObserver shows which value a program is working on. It implements
// driver.Observer and must be given stderr, never the program's stdout.
type SpinnerObserver struct {
	mu      sync.Mutex
	spinner Spinner
	total   int
	done    int
	running bool
}

var _ driver.Observer = (*SpinnerObserver)(nil)

// NewSpinnerObserver creates an observer for a program producing total values.
func NewSpinnerObserver(w io.Writer, total int) *SpinnerObserver {
	return &SpinnerObserver{spinner: newSpinner(w), total: total}
}

// Start begins the animation with the name of the program.
func (o *SpinnerObserver) Start(program string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		return
	}
	o.spinner.UpdateSuffix(fmt.Sprintf(" %s [0/%d]", program, o.total))
	o.spinner.Start()
	o.running = true
}

// Stop halts the animation. It is safe to call more than once.
func (o *SpinnerObserver) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running {
		return
	}
	o.spinner.Stop()
	o.running = false
}

// OnStep implements driver.Observer.
func (o *SpinnerObserver) OnStep(program string, step driver.Step) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.done++
	o.spinner.UpdateSuffix(fmt.Sprintf(" %s [%d/%d] %s = %d (%s work, %s)",
		program, o.done, o.total, step.Label, step.Value, format.Count(step.Work), format.Duration(step.Elapsed)))
}

// OnComplete implements driver.Observer.
func (o *SpinnerObserver) OnComplete(string, driver.Summary) {
	o.Stop()
}
