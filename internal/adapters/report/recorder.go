// Package report records test runs on the terminal and persists their outcomes.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/ui/output"
	"go.trai.ch/mesonic/internal/ui/style"
)

var _ ports.TestRun = (*Recorder)(nil)

// Recorder implements ports.TestRun. It prints one status line per leaf test,
// shows captured output of tests that did not pass, and stores every outcome
// in the result store of the test's build directory when the run ends.
type Recorder struct {
	out     *termenv.Output
	store   ports.ResultStore
	logger  ports.Logger
	verbose bool
	now     func() time.Time

	mu      sync.Mutex
	order   []*ports.TestItem
	results map[*ports.TestItem]*domain.TestResult
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithVerbose prints captured output of passing tests as well.
func WithVerbose(verbose bool) Option {
	return func(r *Recorder) { r.verbose = verbose }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// NewRecorder creates a Recorder writing to w. A nil store disables persistence.
func NewRecorder(w io.Writer, store ports.ResultStore, logger ports.Logger, opts ...Option) *Recorder {
	if w == nil {
		w = os.Stdout
	}
	r := &Recorder{
		out:     output.New(w),
		store:   store,
		logger:  logger,
		now:     time.Now,
		results: make(map[*ports.TestItem]*domain.TestResult),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Started marks the item as running.
func (r *Recorder) Started(item *ports.TestItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[item]; !ok {
		r.order = append(r.order, item)
	}
	r.results[item] = &domain.TestResult{ID: item.ID, Outcome: domain.OutcomeSkipped}
}

// Passed marks the item as passed.
func (r *Recorder) Passed(item *ports.TestItem, duration time.Duration) {
	r.finish(item, domain.OutcomePassed, "", duration)
}

// Failed marks the item as failed.
func (r *Recorder) Failed(item *ports.TestItem, message string, duration time.Duration) {
	r.finish(item, domain.OutcomeFailed, message, duration)
}

// Errored marks the item as not runnable.
func (r *Recorder) Errored(item *ports.TestItem, message string, duration time.Duration) {
	r.finish(item, domain.OutcomeErrored, message, duration)
}

// AppendOutput attaches captured output to the item's result.
func (r *Recorder) AppendOutput(item *ports.TestItem, out string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.resultLocked(item)
	res.Output += out

	if out == "" || (res.Outcome == domain.OutcomePassed && !r.verbose) {
		return
	}
	for line := range strings.Lines(out) {
		_, _ = r.out.WriteString("    " + strings.TrimRight(line, "\r\n") + "\n")
	}
}

// End prints a summary and persists all results.
func (r *Recorder) End() {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[domain.TestOutcome]int)
	for _, item := range r.order {
		res := r.results[item]
		counts[res.Outcome]++

		if r.store == nil || item.BuildDir == "" {
			continue
		}
		if err := r.store.Put(item.BuildDir, *res); err != nil && r.logger != nil {
			r.logger.Error(err)
		}
	}

	summary := fmt.Sprintf("%d passed, %d failed, %d errored",
		counts[domain.OutcomePassed], counts[domain.OutcomeFailed], counts[domain.OutcomeErrored])
	if n := counts[domain.OutcomeSkipped]; n > 0 {
		summary += fmt.Sprintf(", %d skipped", n)
	}
	_, _ = r.out.WriteString("\n" + summary + "\n")
}

// Failures returns the number of items that failed or errored.
func (r *Recorder) Failures() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, res := range r.results {
		if res.Outcome == domain.OutcomeFailed || res.Outcome == domain.OutcomeErrored {
			n++
		}
	}
	return n
}

func (r *Recorder) finish(item *ports.TestItem, outcome domain.TestOutcome, message string, duration time.Duration) {
	// Containers only group tests; they are neither counted nor stored.
	if isContainer(item) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.resultLocked(item)
	res.Outcome = outcome
	res.Message = message
	res.Duration = duration
	res.Timestamp = r.now()

	icon, color := Icon(outcome)
	line := fmt.Sprintf("%s %s (%v)", r.paint(icon, color), item.Label, duration.Round(time.Millisecond))
	if message != "" {
		line += ": " + firstLine(message)
	}
	_, _ = r.out.WriteString(line + "\n")
}

// resultLocked must be called with r.mu held.
func (r *Recorder) resultLocked(item *ports.TestItem) *domain.TestResult {
	res, ok := r.results[item]
	if !ok {
		res = &domain.TestResult{ID: item.ID, Outcome: domain.OutcomeSkipped}
		r.results[item] = res
		r.order = append(r.order, item)
	}
	return res
}

func isContainer(item *ports.TestItem) bool {
	return item.Children != nil && item.Children.Len() > 0
}

func (r *Recorder) paint(s string, color lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(color))).String()
}

// Icon returns the status icon and color of an outcome.
func Icon(outcome domain.TestOutcome) (string, lipgloss.Color) {
	switch outcome {
	case domain.OutcomePassed:
		return style.Check, style.Green
	case domain.OutcomeFailed:
		return style.Cross, style.Red
	case domain.OutcomeErrored:
		return style.Warning, style.Yellow
	default:
		return style.Circle, style.Slate
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
