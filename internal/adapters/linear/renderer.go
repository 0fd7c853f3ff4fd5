// Package linear provides a synchronous, line-oriented renderer of span progress.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/ui/output"
	"go.trai.ch/mesonic/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with linear, chronological status lines.
// Span output is not rendered here.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
	tasks  map[string]*taskState
}

type taskState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w. A nil writer selects os.Stderr.
func NewRenderer(w io.Writer) *Renderer {
	r := &Renderer{tasks: make(map[string]*taskState)}
	r.SetOutput(w)
	return r
}

// SetOutput redirects status lines. A nil writer selects os.Stderr.
func (r *Renderer) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = w
	r.output = output.New(w)
}

// OnTaskStart prints a start message.
func (r *Renderer) OnTaskStart(spanID, _, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{name: name, startTime: startTime}

	prefix := r.output.String("[" + name + "]").Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", prefix)
}

// OnTaskComplete prints the completion status.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := "[" + task.name + "]"

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(r.output.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", prefix, symbol, duration)
}
