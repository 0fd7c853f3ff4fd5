// Package notify implements user-facing one-line notifications on the terminal.
package notify

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/ui/output"
	"go.trai.ch/mesonic/internal/ui/style"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier prints notifications prefixed with a status icon.
type Notifier struct {
	mu  sync.Mutex
	out *termenv.Output
}

// New creates a Notifier writing to w. A nil writer selects os.Stderr.
func New(w io.Writer) *Notifier {
	if w == nil {
		w = os.Stderr
	}
	return &Notifier{out: output.New(w)}
}

// Info shows an informational notification.
func (n *Notifier) Info(msg string) {
	n.print(style.Info, style.Accent, msg)
}

// Warn shows a warning notification.
func (n *Notifier) Warn(msg string) {
	n.print(style.Warning, style.Yellow, msg)
}

// Error shows an error notification.
func (n *Notifier) Error(msg string) {
	n.print(style.Cross, style.Red, msg)
}

func (n *Notifier) print(icon string, color lipgloss.Color, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	prefix := n.out.String(icon).Foreground(n.out.Color(string(color)))
	_, _ = n.out.WriteString(prefix.String() + " " + msg + "\n")
}
