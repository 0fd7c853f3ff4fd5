// Package launch hands debug launch configurations to an external debugger front end.
package launch

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DebugLauncher = (*Emitter)(nil)

// Emitter implements ports.DebugLauncher by writing each configuration as a
// JSON document, ready to paste into a launch.json or pipe into a DAP client.
type Emitter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewEmitter creates an Emitter writing to w. A nil writer selects os.Stdout.
func NewEmitter(w io.Writer) *Emitter {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Emitter{enc: enc}
}

// Launch writes cfg, user overrides included.
func (e *Emitter) Launch(ctx context.Context, cfg domain.LaunchConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enc.Encode(cfg.Map()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write launch configuration"), "name", cfg.Name)
	}
	return nil
}
