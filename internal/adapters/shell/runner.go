// Package shell provides the process runner used to invoke external tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/mesonic/internal/adapters/detector"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessRunner = (*Runner)(nil)

// exitCodeUnknown is reported when the process did not start or was killed by a signal.
const exitCodeUnknown = -1

// waitDelay bounds how long Wait keeps draining output after the process group was killed.
const waitDelay = time.Second

// Runner implements ports.ProcessRunner using os/exec and pty.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and captures its output.
func (r *Runner) Run(ctx context.Context, c ports.Command) (*ports.Result, error) {
	ctx, cancel := withTimeout(ctx, c)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := r.command(ctx, c)
	newProcessGroup(cmd)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &ports.Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode(err),
	}
	if err != nil {
		return res, r.wrap(ctx, c, err, res.ExitCode)
	}
	return res, nil
}

// Stream executes the command and copies its output live.
// A pseudo-terminal is used when stdout is an interactive terminal so that
// the tool keeps its colored, progress-style output.
func (r *Runner) Stream(ctx context.Context, c ports.Command, stdout, stderr io.Writer) (int, error) {
	ctx, cancel := withTimeout(ctx, c)
	defer cancel()

	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	cmd := r.command(ctx, c)

	var err error
	if detector.Interactive(stdout) {
		// pty.Start puts the child in a new session, which also leads its own group.
		err = runPTY(cmd, stdout)
	} else {
		newProcessGroup(cmd)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		err = cmd.Run()
	}

	code := exitCode(err)
	if err != nil {
		return code, r.wrap(ctx, c, err, code)
	}
	return code, nil
}

func (r *Runner) command(ctx context.Context, c ports.Command) *exec.Cmd {
	cmdEnv := resolveEnvironment(os.Environ(), c.Env)

	// Resolve the executable against the PATH of the final environment.
	executable := c.Name
	if !filepath.IsAbs(c.Name) {
		if lp, err := lookPath(c.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // user configured tool

	if len(cmd.Args) > 0 {
		cmd.Args[0] = c.Name
	}
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	cmd.Env = cmdEnv

	// meson spawns compilers and test binaries; cancellation must reach all of them.
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = waitDelay

	return cmd
}

func (r *Runner) wrap(ctx context.Context, c ports.Command, err error, code int) error {
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = errors.Join(err, ctx.Err())
	}
	wrapped := zerr.Wrap(err, domain.ErrProcessInvocationFailed.Error())
	wrapped = zerr.With(wrapped, "exit_code", code)
	wrapped = zerr.With(wrapped, "command", strings.Join(append([]string{c.Name}, c.Args...), " "))
	if r.logger != nil && code == exitCodeUnknown {
		r.logger.Error(wrapped)
	}
	return wrapped
}

func runPTY(cmd *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// A pty merges stdout and stderr.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	_ = ptmx.Close()
	<-ioDone
	return err
}

func withTimeout(ctx context.Context, c ports.Command) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(ctx, c.Timeout)
	}
	return context.WithCancel(ctx)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return exitCodeUnknown
}

// resolveEnvironment overlays the command environment onto the inherited one.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	order := make([]string, 0, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range cmdEnv {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
