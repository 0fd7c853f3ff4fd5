package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// TaskMode discriminates the kinds of synthesized tasks.
type TaskMode string

const (
	// ModeBuild compiles the project or a single target.
	ModeBuild TaskMode = "build"
	// ModeRun runs an executable target.
	ModeRun TaskMode = "run"
	// ModeTest runs all tests or a single test.
	ModeTest TaskMode = "test"
	// ModeBenchmark runs all benchmarks or a single benchmark.
	ModeBenchmark TaskMode = "benchmark"
	// ModeClean removes build outputs.
	ModeClean TaskMode = "clean"
	// ModeReconfigure re-runs meson setup on an existing build directory.
	ModeReconfigure TaskMode = "reconfigure"
)

// ParseTaskMode validates a task mode string.
func ParseTaskMode(s string) (TaskMode, error) {
	switch m := TaskMode(s); m {
	case ModeBuild, ModeRun, ModeTest, ModeBenchmark, ModeClean, ModeReconfigure:
		return m, nil
	default:
		return "", zerr.With(ErrInvalidTaskMode, "mode", s)
	}
}

// TaskGroup is the category a task is presented under.
type TaskGroup string

const (
	// GroupNone marks tasks outside of any group.
	GroupNone TaskGroup = ""
	// GroupBuild contains build tasks.
	GroupBuild TaskGroup = "build"
	// GroupTest contains test and benchmark tasks.
	GroupTest TaskGroup = "test"
	// GroupRebuild contains reconfigure tasks.
	GroupRebuild TaskGroup = "rebuild"
	// GroupClean contains clean tasks.
	GroupClean TaskGroup = "clean"
)

// TaskDefinition is the identity of a task. It is stable for a given build directory state.
type TaskDefinition struct {
	Type     string   `json:"type"`
	Mode     TaskMode `json:"mode"`
	Target   string   `json:"target,omitempty"`
	Filename string   `json:"filename,omitempty"`
}

// Key returns the canonical string form of the definition.
func (d TaskDefinition) Key() string {
	parts := []string{d.Type, string(d.Mode)}
	if d.Target != "" || d.Filename != "" {
		parts = append(parts, d.Target)
	}
	if d.Filename != "" {
		parts = append(parts, d.Filename)
	}
	return strings.Join(parts, ":")
}

// ID returns a short stable identifier derived from the definition key and the folder path.
func (d TaskDefinition) ID(folder string) string {
	return strconv.FormatUint(xxhash.Sum64String(folder+"\x00"+d.Key()), 16)
}

// TaskDescriptor is a unit of work exposed to the host.
// Process marks run tasks that execute a built program instead of the meson binary.
type TaskDescriptor struct {
	Definition TaskDefinition    `json:"definition"`
	Name       string            `json:"name"`
	Folder     WorkspaceFolder   `json:"-"`
	Group      TaskGroup         `json:"group,omitempty"`
	Command    string            `json:"command"`
	Args       []string          `json:"args,omitempty"`
	Dir        string            `json:"cwd"`
	Env        map[string]string `json:"env,omitempty"`
	Process    bool              `json:"process,omitempty"`
}

// Matches reports whether the task has the given mode and target.
func (t *TaskDescriptor) Matches(mode TaskMode, target string) bool {
	return t.Definition.Mode == mode && t.Definition.Target == target
}

// CommandLine returns the command and its arguments as one slice.
func (t *TaskDescriptor) CommandLine() []string {
	return append([]string{t.Command}, t.Args...)
}
