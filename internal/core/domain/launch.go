package domain

import (
	"maps"
	"path/filepath"
	"slices"
)

// DefaultDebuggerType is the debug adapter type used when none is configured.
const DefaultDebuggerType = "cppdbg"

// LaunchConfig is a debug launch configuration derived from a test descriptor.
type LaunchConfig struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Request string            `json:"request"`
	Program string            `json:"program"`
	Args    []string          `json:"args"`
	Cwd     string            `json:"cwd"`
	Env     map[string]string `json:"env,omitempty"`
	// Extra holds user supplied debug options without a dedicated field.
	Extra map[string]any `json:"-"`
}

// NewLaunchConfig derives a launch configuration for a test.
// A leading env wrapper ("env [K=V...] [--]") is stripped from the command.
// The working directory defaults to the build directory.
func NewLaunchConfig(test *TestDescriptor, buildDir string) (LaunchConfig, error) {
	cmd := unwrapEnv(test.Cmd)
	if len(cmd) == 0 {
		return LaunchConfig{}, ErrEmptyCommand
	}

	cwd := buildDir
	if test.Workdir != nil && *test.Workdir != "" {
		cwd = *test.Workdir
	}

	return LaunchConfig{
		Name:    "Debug " + test.Name,
		Type:    DefaultDebuggerType,
		Request: "launch",
		Program: cmd[0],
		Args:    slices.Clone(cmd[1:]),
		Cwd:     cwd,
		Env:     maps.Clone(test.Env),
	}, nil
}

// ApplyOverrides applies user debug options on top of the synthesized fields.
// Known keys replace their field, "env" is merged with user keys winning,
// and everything else is kept in Extra.
func (c *LaunchConfig) ApplyOverrides(options map[string]any) {
	for key, value := range options {
		switch key {
		case "name":
			setString(&c.Name, value)
		case "type":
			setString(&c.Type, value)
		case "request":
			setString(&c.Request, value)
		case "program":
			setString(&c.Program, value)
		case "cwd":
			setString(&c.Cwd, value)
		case "args":
			if args, ok := stringSlice(value); ok {
				c.Args = args
			}
		case "env":
			if env, ok := value.(map[string]any); ok {
				if c.Env == nil {
					c.Env = make(map[string]string, len(env))
				}
				for k, v := range env {
					if s, ok := v.(string); ok {
						c.Env[k] = s
					}
				}
			}
		default:
			if c.Extra == nil {
				c.Extra = make(map[string]any)
			}
			c.Extra[key] = value
		}
	}
}

// Map flattens the configuration, Extra included, into a single object.
func (c *LaunchConfig) Map() map[string]any {
	out := make(map[string]any, len(c.Extra)+7)
	maps.Copy(out, c.Extra)
	out["name"] = c.Name
	out["type"] = c.Type
	out["request"] = c.Request
	out["program"] = c.Program
	out["args"] = c.Args
	out["cwd"] = c.Cwd
	if len(c.Env) > 0 {
		out["env"] = c.Env
	}
	return out
}

func unwrapEnv(cmd []string) []string {
	if len(cmd) == 0 || filepath.Base(cmd[0]) != "env" {
		return cmd
	}
	rest := cmd[1:]
	if i := slices.Index(rest, "--"); i >= 0 {
		return rest[i+1:]
	}
	for len(rest) > 0 && isAssignment(rest[0]) {
		rest = rest[1:]
	}
	return rest
}

func isAssignment(s string) bool {
	for i, r := range s {
		if r == '=' {
			return i > 0
		}
	}
	return false
}

func setString(dst *string, value any) {
	if s, ok := value.(string); ok {
		*dst = s
	}
}

func stringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
