package domain

// Target is a buildable unit reported by meson introspect --targets.
type Target struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Filenames      []string       `json:"filename"`
	Sources        []TargetSource `json:"target_sources"`
	DefinedIn      string         `json:"defined_in"`
	Subproject     *string        `json:"subproject"`
	BuildByDefault bool           `json:"build_by_default"`
	Installed      bool           `json:"installed"`
}

// TargetSource groups the sources of a target compiled with the same language.
type TargetSource struct {
	Language string   `json:"language"`
	Compiler []string `json:"compiler"`
	Sources  []string `json:"sources"`
}

// TargetTypeExecutable is the meson type tag of executable targets.
const TargetTypeExecutable = "executable"

// IsExecutable reports whether the target produces a runnable program.
func (t *Target) IsExecutable() bool {
	return t.Type == TargetTypeExecutable
}

// Languages returns the distinct languages of the target's sources in first-seen order.
func (t *Target) Languages() []string {
	seen := make(map[string]struct{}, len(t.Sources))
	langs := make([]string, 0, len(t.Sources))
	for _, s := range t.Sources {
		if _, ok := seen[s.Language]; ok {
			continue
		}
		seen[s.Language] = struct{}{}
		langs = append(langs, s.Language)
	}
	return langs
}

// TestDescriptor is a test or benchmark reported by meson introspect.
type TestDescriptor struct {
	Name       string            `json:"name"`
	Suites     []string          `json:"suite"`
	Cmd        []string          `json:"cmd"`
	Env        map[string]string `json:"env"`
	Workdir    *string           `json:"workdir"`
	Depends    []string          `json:"depends"`
	Timeout    int               `json:"timeout"`
	Protocol   string            `json:"protocol"`
	IsParallel bool              `json:"is_parallel"`
	Priority   int               `json:"priority"`
}

// DependsOn reports whether the test depends on the target with the given id.
func (t *TestDescriptor) DependsOn(targetID string) bool {
	for _, dep := range t.Depends {
		if dep == targetID {
			return true
		}
	}
	return false
}

// BuildOption is a single entry of meson introspect --buildoptions.
type BuildOption struct {
	Name        string `json:"name"`
	Section     string `json:"section"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Value       any    `json:"value"`
}

// ProjectInfo is the output of meson introspect --projectinfo.
type ProjectInfo struct {
	Version         string `json:"version"`
	DescriptiveName string `json:"descriptive_name"`
	SubprojectDir   string `json:"subproject_dir"`
}

// Snapshot is the introspection state of one build directory used for task synthesis.
type Snapshot struct {
	Targets    []Target
	Tests      []TestDescriptor
	Benchmarks []TestDescriptor
}
