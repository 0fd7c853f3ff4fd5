package domain

import "time"

// WorkspaceFolder is one folder open in the workspace.
// Path is absolute and doubles as the folder's identity.
type WorkspaceFolder struct {
	Name string
	Path string
}

// BuildDirectory is a configured build output location owned by a workspace folder.
type BuildDirectory struct {
	Path   string
	Folder WorkspaceFolder
}

// Reveal controls how streamed task output is shown.
type Reveal string

const (
	// RevealAlways streams task output as it is produced.
	RevealAlways Reveal = "always"
	// RevealSilent buffers output and shows it only when the task fails.
	RevealSilent Reveal = "silent"
	// RevealNever discards task output.
	RevealNever Reveal = "never"
)

// Settings holds the user configurable options consumed by mesonic.
type Settings struct {
	// MesonPath is the meson binary to invoke.
	MesonPath string
	// BuildFolder is the build directory, relative to each workspace folder unless absolute.
	BuildFolder string
	// ConfigureOptions are extra arguments passed to meson setup.
	ConfigureOptions []string
	// DebugOptions override fields of synthesized debug launch configurations.
	DebugOptions map[string]any
	// Timeout bounds each meson test and meson introspect invocation.
	// Builds, setup and run tasks are not bounded. Zero disables the bound.
	Timeout time.Duration
	// Reveal controls how streamed task output is shown.
	Reveal Reveal
}

const (
	// DefaultMesonPath is the meson binary used when none is configured.
	DefaultMesonPath = "meson"
	// DefaultBuildFolder is the build directory used when none is configured.
	DefaultBuildFolder = "builddir"
)

// DefaultSettings returns the settings used when no configuration file is present.
func DefaultSettings() Settings {
	return Settings{
		MesonPath:   DefaultMesonPath,
		BuildFolder: DefaultBuildFolder,
		Reveal:      RevealAlways,
	}
}

// Workspace is the set of folders mesonic operates on together with their settings.
type Workspace struct {
	Root     string
	Folders  []WorkspaceFolder
	Settings Settings
}

// HasFolder reports whether a folder with the given path is open in the workspace.
func (w *Workspace) HasFolder(path string) bool {
	for _, f := range w.Folders {
		if f.Path == path {
			return true
		}
	}
	return false
}
