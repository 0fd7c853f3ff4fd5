package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-build-directory state directory.
	StateDirName = ".mesonic"

	// ResultsDirName is the name of the test result store directory.
	ResultsDirName = "results"

	// ConfigFileName is the name of the per-folder configuration file.
	ConfigFileName = "mesonic.yaml"

	// WorkFileName is the name of the multi-folder workspace file.
	WorkFileName = "mesonic.work.yaml"

	// MesonInfoDirName is the directory meson writes introspection files into.
	MesonInfoDirName = "meson-info"

	// TaskType is the type tag carried by every synthesized task definition.
	TaskType = "meson"

	// LayoutOptionName is the build option controlling output layout.
	LayoutOptionName = "layout"

	// LayoutMirror mirrors the source tree inside the build directory.
	LayoutMirror = "mirror"

	// FlatOutputPrefix is the output folder used by the flat layout.
	FlatOutputPrefix = "meson-out"

	// ExitCodeBuildFailed is the exit code meson test uses when rebuilding failed.
	ExitCodeBuildFailed = 125

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// IntroFilePath returns the path meson uses for an introspection file of the given kind.
func IntroFilePath(buildDir, kind string) string {
	return filepath.Join(buildDir, MesonInfoDirName, "intro-"+kind+".json")
}

// ResultStorePath returns the result store directory for a build directory.
// It joins the build directory, .mesonic and results.
func ResultStorePath(buildDir string) string {
	return filepath.Join(buildDir, StateDirName, ResultsDirName)
}
