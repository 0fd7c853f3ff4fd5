package domain

import "go.trai.ch/zerr"

var (
	// ErrProcessInvocationFailed is returned when an external command fails or cannot be started.
	ErrProcessInvocationFailed = zerr.New("process invocation failed")

	// ErrIntrospectionParseFailed is returned when introspection output is missing or malformed.
	ErrIntrospectionParseFailed = zerr.New("failed to parse introspection output")

	// ErrConfiguration is returned when a required build option is missing or invalid.
	ErrConfiguration = zerr.New("invalid build configuration")

	// ErrLayoutOptionMissing is returned when the build directory does not report a layout option.
	ErrLayoutOptionMissing = zerr.New("build option 'layout' not found")

	// ErrTaskNotFound is returned when no task matches the requested mode and target.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTestNotFound is returned when a selected test is not present in introspection.
	ErrTestNotFound = zerr.New("test not found")

	// ErrBuildFailed is returned when a build step that precedes a test or debug session fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrTaskExecutionFailed is returned when a driven task exits unsuccessfully.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrTestsFailed is returned when at least one test of a run did not pass.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrNoFolders is returned when the workspace contains no folders.
	ErrNoFolders = zerr.New("workspace has no folders")

	// ErrUnknownFolder is returned when a requested folder is not part of the workspace.
	ErrUnknownFolder = zerr.New("folder is not part of the workspace")

	// ErrNoBuildDirectory is returned when an operation needs a configured build directory.
	ErrNoBuildDirectory = zerr.New("build directory not configured")

	// ErrEmptyCommand is returned when a test descriptor has no command to launch.
	ErrEmptyCommand = zerr.New("test command is empty")

	// ErrInvalidTaskMode is returned when a task mode string is not recognized.
	ErrInvalidTaskMode = zerr.New("invalid task mode, expected one of build, run, test, benchmark, clean, reconfigure")

	// ErrInvalidReveal is returned when the reveal setting is not recognized.
	ErrInvalidReveal = zerr.New("invalid reveal setting, expected 'always', 'silent' or 'never'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the result store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create result store directory")

	// ErrStoreReadFailed is returned when a stored result cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read test result")

	// ErrStoreUnmarshalFailed is returned when a stored result cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal test result")

	// ErrStoreMarshalFailed is returned when a result cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal test result")

	// ErrStoreWriteFailed is returned when a result cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write test result")
)
