// Package config provides the workspace configuration loader for mesonic.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override configured settings.
const (
	EnvMesonPath   = "MESONIC_MESON_PATH"
	EnvBuildFolder = "MESONIC_BUILD_FOLDER"
)

// mesonBuildFile marks a directory as a meson project.
const mesonBuildFile = "meson.build"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
	// Getenv looks up environment overrides. It defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Mode represents the configuration mode of mesonic.
type Mode string

const (
	// ModeWorkspace indicates a mesonic.work.yaml listing several folders.
	ModeWorkspace Mode = "workspace"
	// ModeStandalone indicates a single folder with a mesonic.yaml.
	ModeStandalone Mode = "standalone"
	// ModeImplicit indicates no configuration file; cwd is the only folder.
	ModeImplicit Mode = "implicit"
)

// Load discovers the workspace containing cwd.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	configPath, mode := findConfiguration(cwd)

	var ws *domain.Workspace
	switch mode {
	case ModeWorkspace:
		ws, err = l.loadWorkfile(configPath)
	case ModeStandalone:
		ws, err = l.loadConfigfile(configPath)
	default:
		ws = &domain.Workspace{
			Root:     cwd,
			Folders:  []domain.WorkspaceFolder{newFolder(cwd)},
			Settings: domain.DefaultSettings(),
		}
	}
	if err != nil {
		return nil, err
	}

	l.applyEnvironment(&ws.Settings)
	return ws, nil
}

func findConfiguration(cwd string) (string, Mode) {
	currentDir := cwd
	var standaloneCandidate string

	for {
		workfilePath := filepath.Join(currentDir, domain.WorkFileName)
		if _, err := os.Stat(workfilePath); err == nil {
			return workfilePath, ModeWorkspace
		}

		if standaloneCandidate == "" {
			configPath := filepath.Join(currentDir, domain.ConfigFileName)
			if _, err := os.Stat(configPath); err == nil {
				standaloneCandidate = configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	if standaloneCandidate != "" {
		return standaloneCandidate, ModeStandalone
	}
	return "", ModeImplicit
}

func (l *Loader) loadConfigfile(configPath string) (*domain.Workspace, error) {
	var configfile Configfile
	if err := readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, err
	}

	settings, err := resolveSettings(configfile.Settings)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	root := resolveRoot(configPath, configfile.Root)
	return &domain.Workspace{
		Root:     root,
		Folders:  []domain.WorkspaceFolder{newFolder(root)},
		Settings: settings,
	}, nil
}

func (l *Loader) loadWorkfile(configPath string) (*domain.Workspace, error) {
	var workfile Workfile
	if err := readAndUnmarshalYAML(configPath, &workfile); err != nil {
		return nil, err
	}

	settings, err := resolveSettings(workfile.Settings)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	root := resolveRoot(configPath, workfile.Root)
	paths, err := resolveFolderPaths(root, workfile.Folders)
	if err != nil {
		return nil, err
	}

	folders := make([]domain.WorkspaceFolder, 0, len(paths))
	for _, path := range paths {
		ok, err := l.isMesonProject(root, path)
		if err != nil {
			return nil, err
		}
		if ok {
			folders = append(folders, newFolder(path))
		}
	}

	if len(folders) == 0 {
		return nil, zerr.With(domain.ErrNoFolders, "file", configPath)
	}

	return &domain.Workspace{
		Root:     root,
		Folders:  folders,
		Settings: settings,
	}, nil
}

func resolveFolderPaths(root string, patterns []string) ([]string, error) {
	// Several globs may match the same directory.
	paths := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, zerr.Wrap(err, "glob pattern failed: "+pattern)
		}
		for _, match := range matches {
			paths[filepath.Clean(match)] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	slices.Sort(sorted)

	return sorted, nil
}

func (l *Loader) isMesonProject(root, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if !info.IsDir() {
		return false, nil
	}

	if _, err := os.Stat(filepath.Join(path, mesonBuildFile)); os.IsNotExist(err) {
		relPath, _ := filepath.Rel(root, path)
		l.Logger.Warn(fmt.Sprintf("%s missing in folder %s, skipping", mesonBuildFile, relPath))
		return false, nil
	}
	return true, nil
}

func resolveSettings(dto *SettingsDTO) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if dto == nil {
		return settings, nil
	}

	if dto.MesonPath != "" {
		settings.MesonPath = dto.MesonPath
	}
	if dto.BuildFolder != "" {
		settings.BuildFolder = dto.BuildFolder
	}
	settings.ConfigureOptions = dto.ConfigureOptions
	settings.DebugOptions = dto.DebugOptions

	if dto.Timeout != "" {
		timeout, err := time.ParseDuration(dto.Timeout)
		if err == nil && timeout < 0 {
			err = errors.New("timeout must not be negative")
		}
		if err != nil {
			err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return settings, zerr.With(err, "timeout", dto.Timeout)
		}
		settings.Timeout = timeout
	}

	switch reveal := domain.Reveal(dto.Reveal); reveal {
	case "":
	case domain.RevealAlways, domain.RevealSilent, domain.RevealNever:
		settings.Reveal = reveal
	default:
		return settings, zerr.With(domain.ErrInvalidReveal, "reveal", dto.Reveal)
	}

	return settings, nil
}

func (l *Loader) applyEnvironment(settings *domain.Settings) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvMesonPath); v != "" {
		settings.MesonPath = v
	}
	if v := getenv(EnvBuildFolder); v != "" {
		settings.BuildFolder = v
	}
}

func newFolder(path string) domain.WorkspaceFolder {
	return domain.WorkspaceFolder{Name: filepath.Base(path), Path: path}
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
