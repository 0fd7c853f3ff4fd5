// Package tasks synthesizes the task descriptors of configured build directories.
package tasks

import (
	"context"
	"path"
	"path/filepath"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReadLayout returns the value of the layout build option of buildDir.
func ReadLayout(ctx context.Context, intro ports.Introspector, buildDir string) (string, error) {
	layout, ok, err := intro.BuildOption(ctx, buildDir, domain.LayoutOptionName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", missingLayout(buildDir)
	}
	return layout, nil
}

// TargetName returns the name meson accepts to select target on its command line.
//
// With the mirror layout the target is addressed by the directory it is defined in,
// relative to folderRoot, always joined with a forward slash. Any other layout
// addresses it inside the flat output folder.
func TargetName(layout, folderRoot string, target *domain.Target) (string, error) {
	if layout != domain.LayoutMirror {
		return path.Join(domain.FlatOutputPrefix, target.Name), nil
	}

	rel, err := filepath.Rel(folderRoot, filepath.Dir(target.DefinedIn))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to relativize target directory"), "target", target.Name)
	}
	if rel == "." {
		return target.Name, nil
	}
	return path.Join(filepath.ToSlash(rel), target.Name), nil
}

// ResolveTargetName reads the layout of buildDir and resolves the name of target.
func ResolveTargetName(
	ctx context.Context,
	intro ports.Introspector,
	buildDir, folderRoot string,
	target *domain.Target,
) (string, error) {
	layout, err := ReadLayout(ctx, intro, buildDir)
	if err != nil {
		return "", err
	}
	return TargetName(layout, folderRoot, target)
}

func missingLayout(buildDir string) error {
	err := zerr.Wrap(domain.ErrLayoutOptionMissing, domain.ErrConfiguration.Error())
	return zerr.With(err, "build_dir", buildDir)
}
