// Package meson reads project state from a configured build directory via meson introspect.
package meson

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tidwall/gjson"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Introspection kinds as named by meson's --<kind> flags and intro-<kind>.json files.
const (
	KindTargets      = "targets"
	KindTests        = "tests"
	KindBenchmarks   = "benchmarks"
	KindBuildOptions = "buildoptions"
	KindProjectInfo  = "projectinfo"
)

// DefaultCacheSize bounds the number of cached introspection documents.
const DefaultCacheSize = 128

var _ ports.Introspector = (*Introspector)(nil)

type cacheKey struct {
	tool     string
	buildDir string
	kind     string
	modTime  int64
	size     int64
}

// Introspector implements ports.Introspector on top of a ProcessRunner.
type Introspector struct {
	runner    ports.ProcessRunner
	mesonPath string
	timeout   time.Duration
	cache     *lru.Cache[cacheKey, []byte]
}

// NewFactory returns a factory whose introspectors share one document cache.
func NewFactory(runner ports.ProcessRunner, size int) (ports.IntrospectorFactory, error) {
	cache, err := lru.New[cacheKey, []byte](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create introspection cache")
	}
	return func(settings domain.Settings) ports.Introspector {
		return &Introspector{
			runner:    runner,
			mesonPath: settings.MesonPath,
			timeout:   settings.Timeout,
			cache:     cache,
		}
	}, nil
}

// NewIntrospector creates an uncached Introspector invoking mesonPath.
func NewIntrospector(runner ports.ProcessRunner, mesonPath string) *Introspector {
	return &Introspector{runner: runner, mesonPath: mesonPath}
}

// Targets returns the buildable targets of the build directory.
func (i *Introspector) Targets(ctx context.Context, buildDir string) ([]domain.Target, error) {
	var targets []domain.Target
	if err := i.decode(ctx, buildDir, KindTargets, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// Tests returns the tests of the build directory.
func (i *Introspector) Tests(ctx context.Context, buildDir string) ([]domain.TestDescriptor, error) {
	var tests []domain.TestDescriptor
	if err := i.decode(ctx, buildDir, KindTests, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// Benchmarks returns the benchmarks of the build directory.
func (i *Introspector) Benchmarks(ctx context.Context, buildDir string) ([]domain.TestDescriptor, error) {
	var benchmarks []domain.TestDescriptor
	if err := i.decode(ctx, buildDir, KindBenchmarks, &benchmarks); err != nil {
		return nil, err
	}
	return benchmarks, nil
}

// BuildOptions returns every build option of the build directory.
func (i *Introspector) BuildOptions(ctx context.Context, buildDir string) ([]domain.BuildOption, error) {
	var options []domain.BuildOption
	if err := i.decode(ctx, buildDir, KindBuildOptions, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// BuildOption returns the value of a single build option.
func (i *Introspector) BuildOption(ctx context.Context, buildDir, name string) (string, bool, error) {
	raw, err := i.document(ctx, buildDir, KindBuildOptions)
	if err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	gjson.ParseBytes(raw).ForEach(func(_, option gjson.Result) bool {
		if option.Get("name").String() != name {
			return true
		}
		v := option.Get("value")
		value, found = v.String(), v.Exists()
		return false
	})
	return value, found, nil
}

// ProjectInfo returns the project metadata of the build directory.
func (i *Introspector) ProjectInfo(ctx context.Context, buildDir string) (*domain.ProjectInfo, error) {
	var info domain.ProjectInfo
	if err := i.decode(ctx, buildDir, KindProjectInfo, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (i *Introspector) decode(ctx context.Context, buildDir, kind string, v any) error {
	raw, err := i.document(ctx, buildDir, kind)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return parseError(err, buildDir, kind)
	}
	return nil
}

// document returns the raw JSON for kind. Cached documents are keyed by the
// modification stamp of the matching intro file, so a reconfigure invalidates them.
func (i *Introspector) document(ctx context.Context, buildDir, kind string) ([]byte, error) {
	key, cacheable := i.cacheKey(buildDir, kind)
	if cacheable {
		if raw, ok := i.cache.Get(key); ok {
			return raw, nil
		}
	}

	res, err := i.runner.Run(ctx, ports.Command{
		Name:    i.mesonPath,
		Args:    []string{"introspect", "--" + kind, buildDir},
		Timeout: i.timeout,
	})
	if err != nil {
		err = zerr.Wrap(err, "meson introspect failed")
		err = zerr.With(err, "kind", kind)
		return nil, zerr.With(err, "build_dir", buildDir)
	}

	if !gjson.ValidBytes(res.Stdout) {
		return nil, parseError(errors.New("invalid JSON document"), buildDir, kind)
	}

	if cacheable {
		i.cache.Add(key, res.Stdout)
	}
	return res.Stdout, nil
}

func (i *Introspector) cacheKey(buildDir, kind string) (cacheKey, bool) {
	if i.cache == nil {
		return cacheKey{}, false
	}
	info, err := os.Stat(domain.IntroFilePath(buildDir, kind))
	if err != nil {
		return cacheKey{}, false
	}
	return cacheKey{
		tool:     i.mesonPath,
		buildDir: buildDir,
		kind:     kind,
		modTime:  info.ModTime().UnixNano(),
		size:     info.Size(),
	}, true
}

func parseError(cause error, buildDir, kind string) error {
	err := zerr.Wrap(cause, domain.ErrIntrospectionParseFailed.Error())
	err = zerr.With(err, "kind", kind)
	return zerr.With(err, "build_dir", buildDir)
}
