package tasks

import (
	"context"
	"maps"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Synthesizer builds the task list of a single build directory.
type Synthesizer struct {
	intro    ports.Introspector
	settings domain.Settings
}

// NewSynthesizer creates a Synthesizer that reads introspection through intro.
func NewSynthesizer(intro ports.Introspector, settings domain.Settings) *Synthesizer {
	if settings.MesonPath == "" {
		settings.MesonPath = domain.DefaultMesonPath
	}
	return &Synthesizer{intro: intro, settings: settings}
}

type snapshot struct {
	domain.Snapshot
	layout    string
	hasLayout bool
}

// Synthesize returns the ordered tasks of dir. No process other than meson
// introspect is started. Any introspection failure fails the whole directory.
func (s *Synthesizer) Synthesize(ctx context.Context, dir domain.BuildDirectory) ([]domain.TaskDescriptor, error) {
	snap, err := s.fetch(ctx, dir.Path)
	if err != nil {
		return nil, err
	}

	b := &builder{settings: s.settings, dir: dir}
	b.fixed()

	if len(snap.Targets) > 0 && !snap.hasLayout {
		return nil, missingLayout(dir.Path)
	}
	for i := range snap.Targets {
		target := &snap.Targets[i]
		name, err := TargetName(snap.layout, dir.Folder.Path, target)
		if err != nil {
			return nil, err
		}
		b.target(target, name)
	}
	for i := range snap.Tests {
		b.test(domain.ModeTest, &snap.Tests[i])
	}
	for i := range snap.Benchmarks {
		b.test(domain.ModeBenchmark, &snap.Benchmarks[i])
	}

	return b.tasks, nil
}

func (s *Synthesizer) fetch(ctx context.Context, buildDir string) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Targets, err = s.intro.Targets(ctx, buildDir)
		return err
	})
	g.Go(func() (err error) {
		snap.Tests, err = s.intro.Tests(ctx, buildDir)
		return err
	})
	g.Go(func() (err error) {
		snap.Benchmarks, err = s.intro.Benchmarks(ctx, buildDir)
		return err
	})
	g.Go(func() (err error) {
		snap.layout, snap.hasLayout, err = s.intro.BuildOption(ctx, buildDir, domain.LayoutOptionName)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

type builder struct {
	settings domain.Settings
	dir      domain.BuildDirectory
	tasks    []domain.TaskDescriptor
}

func (b *builder) add(def domain.TaskDefinition, name string, group domain.TaskGroup, args ...string) *domain.TaskDescriptor {
	def.Type = domain.TaskType
	b.tasks = append(b.tasks, domain.TaskDescriptor{
		Definition: def,
		Name:       name,
		Folder:     b.dir.Folder,
		Group:      group,
		Command:    b.settings.MesonPath,
		Args:       args,
		Dir:        b.dir.Path,
	})
	return &b.tasks[len(b.tasks)-1]
}

func (b *builder) fixed() {
	buildDir := b.dir.Path

	b.add(domain.TaskDefinition{Mode: domain.ModeBuild}, "Build all targets", domain.GroupBuild,
		"compile", "-C", buildDir)
	b.add(domain.TaskDefinition{Mode: domain.ModeTest}, "Run all tests", domain.GroupTest,
		"test", "-C", buildDir)
	b.add(domain.TaskDefinition{Mode: domain.ModeBenchmark}, "Run all benchmarks", domain.GroupTest,
		"test", "-C", buildDir, "--benchmark", "--verbose")

	args := append([]string{"setup", "--reconfigure"}, b.settings.ConfigureOptions...)
	reconfigure := b.add(domain.TaskDefinition{Mode: domain.ModeReconfigure}, "Reconfigure", domain.GroupRebuild,
		append(args, buildDir)...)
	// meson refuses to reconfigure from inside the build directory.
	reconfigure.Dir = b.dir.Folder.Path

	b.add(domain.TaskDefinition{Mode: domain.ModeClean}, "Clean", domain.GroupClean,
		"compile", "-C", b.dir.Path, "--clean")
}

func (b *builder) target(target *domain.Target, name string) {
	b.add(domain.TaskDefinition{Mode: domain.ModeBuild, Target: name}, "Build "+name, domain.GroupBuild,
		"compile", "-C", b.dir.Path, name)

	if !target.IsExecutable() {
		return
	}

	if len(target.Filenames) == 1 {
		b.run(domain.TaskDefinition{Mode: domain.ModeRun, Target: name}, "Run "+name, target.Filenames[0])
		return
	}
	for _, file := range target.Filenames {
		def := domain.TaskDefinition{Mode: domain.ModeRun, Target: name, Filename: file}
		b.run(def, "Run "+name+": "+file, file)
	}
}

func (b *builder) run(def domain.TaskDefinition, name, program string) {
	t := b.add(def, name, domain.GroupNone)
	t.Command = program
	t.Dir = b.dir.Folder.Path
	t.Process = true
}

func (b *builder) test(mode domain.TaskMode, test *domain.TestDescriptor) {
	args := []string{"test", "-C", b.dir.Path}
	label := "Test "
	if mode == domain.ModeBenchmark {
		args = append(args, "--benchmark", "--verbose")
		label = "Benchmark "
	}

	t := b.add(domain.TaskDefinition{Mode: mode, Target: test.Name}, label+test.Name, domain.GroupTest,
		append(args, test.Name)...)
	t.Env = maps.Clone(test.Env)
}
