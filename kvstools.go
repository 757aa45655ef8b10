// kvstools.go
package kvstools

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/phuslu/log"

	"github.com/kvs-toolkit/kvstools/pkg/core"
	"github.com/kvs-toolkit/kvstools/pkg/example"
	"github.com/kvs-toolkit/kvstools/pkg/header"
	"github.com/kvs-toolkit/kvstools/pkg/platform"
)

// Re-export types for convenience
type (
	Config       = core.Config
	Tools        = core.Tools
	Features     = example.Features
	Report       = example.Report
	HeaderResult = header.Result
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// GenerateHeaders writes the forwarding headers of module into dest and
// the umbrella header kvs<module>, both below cfg.SourceDir.
func GenerateHeaders(cfg *Config, module, dest string, logger *log.Logger) (*HeaderResult, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	return header.NewGenerator(cfg.SourceDir, logger).Generate(module, dest)
}

// Plan is the outcome of feature and directory discovery
type Plan struct {
	Platform *platform.Platform
	Features Features
	Dirs     []string
}

// Discover loads the enabled features and finds the example directories to build
func Discover(cfg *Config, logger *log.Logger) (*Plan, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if logger == nil {
		logger = &log.DefaultLogger
	}

	plat := platform.Detect(cfg.OS)
	logger.Debug().Str("platform", plat.String()).Msg("platform detected")

	features, err := example.LoadFeatures(cfg.ConfFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("features", features).Msg("features enabled")

	dirs, err := example.Discover(cfg.ExampleDir, cfg.SourceExt, features)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("dirs", len(dirs)).Msg("example directories found")

	return &Plan{
		Platform: plat,
		Features: features,
		Dirs:     dirs,
	}, nil
}

// BuildOptions configures BuildExamples
type BuildOptions struct {
	Action string         // build (default), debug, clean, distclean, rebuild
	DryRun bool           // print steps instead of running them
	Runner example.Runner // overrides the subprocess runner
	Out    io.Writer
	Logger *log.Logger
}

// BuildExamples runs the requested action in every discovered example
// directory. An unknown action fails before anything is read or run.
// Step failures are collected in the report and never returned as error.
func BuildExamples(ctx context.Context, cfg *Config, opts *BuildOptions) (*Report, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if opts == nil {
		opts = &BuildOptions{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = &log.DefaultLogger
	}

	cmds, err := example.ResolveAction(opts.Action, platform.IsWindows(goos(cfg)))
	if err != nil {
		return nil, err
	}

	plan, err := Discover(cfg, opts.Logger)
	if err != nil {
		return nil, err
	}

	if missing := platform.Missing(plan.Platform, cfg.Tools.KVSMake, qmakeIfNeeded(cfg, plan.Dirs)); len(missing) > 0 && !opts.DryRun {
		opts.Logger.Warn().Strs("tools", missing).Msg("build tools not found on PATH")
	}

	runner := opts.Runner
	if runner == nil && opts.DryRun {
		runner = &example.DryRunner{Out: opts.Out}
	}

	b := example.NewBuilder(cmds, cfg.Tools, runner, opts.Out, opts.Logger)
	report, err := b.Run(ctx, plan.Dirs)
	if err != nil {
		return report, fmt.Errorf("building examples: %w", err)
	}

	if n := report.Failed(); n > 0 {
		opts.Logger.Warn().Int("failed", n).Int("dirs", len(report.Dirs)).Msg("some build steps failed")
	} else {
		opts.Logger.Info().Str("action", string(cmds.Action)).Int("dirs", len(report.Dirs)).Msg("examples processed")
	}
	return report, nil
}

func qmakeIfNeeded(cfg *Config, dirs []string) string {
	for _, d := range dirs {
		if example.IsQt(d) {
			return cfg.Tools.QMake
		}
	}
	return ""
}

func goos(cfg *Config) string {
	if cfg.OS != "" {
		return cfg.OS
	}
	return runtime.GOOS
}
