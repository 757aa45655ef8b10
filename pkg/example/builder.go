// pkg/example/builder.go
package example

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// QtMarker identifies example directories built as Qt projects
const QtMarker = "SupportQt"

// Builder runs the resolved action in each example directory
type Builder struct {
	Commands *Commands
	Tools    core.Tools
	Runner   Runner
	Out      io.Writer
	Logger   *log.Logger
}

// DirReport records what happened in one directory
type DirReport struct {
	Dir      string
	Steps    []Step
	Failures []error
}

// Report summarizes a run. Failures never stop a run, they are only collected here.
type Report struct {
	Dirs []DirReport
}

// Failed returns the number of failed steps
func (r *Report) Failed() int {
	n := 0
	for _, d := range r.Dirs {
		n += len(d.Failures)
	}
	return n
}

// NewBuilder creates a builder. A nil runner executes steps as subprocesses.
func NewBuilder(cmds *Commands, tools core.Tools, runner Runner, out io.Writer, logger *log.Logger) *Builder {
	if out == nil {
		out = os.Stdout
	}
	if runner == nil {
		runner = &ExecRunner{Stdout: out}
	}
	if logger == nil {
		logger = &log.DefaultLogger
	}
	if tools.KVSMake == "" {
		tools.KVSMake = "kvsmake"
	}
	if tools.QMake == "" {
		tools.QMake = "qmake"
	}
	return &Builder{
		Commands: cmds,
		Tools:    tools,
		Runner:   runner,
		Out:      out,
		Logger:   logger,
	}
}

// IsQt reports whether dir holds a Qt example
func IsQt(dir string) bool {
	return strings.Contains(dir, QtMarker)
}

// Steps returns the steps run in dir: project generation followed by the
// commands of the template matching the directory kind.
func (b *Builder) Steps(dir string) ([]Step, error) {
	var steps []Step
	tmpl := b.Commands.Generic
	if IsQt(dir) {
		steps = append(steps,
			Step{Dir: dir, Args: []string{b.Tools.KVSMake, "-Q", filepath.Base(dir)}},
			Step{Dir: dir, Args: []string{b.Tools.QMake}},
		)
		tmpl = b.Commands.Qt
	} else {
		steps = append(steps, Step{Dir: dir, Args: []string{b.Tools.KVSMake, "-G"}})
	}

	for _, c := range tmpl.Commands() {
		s, err := ParseStep(dir, c)
		if err != nil {
			return nil, err
		}
		if s.Args[0] == "kvsmake" {
			s.Args[0] = b.Tools.KVSMake
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Run builds every directory in order. Every step is attempted even when
// an earlier one failed; only context cancellation ends the run early.
func (b *Builder) Run(ctx context.Context, dirs []string) (*Report, error) {
	report := &Report{}
	for _, dir := range dirs {
		fmt.Fprintf(b.Out, ">> %s\n", dir)

		dr := DirReport{Dir: dir}
		steps, err := b.Steps(dir)
		if err != nil {
			b.Logger.Warn().Err(err).Str("dir", dir).Msg("cannot prepare build steps")
			dr.Failures = append(dr.Failures, err)
		}

		for _, step := range steps {
			if err := ctx.Err(); err != nil {
				report.Dirs = append(report.Dirs, dr)
				return report, err
			}
			b.Logger.Debug().Str("dir", dir).Str("step", step.String()).Msg("running step")
			dr.Steps = append(dr.Steps, step)
			if err := b.Runner.Run(ctx, step); err != nil {
				b.Logger.Warn().Err(err).Str("dir", dir).Msg("build step failed")
				dr.Failures = append(dr.Failures, err)
			}
		}
		report.Dirs = append(report.Dirs, dr)
	}
	return report, nil
}
