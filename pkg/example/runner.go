// pkg/example/runner.go
package example

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// Step is a single external process run inside an example directory
type Step struct {
	Dir  string
	Args []string
}

func (s Step) String() string {
	return shellquote.Join(s.Args...)
}

// ParseStep tokenizes command with shell quoting rules
func ParseStep(dir, command string) (Step, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return Step{}, fmt.Errorf("parsing %q: %w", command, err)
	}
	if len(args) == 0 {
		return Step{}, fmt.Errorf("parsing %q: empty command", command)
	}
	return Step{Dir: dir, Args: args}, nil
}

// Runner executes steps
type Runner interface {
	Run(ctx context.Context, step Step) error
}

// ExecRunner runs steps as subprocesses, waiting for each to finish
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, step Step) error {
	args := expandGlobs(step.Dir, step.Args)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = step.Dir
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return &core.Error{Op: "run " + step.String(), Path: step.Dir, Err: fmt.Errorf("%w: %w", core.ErrStepFailed, err)}
	}
	return nil
}

// DryRunner prints steps instead of running them
type DryRunner struct {
	Out io.Writer
}

// Run implements Runner
func (r *DryRunner) Run(ctx context.Context, step Step) error {
	fmt.Fprintf(r.Out, "   %s\n", step)
	return nil
}

// expandGlobs expands pattern arguments relative to dir the way a shell
// would. Patterns without matches are passed through unchanged.
func expandGlobs(dir string, args []string) []string {
	out := make([]string, 0, len(args))
	out = append(out, args[0])
	for _, arg := range args[1:] {
		if !strings.ContainsAny(arg, "*?[") {
			out = append(out, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(dir, arg))
		if err != nil || len(matches) == 0 {
			out = append(out, arg)
			continue
		}
		for _, m := range matches {
			if rel, err := filepath.Rel(dir, m); err == nil {
				m = rel
			}
			out = append(out, m)
		}
	}
	return out
}
