// pkg/example/action.go
package example

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// Action selects the command templates run in every example directory
type Action string

const (
	ActionBuild     Action = "build"
	ActionDebug     Action = "debug"
	ActionClean     Action = "clean"
	ActionDistclean Action = "distclean"
	ActionRebuild   Action = "rebuild"
)

// Actions lists the recognized actions in usage order
var Actions = []Action{ActionBuild, ActionDebug, ActionClean, ActionDistclean, ActionRebuild}

// Template is a separator-terminated command list such as "make clean; make;"
type Template struct {
	Text      string
	Separator string
}

func (t Template) String() string {
	return t.Text
}

// Commands splits the template into its individual commands
func (t Template) Commands() []string {
	var cmds []string
	for _, c := range strings.Split(t.Text, t.Separator) {
		if c = strings.TrimSpace(c); c != "" {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// Commands is the pair of templates resolved for an action
type Commands struct {
	Action  Action
	Generic Template
	Qt      Template
}

var templates = map[Action][2]string{
	ActionBuild:     {"make;", "kvsmake;"},
	ActionDebug:     {"make debug;", "kvsmake DEBUG=1;"},
	ActionClean:     {"make clean;", "kvsmake clean;"},
	ActionDistclean: {"make distclean; rm *.pro;", "kvsmake distclean;"},
	ActionRebuild:   {"make clean; make;", "kvsmake rebuild;"},
}

var makeWord = regexp.MustCompile(`\bmake\b`)

// ResolveAction returns the templates for action. An empty action means
// build. On Windows make becomes nmake and ";" becomes "&".
func ResolveAction(action string, windows bool) (*Commands, error) {
	if action == "" {
		action = string(ActionBuild)
	}
	pair, ok := templates[Action(action)]
	if !ok {
		return nil, &core.Error{Op: "resolve action", Err: fmt.Errorf("%w: %q", core.ErrUnknownAction, action)}
	}

	sep := ";"
	if windows {
		sep = "&"
		for i := range pair {
			pair[i] = strings.ReplaceAll(makeWord.ReplaceAllString(pair[i], "nmake"), ";", sep)
		}
	}

	return &Commands{
		Action:  Action(action),
		Generic: Template{Text: pair[0], Separator: sep},
		Qt:      Template{Text: pair[1], Separator: sep},
	}, nil
}

// Usage returns the one-line usage of the example builder
func Usage(program string) string {
	names := make([]string, len(Actions))
	for i, a := range Actions {
		names[i] = string(a)
	}
	return fmt.Sprintf("usage: %s [%s]", program, strings.Join(names, "|"))
}
