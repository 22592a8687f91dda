// Package commands implements the textual command language that drives the
// layout tree: resize, split, layout, floating, focus and scratchpad.
package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"mvdan.cc/sh/v3/shell"

	"github.com/xonecas/tilo/internal/config"
	"github.com/xonecas/tilo/internal/tree"
)

// Status classifies a command result.
type Status int

const (
	// Success means the command ran and mutated (or inspected) the tree.
	Success Status = iota
	// InvalidUsage means the command line itself was malformed.
	InvalidUsage
	// Failure means a well-formed command could not be applied.
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case InvalidUsage:
		return "invalid usage"
	default:
		return "failure"
	}
}

// Results is the outcome of a single command.
type Results struct {
	Status  Status
	Message string
}

func ok() Results { return Results{Status: Success} }

func invalidf(format string, a ...any) Results {
	return Results{Status: InvalidUsage, Message: fmt.Sprintf(format, a...)}
}

func failf(format string, a ...any) Results {
	return Results{Status: Failure, Message: fmt.Sprintf(format, a...)}
}

// Context carries everything a handler may touch. The target container is
// passed here explicitly; handlers never consult shared process state.
type Context struct {
	Root    *tree.Root
	Config  *config.Config
	Focused *tree.Container
}

// Workspace returns the visible workspace.
func (ctx *Context) Workspace() *tree.Workspace {
	return ctx.Root.CurrentWorkspace()
}

// limits adapts the configured floating bounds for the tree package.
func (ctx *Context) limits() tree.FloatingLimits {
	f := ctx.Config.Floating
	return tree.FloatingLimits{
		MinWidth:  f.MinimumWidth,
		MaxWidth:  f.MaximumWidth,
		MinHeight: f.MinimumHeight,
		MaxHeight: f.MaximumHeight,
	}
}

// handler runs one already-tokenized command.
type handler func(ctx *Context, args []string) Results

// handlers maps the case-insensitive first token to its implementation.
var handlers = map[string]handler{
	"resize":     cmdResize,
	"split":      cmdSplit,
	"layout":     cmdLayout,
	"floating":   cmdFloating,
	"focus":      cmdFocus,
	"move":       cmdMove,
	"scratchpad": cmdScratchpad,
	"workspace":  cmdWorkspace,
}

// Execute runs a command line. Multiple commands may be separated with
// ';'; execution stops at the first non-success result, which is returned
// along with the results of the commands that ran before it.
func Execute(ctx *Context, line string) []Results {
	var results []Results
	for _, part := range strings.Split(line, ";") {
		res := runOne(ctx, part)
		results = append(results, res)
		if res.Status != Success {
			break
		}
	}
	return results
}

func runOne(ctx *Context, line string) Results {
	fields, err := shell.Fields(line, nil)
	if err != nil {
		return invalidf("cannot tokenize command: %v", err)
	}
	if len(fields) == 0 {
		return invalidf("empty command")
	}
	name := strings.ToLower(fields[0])
	h, found := handlers[name]
	if !found {
		return invalidf("unknown command %q", name)
	}
	res := h(ctx, fields[1:])
	log.Debug().
		Str("command", strings.TrimSpace(line)).
		Stringer("status", res.Status).
		Str("message", res.Message).
		Msg("command executed")
	return res
}

// checkArgAtLeast mirrors the dispatcher's minimum-arity guard.
func checkArgAtLeast(name string, args []string, n int) (Results, bool) {
	if len(args) < n {
		return invalidf("invalid %s command (expected at least %d argument%s, got %d)",
			name, n, plural(n), len(args)), false
	}
	return Results{}, true
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
