package shell

import (
	"strings"

	"github.com/goterminal/goterm/pkg/logger"
)

// Dispatcher drives the per-line state machine:
//
//	empty line      -> no-op, no history, no output
//	non-empty line  -> recorded in history before execution
//	"!" prefix      -> remainder delegated to the system shell verbatim
//	tokenize        -> quoting error reported, dispatch aborted for the line
//	"shell" builtin -> remainder delegated to the system shell verbatim
//	registry hit    -> builtin handler
//	registry miss   -> bare external program, no shell interpretation
//
// The two delegation paths deliberately keep different quoting semantics:
// the shell path supports pipes and globs the tokenizer does not.
type Dispatcher struct {
	registry *Registry
	session  *Session
}

func NewDispatcher(registry *Registry, session *Session) *Dispatcher {
	return &Dispatcher{registry: registry, session: session}
}

func (d *Dispatcher) Registry() *Registry { return d.registry }

func (d *Dispatcher) Session() *Session { return d.session }

// Dispatch processes one submitted line. The returned bool requests loop
// termination; it is true only for the exit builtin.
func (d *Dispatcher) Dispatch(line string) (Result, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{OK: true}, false
	}

	d.session.Append(trimmed)

	if rest, found := strings.CutPrefix(trimmed, "!"); found {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return Fail("usage: !<command>"), false
		}
		return RunShell(rest), false
	}

	tokens, err := Tokenize(trimmed)
	if err != nil {
		return Fail("%v", err), false
	}
	if len(tokens) == 0 {
		return Result{OK: true}, false
	}

	name, args := tokens[0], tokens[1:]

	if name == "shell" {
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "shell"))
		if rest == "" {
			return Fail("usage: shell <command>"), false
		}
		return RunShell(rest), false
	}

	if d.registry.Has(name) {
		return d.registry.Execute(name, args), name == "exit"
	}

	logger.DebugCF("shell", "Delegating to external program",
		map[string]any{"program": name})
	return RunProgram(name, args), false
}
