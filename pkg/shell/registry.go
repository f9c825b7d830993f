package shell

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goterminal/goterm/pkg/logger"
)

// Registry is the fixed mapping from command name to handler, completer and
// help text. It is populated once at startup and read-only afterwards.
type Registry struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command. Registering the same name twice is a programming
// error and panics; the command set is static.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[cmd.Name]; exists {
		panic(fmt.Sprintf("shell: duplicate command %q", cmd.Name))
	}
	r.commands[cmd.Name] = cmd
}

func (r *Registry) Get(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Execute runs the named command. A handler that panics is caught and
// reported as an execution error; the loop must survive handler failures
// indefinitely.
func (r *Registry) Execute(name string, args []string) (result Result) {
	cmd, ok := r.Get(name)
	if !ok {
		return Fail("%s: command not found", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.ErrorCF("shell", "Command panicked",
				map[string]any{"command": name, "panic": fmt.Sprint(rec)})
			result = Fail("%s: error: %v", name, rec)
		}
	}()

	start := time.Now()
	result = cmd.Run(args)
	duration := time.Since(start)

	if result.OK {
		logger.DebugCF("shell", "Command completed",
			map[string]any{
				"command":     name,
				"duration_ms": duration.Milliseconds(),
				"output_len":  len(result.Output),
			})
	} else {
		logger.DebugCF("shell", "Command failed",
			map[string]any{
				"command":     name,
				"duration_ms": duration.Milliseconds(),
				"output":      result.Output,
			})
	}

	return result
}

// sortedNames returns command names in sorted order for deterministic
// listings.
func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered command names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Summaries returns "name - help" lines for every command, sorted by name.
func (r *Registry) Summaries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.sortedNames()
	summaries := make([]string, 0, len(sorted))
	for _, name := range sorted {
		summaries = append(summaries, fmt.Sprintf("%-8s %s", name, r.commands[name].Help))
	}
	return summaries
}
