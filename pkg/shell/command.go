package shell

// Handler executes a command with its positional arguments (command name
// excluded) and reports the outcome. Handlers convert their own failures
// into Result{OK: false}; they never return a Go error to the loop.
type Handler func(args []string) Result

// Completer produces candidate completions for a partially typed argument.
type Completer func(prefix string) []string

// Command is one registry entry. Identity is Name; entries are immutable
// after registration. Commands without a path argument leave Complete nil.
type Command struct {
	Name     string
	Help     string
	Run      Handler
	Complete Completer
}
