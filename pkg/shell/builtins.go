package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// RegisterBuiltins populates the registry with every native command.
// historyShow caps how many entries the history builtin displays; storage
// is unbounded.
func RegisterBuiltins(reg *Registry, sess *Session, historyShow int) {
	reg.Register(&Command{
		Name:     "ls",
		Help:     "ls [path] - list files and directories (default: current directory)",
		Run:      lsCommand,
		Complete: PathMatches,
	})
	reg.Register(&Command{
		Name:     "cd",
		Help:     "cd [path] - change current directory (default: home)",
		Run:      cdCommand,
		Complete: PathMatches,
	})
	reg.Register(&Command{
		Name: "pwd",
		Help: "pwd - print current working directory",
		Run: func(args []string) Result {
			return Ok("%s", sess.Cwd())
		},
	})
	reg.Register(&Command{
		Name:     "mkdir",
		Help:     "mkdir [-p] <dirname> - create a directory (-p creates parents)",
		Run:      mkdirCommand,
		Complete: PathMatches,
	})
	reg.Register(&Command{
		Name:     "rm",
		Help:     "rm [-r] <path> - remove a file (-r removes directories recursively)",
		Run:      rmCommand,
		Complete: PathMatches,
	})
	reg.Register(&Command{
		Name:     "cat",
		Help:     "cat <file> - display file contents",
		Run:      catCommand,
		Complete: PathMatches,
	})
	reg.Register(&Command{
		Name:     "touch",
		Help:     "touch <file> - create an empty file or update its mtime",
		Run:      touchCommand,
		Complete: PathMatches,
	})
	reg.Register(&Command{
		Name: "history",
		Help: "history - show the command history for this session",
		Run: func(args []string) Result {
			return historyCommand(sess, historyShow)
		},
	})
	reg.Register(&Command{
		Name: "shell",
		Help: "shell <command> - run a command through the system shell",
		Run: func(args []string) Result {
			// The dispatcher intercepts shell lines before registry lookup
			// so the raw text reaches the system shell untokenized. This
			// handler only answers consumers that bypass the dispatcher.
			if len(args) == 0 {
				return Fail("usage: shell <command>")
			}
			return RunShell(strings.Join(args, " "))
		},
	})
	reg.Register(&Command{
		Name: "help",
		Help: "help - list available commands",
		Run: func(args []string) Result {
			return Ok("%s", strings.Join(reg.Summaries(), "\n"))
		},
	})
	reg.Register(&Command{
		Name: "exit",
		Help: "exit - leave the terminal",
		Run: func(args []string) Result {
			return Ok("Bye.")
		},
	})
}

func lsCommand(args []string) Result {
	path := "."
	if len(args) > 0 {
		path = ExpandPath(args[0])
	}

	info, err := os.Stat(path)
	if err != nil {
		return failPath("ls", path, err)
	}
	if !info.IsDir() {
		// A plain file lists as just its name.
		return Ok("%s", filepath.Base(path))
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return failPath("ls", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return Ok("%s", strings.Join(names, "\n"))
}

func cdCommand(args []string) Result {
	var target string
	if len(args) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return Fail("cd: error: %v", err)
		}
		target = home
	} else {
		target = ExpandPath(args[0])
	}

	if err := os.Chdir(target); err != nil {
		return failPath("cd", target, err)
	}
	return Ok("")
}

func mkdirCommand(args []string) Result {
	if len(args) == 0 {
		return Fail("usage: mkdir [-p] <dirname>")
	}

	parents := false
	if args[0] == "-p" {
		parents = true
		args = args[1:]
		if len(args) == 0 {
			return Fail("mkdir: missing directory name")
		}
	}

	path := ExpandPath(args[0])
	if parents {
		// MkdirAll treats an existing directory as success.
		if err := os.MkdirAll(path, 0o755); err != nil {
			return Fail("mkdir: error: %v", err)
		}
		return Ok("")
	}

	if err := os.Mkdir(path, 0o755); err != nil {
		if Classify(err) == KindExists {
			return Fail("mkdir: cannot create directory: File exists")
		}
		return Fail("mkdir: error: %v", err)
	}
	return Ok("")
}

func rmCommand(args []string) Result {
	if len(args) == 0 {
		return Fail("usage: rm [-r] <path>")
	}

	recursive := false
	if args[0] == "-r" {
		recursive = true
		args = args[1:]
		if len(args) == 0 {
			return Fail("rm: missing path")
		}
	}

	target := ExpandPath(args[0])
	info, err := os.Stat(target)
	if err != nil {
		return failPath("rm", target, err)
	}

	if info.IsDir() {
		if !recursive {
			return Fail("rm: cannot remove directory (use -r to remove directories)")
		}
		if err := os.RemoveAll(target); err != nil {
			return Fail("rm: error removing directory: %v", err)
		}
		return Ok("removed directory: %s", target)
	}

	if err := os.Remove(target); err != nil {
		return failPath("rm", target, err)
	}
	return Ok("removed file: %s", target)
}

func catCommand(args []string) Result {
	if len(args) == 0 {
		return Fail("usage: cat <file>")
	}

	path := ExpandPath(args[0])
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return Fail("cat: %s: Is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		switch Classify(err) {
		case KindNotFound:
			return Fail("cat: no such file: %s", path)
		case KindIsADirectory:
			return Fail("cat: %s: Is a directory", path)
		case KindPermission:
			return Fail("cat: permission denied: %s", path)
		}
		return Fail("cat: error: %v", err)
	}
	return Result{OK: true, Output: string(content)}
}

func touchCommand(args []string) Result {
	if len(args) == 0 {
		return Fail("usage: touch <file>")
	}

	path := ExpandPath(args[0])
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Fail("touch: error: %v", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Fail("touch: error: %v", err)
	}
	f.Close()

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return Fail("touch: error: %v", err)
	}
	return Ok("")
}

func historyCommand(sess *Session, show int) Result {
	entries := sess.History()
	start := 0
	if show > 0 && len(entries) > show {
		start = len(entries) - show
	}

	var out strings.Builder
	for i, line := range entries[start:] {
		if i > 0 {
			out.WriteByte('\n')
		}
		fmt.Fprintf(&out, "%d: %s", start+i+1, line)
	}
	return Result{OK: true, Output: out.String()}
}

// failPath maps a classified OS error into the command's standard message.
func failPath(cmd, path string, err error) Result {
	switch Classify(err) {
	case KindNotFound:
		return Fail("%s: no such file or directory: %s", cmd, path)
	case KindNotADirectory:
		return Fail("%s: not a directory: %s", cmd, path)
	case KindIsADirectory:
		return Fail("%s: is a directory: %s", cmd, path)
	case KindPermission:
		return Fail("%s: permission denied: %s", cmd, path)
	}
	return Fail("%s: error: %v", cmd, err)
}
