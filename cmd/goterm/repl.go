package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/goterminal/goterm/pkg/config"
	"github.com/goterminal/goterm/pkg/logger"
	"github.com/goterminal/goterm/pkg/metrics"
	"github.com/goterminal/goterm/pkg/shell"
)

const intro = "Welcome to goterm - a simple command terminal. Type help to list commands."

// buildShell wires the registry, session and history store. Shared by the
// REPL and the web subcommand.
func buildShell(cfg *config.Config) (*shell.Dispatcher, *shell.HistoryStore) {
	registry := shell.NewRegistry()
	session := shell.NewSession()
	store := shell.NewHistoryStore(cfg.History.File)

	lines, err := store.Load()
	if err != nil {
		logger.WarnCF("main", "Could not load history",
			map[string]any{"error": err.Error()})
	}
	session.Restore(lines)

	shell.RegisterBuiltins(registry, session, cfg.History.Show)
	shell.RegisterSystemCommands(registry, metrics.NewProvider())

	return shell.NewDispatcher(registry, session), store
}

func runREPL() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dispatcher, store := buildShell(cfg)
	defer store.Close()

	// The prompt reads the live working directory, so a cd inside a handler
	// is visible on the very next line.
	prompt := func() string {
		return dispatcher.Session().Cwd() + " " + cfg.Prompt + " "
	}

	fmt.Println(intro)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt(),
		HistoryFile:            cfg.History.File,
		DisableAutoSaveHistory: true,
		AutoComplete:           shell.NewRegistryCompleter(dispatcher.Registry()),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	})
	if err != nil {
		logger.WarnCF("main", "readline unavailable, using simple input",
			map[string]any{"error": err.Error()})
		dispatcher.Session().SetSink(store)
		return simpleLoop(dispatcher, prompt)
	}
	defer rl.Close()

	// readline persists each accepted line to the history file, so arrow-up
	// recall and the history builtin stay in sync with one writer.
	dispatcher.Session().SetSink(readlineSink{rl})

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Println("Bye.")
				return nil
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		if done := handleLine(dispatcher, line); done {
			return nil
		}
		rl.SetPrompt(prompt())
	}
}

// simpleLoop is the fallback when the terminal cannot host readline.
func simpleLoop(dispatcher *shell.Dispatcher, prompt func() string) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt())

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println("Bye.")
				return nil
			}
			return err
		}

		if done := handleLine(dispatcher, line); done {
			return nil
		}
	}
}

// handleLine dispatches one line and prints its result. Returns true when
// the loop should terminate.
func handleLine(dispatcher *shell.Dispatcher, line string) bool {
	result, exit := dispatcher.Dispatch(line)
	if result.Output != "" {
		fmt.Print(result.Output)
		if !strings.HasSuffix(result.Output, "\n") {
			fmt.Println()
		}
	}
	return exit
}

// readlineSink persists accepted lines through readline's own history
// writer, keeping a single writer on the history file.
type readlineSink struct {
	rl *readline.Instance
}

func (s readlineSink) Append(line string) error {
	return s.rl.SaveHistory(line)
}
