package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/goterminal/goterm/pkg/config"
	"github.com/goterminal/goterm/pkg/logger"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
)

func main() {
	root := &cobra.Command{
		Use:           "goterm",
		Short:         "A simple interactive command terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}

	root.AddCommand(newWebCommand(), newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := version
			if gitCommit != "" {
				v += fmt.Sprintf(" (git: %s)", gitCommit)
			}
			fmt.Printf("goterm %s\n", v)
			if buildTime != "" {
				fmt.Printf("  Build: %s\n", buildTime)
			}
			fmt.Printf("  Go: %s\n", runtime.Version())
		},
	}
}

// loadConfig resolves runtime paths, loads the config and applies the
// logging settings it carries.
func loadConfig() (*config.Config, error) {
	paths := config.ResolveRuntimePaths()
	cfg, err := config.LoadConfig(paths.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}
	if cfg.LogFile != "" {
		if err := logger.EnableFileLogging(cfg.LogFile); err != nil {
			logger.WarnCF("main", "File logging disabled",
				map[string]any{"error": err.Error()})
		}
	}

	return cfg, nil
}
