package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
	"strings"
)

// RunShell hands a command line verbatim to the platform shell. The text
// bypasses the internal tokenizer entirely, so shell syntax the tokenizer
// does not understand (pipes, globs, redirection) still works.
func RunShell(cmdline string) Result {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", cmdline)
	} else {
		cmd = exec.Command("sh", "-c", cmdline)
	}
	return runAndCollect(cmd, "shell")
}

// RunProgram executes a bare external program with an argument vector and
// no shell interpretation. A program that cannot be located is reported as
// command not found.
func RunProgram(name string, args []string) Result {
	cmd := exec.Command(name, args...)

	err := runCmd(cmd)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return Fail("command not found: %s", name)
		}
	}
	return collect(cmd, err, name)
}

func runAndCollect(cmd *exec.Cmd, label string) Result {
	err := runCmd(cmd)
	return collect(cmd, err, label)
}

func runCmd(cmd *exec.Cmd) error {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	return cmd.Run()
}

func collect(cmd *exec.Cmd, err error, label string) Result {
	stdout := cmd.Stdout.(*bytes.Buffer)
	stderr := cmd.Stderr.(*bytes.Buffer)

	var out strings.Builder
	out.WriteString(stdout.String())
	if stderr.Len() > 0 {
		out.WriteString(stderr.String())
	}
	output := strings.TrimRight(out.String(), "\n")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if output == "" {
				output = fmt.Sprintf("%s: exit status %d", label, exitErr.ExitCode())
			}
			return Result{OK: false, Output: output}
		}
		return Fail("%s: error: %v", label, err)
	}
	return Result{OK: true, Output: output}
}
