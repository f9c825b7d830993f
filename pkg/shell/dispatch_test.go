package shell

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	registry, session := newTestShell(t)
	return NewDispatcher(registry, session)
}

func TestDispatch_EmptyLineNoHistoryNoOutput(t *testing.T) {
	d := newTestDispatcher(t)

	for _, line := range []string{"", "   ", "\t"} {
		result, exit := d.Dispatch(line)
		assert.True(t, result.OK)
		assert.Equal(t, "", result.Output)
		assert.False(t, exit)
	}
	assert.Empty(t, d.Session().History())
}

func TestDispatch_RecordsHistoryBeforeExecution(t *testing.T) {
	d := newTestDispatcher(t)

	result, _ := d.Dispatch("cat missing-file")
	assert.False(t, result.OK)

	// Failed commands are still history: it records intent, not success.
	assert.Equal(t, []string{"cat missing-file"}, d.Session().History())
}

func TestDispatch_TokenizeErrorAbortsLineOnly(t *testing.T) {
	d := newTestDispatcher(t)

	result, exit := d.Dispatch(`cat "oops`)
	assert.False(t, result.OK)
	assert.Contains(t, result.Output, "parse error")
	assert.False(t, exit)

	// The loop survives: a following valid line dispatches normally.
	result, _ = d.Dispatch("pwd")
	assert.True(t, result.OK)
}

func TestDispatch_Builtin(t *testing.T) {
	d := newTestDispatcher(t)

	result, exit := d.Dispatch("pwd")
	assert.True(t, result.OK)
	assert.False(t, exit)

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.Equal(t, wd, result.Output)
}

func TestDispatch_QuotedArgumentStaysOneToken(t *testing.T) {
	d := newTestDispatcher(t)
	assert.NoError(t, os.WriteFile("a b.txt", []byte("spaced\n"), 0o644))

	result, _ := d.Dispatch(`cat "a b.txt"`)
	assert.True(t, result.OK)
	assert.Equal(t, "spaced\n", result.Output)
}

func TestDispatch_BangDelegatesToShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	d := newTestDispatcher(t)

	result, exit := d.Dispatch("!echo hi")
	assert.True(t, result.OK)
	assert.Equal(t, "hi", result.Output)
	assert.False(t, exit)
}

func TestDispatch_BangBypassesRegistry(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	d := newTestDispatcher(t)
	d.Registry().Register(&Command{
		Name: "echo",
		Help: "echo - builtin that must not run for !echo",
		Run: func(args []string) Result {
			return Ok("builtin echo")
		},
	})

	result, _ := d.Dispatch("!echo hi")
	assert.Equal(t, "hi", result.Output)
}

func TestDispatch_BangShellSyntaxWorks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	d := newTestDispatcher(t)

	// A pipe is shell syntax the internal tokenizer never sees.
	result, _ := d.Dispatch("!printf 'a\\nb\\n' | wc -l")
	assert.True(t, result.OK)
	assert.Contains(t, result.Output, "2")
}

func TestDispatch_BangEmptyIsUsage(t *testing.T) {
	d := newTestDispatcher(t)

	result, _ := d.Dispatch("!")
	assert.False(t, result.OK)
	assert.Contains(t, result.Output, "usage")
}

func TestDispatch_ShellBuiltinDelegatesVerbatim(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	d := newTestDispatcher(t)

	result, _ := d.Dispatch("shell echo hi")
	assert.True(t, result.OK)
	assert.Equal(t, "hi", result.Output)

	result, _ = d.Dispatch("shell")
	assert.False(t, result.OK)
	assert.Contains(t, result.Output, "usage: shell")
}

func TestDispatch_UnknownCommandNotFound(t *testing.T) {
	d := newTestDispatcher(t)

	result, exit := d.Dispatch("definitely-not-a-real-program-12345")
	assert.False(t, result.OK)
	assert.Contains(t, result.Output, "command not found")
	assert.False(t, exit)
}

func TestDispatch_ExternalProgramNoShellInterpretation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on echo binary")
	}
	d := newTestDispatcher(t)

	// Bare external execution passes the argument vector through untouched:
	// the pipe character is just an argument, not shell syntax.
	result, _ := d.Dispatch("echo a | b")
	assert.True(t, result.OK)
	assert.Equal(t, "a | b", result.Output)
}

func TestDispatch_ExitTerminates(t *testing.T) {
	d := newTestDispatcher(t)

	result, exit := d.Dispatch("exit")
	assert.True(t, result.OK)
	assert.Equal(t, "Bye.", result.Output)
	assert.True(t, exit)
}
