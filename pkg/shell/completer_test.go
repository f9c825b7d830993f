package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doComplete(c *RegistryCompleter, line string) []string {
	runes := []rune(line)
	suffixes, _ := c.Do(runes, len(runes))

	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, string(s))
	}
	return out
}

func TestCompleter_CommandNames(t *testing.T) {
	registry, _ := newTestShell(t)
	c := NewRegistryCompleter(registry)

	// "hi" completes to "history".
	assert.Equal(t, []string{"story"}, doComplete(c, "hi"))
}

func TestCompleter_CommandNamePrefix(t *testing.T) {
	registry, _ := newTestShell(t)
	c := NewRegistryCompleter(registry)

	// "c" matches cat and cd.
	suffixes := doComplete(c, "c")
	assert.ElementsMatch(t, []string{"at", "d"}, suffixes)
}

func TestCompleter_PathArgument(t *testing.T) {
	registry, _ := newTestShell(t)
	assert.NoError(t, os.WriteFile("alpha.txt", nil, 0o644))
	assert.NoError(t, os.WriteFile("alps", nil, 0o644))
	c := NewRegistryCompleter(registry)

	suffixes := doComplete(c, "cat alp")
	assert.ElementsMatch(t, []string{"ha.txt", "s"}, suffixes)
}

func TestCompleter_DirectoryComponent(t *testing.T) {
	registry, _ := newTestShell(t)
	assert.NoError(t, os.MkdirAll("sub", 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join("sub", "file.txt"), nil, 0o644))
	c := NewRegistryCompleter(registry)

	suffixes := doComplete(c, "ls sub/fi")
	assert.Equal(t, []string{"le.txt"}, suffixes)
}

func TestCompleter_NoCompleterRegistered(t *testing.T) {
	registry, _ := newTestShell(t)
	assert.NoError(t, os.WriteFile("alpha.txt", nil, 0o644))
	c := NewRegistryCompleter(registry)

	// pwd takes no path argument and registers no completer.
	suffixes := doComplete(c, "pwd alp")
	assert.Empty(t, suffixes)
}
