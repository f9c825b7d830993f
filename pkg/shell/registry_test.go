package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func okCommand(name string) *Command {
	return &Command{
		Name: name,
		Help: name + " - test command",
		Run: func(args []string) Result {
			return Ok("ran %s", name)
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	if r.Count() != 0 {
		t.Errorf("expected empty registry, got count %d", r.Count())
	}

	r.Register(okCommand("foo"))
	cmd, ok := r.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "foo", cmd.Name)
	assert.False(t, r.Has("bar"))
}

func TestRegistry_DuplicateNamePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(okCommand("foo"))
	assert.Panics(t, func() {
		r.Register(okCommand("foo"))
	})
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(okCommand("zeta"))
	r.Register(okCommand("alpha"))
	r.Register(okCommand("mid"))
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.List())
}

func TestRegistry_ExecuteUnknown(t *testing.T) {
	r := NewRegistry()
	result := r.Execute("nope", nil)
	assert.False(t, result.OK)
	assert.Contains(t, result.Output, "command not found")
}

func TestRegistry_ExecutePanicIsContained(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{
		Name: "boom",
		Help: "boom - panics",
		Run: func(args []string) Result {
			panic("kaboom")
		},
	})

	result := r.Execute("boom", nil)
	assert.False(t, result.OK)
	assert.Contains(t, result.Output, "kaboom")
}

func TestRegistry_Summaries(t *testing.T) {
	r := NewRegistry()
	r.Register(okCommand("beta"))
	r.Register(okCommand("alpha"))

	summaries := r.Summaries()
	assert.Len(t, summaries, 2)
	assert.Contains(t, summaries[0], "alpha")
	assert.Contains(t, summaries[1], "beta")
}
