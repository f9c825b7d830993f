package shell

import (
	"sort"
	"strings"
	"unicode"
)

// RegistryCompleter implements readline's AutoCompleter over the command
// registry: the first word completes command names, later words consult the
// command's own completer (path-taking builtins complete filesystem
// entries, everything else offers nothing).
type RegistryCompleter struct {
	registry *Registry
}

func NewRegistryCompleter(registry *Registry) *RegistryCompleter {
	return &RegistryCompleter{registry: registry}
}

// Do implements the readline.AutoCompleter interface. It returns the
// suffixes to append after the word at the cursor, plus the word's length.
func (c *RegistryCompleter) Do(line []rune, pos int) ([][]rune, int) {
	before := string(line[:pos])
	word := currentWord(before)

	var candidates []string
	if isFirstWord(before, word) {
		for _, name := range c.registry.List() {
			if strings.HasPrefix(name, word) {
				candidates = append(candidates, name)
			}
		}
	} else {
		name := firstWord(before)
		if cmd, ok := c.registry.Get(name); ok && cmd.Complete != nil {
			for _, m := range cmd.Complete(word) {
				if strings.HasPrefix(m, word) {
					candidates = append(candidates, m)
				}
			}
		}
	}
	sort.Strings(candidates)

	var out [][]rune
	for _, cand := range candidates {
		suffix := cand[len(word):]
		if suffix != "" {
			out = append(out, []rune(suffix))
		}
	}
	return out, len([]rune(word))
}

// currentWord returns the token being typed at the end of the line.
func currentWord(before string) string {
	i := strings.LastIndexFunc(before, unicode.IsSpace)
	return before[i+1:]
}

// isFirstWord reports whether the word at the cursor is the command name.
func isFirstWord(before, word string) bool {
	return strings.TrimSpace(strings.TrimSuffix(before, word)) == ""
}

func firstWord(before string) string {
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
