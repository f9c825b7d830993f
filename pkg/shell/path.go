package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and embedded environment variables, then
// lexically normalizes the result. It never touches the filesystem and
// never fails; existence and permission errors surface at the point of use.
// Every path-taking builtin goes through here, so ~/foo means the same
// thing to cd, cat, and mkdir.
func ExpandPath(raw string) string {
	if raw == "" {
		return "."
	}

	path := raw
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}

	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}

// PathMatches returns filesystem entries whose name has the given partial
// path as a prefix, for tab completion. Matching is a glob against the
// token's directory component.
func PathMatches(prefix string) []string {
	if prefix == "" {
		matches, _ := filepath.Glob("*")
		return matches
	}

	dir := filepath.Dir(prefix)
	base := filepath.Base(prefix)
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		dir = filepath.Clean(prefix)
		base = ""
	}

	matches, err := filepath.Glob(filepath.Join(dir, base+"*"))
	if err != nil {
		return nil
	}
	return matches
}
