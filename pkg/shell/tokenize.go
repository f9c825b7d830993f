package shell

import (
	"fmt"

	"github.com/google/shlex"
)

// Tokenize splits a raw line using shell-style quoting rules: whitespace
// separates tokens, single and double quotes group them, backslash escapes.
// Malformed quoting is a reportable error, never silently dropped.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse error: %v", err)
	}
	return tokens, nil
}
