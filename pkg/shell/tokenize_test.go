package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Whitespace(t *testing.T) {
	tokens, err := Tokenize("ls -l /tmp")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ls", "-l", "/tmp"}, tokens)
}

func TestTokenize_QuotedWhitespacePreserved(t *testing.T) {
	tokens, err := Tokenize(`cat "a b.txt"`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "a b.txt"}, tokens)
}

func TestTokenize_SingleQuotes(t *testing.T) {
	tokens, err := Tokenize(`touch 'new file'`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"touch", "new file"}, tokens)
}

func TestTokenize_UnbalancedQuoteIsError(t *testing.T) {
	_, err := Tokenize(`cat "unterminated`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestTokenize_EmptyLine(t *testing.T) {
	tokens, err := Tokenize("")
	assert.NoError(t, err)
	assert.Empty(t, tokens)
}
