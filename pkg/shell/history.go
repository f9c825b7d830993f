package shell

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HistorySink receives each accepted line for persistence. The readline
// layer provides its own sink; HistoryStore is the plain-file fallback.
type HistorySink interface {
	Append(line string) error
}

// HistoryStore persists command history as a newline-delimited, append-only
// file. Each Append is flushed immediately, so a crash loses at most the
// in-flight line.
type HistoryStore struct {
	path string
	file *os.File
}

func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Load reads the full persisted history. A missing file is an empty
// history, not an error.
func (s *HistoryStore) Load() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("failed to read history file: %w", err)
	}
	return lines, nil
}

func (s *HistoryStore) Append(line string) error {
	if s.file == nil {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open history file: %w", err)
		}
		s.file = f
	}

	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return err
	}
	return s.file.Sync()
}

func (s *HistoryStore) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
