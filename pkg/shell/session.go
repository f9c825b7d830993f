package shell

import (
	"os"

	"github.com/goterminal/goterm/pkg/logger"
)

// Session holds the per-process shell state: the ordered history of
// submitted lines and access to the working directory. The working
// directory is never cached; Cwd always asks the OS, so directory changes
// made inside a handler are immediately visible to the prompt.
type Session struct {
	entries []string
	sink    HistorySink
}

func NewSession() *Session {
	return &Session{}
}

// SetSink installs the persistence sink for accepted lines.
func (s *Session) SetSink(sink HistorySink) {
	s.sink = sink
}

// Restore seeds the in-memory history with previously persisted entries,
// merged ahead of anything typed this session.
func (s *Session) Restore(lines []string) {
	s.entries = append(s.entries, lines...)
}

// Append records an accepted line, persisting it before execution: history
// records intent, not success.
func (s *Session) Append(line string) {
	s.entries = append(s.entries, line)
	if s.sink != nil {
		if err := s.sink.Append(line); err != nil {
			logger.WarnCF("shell", "Failed to persist history entry",
				map[string]any{"error": err.Error()})
		}
	}
}

// History returns the full ordered history, persisted entries first.
func (s *Session) History() []string {
	return s.entries
}

// Cwd reports the live OS working directory.
func (s *Session) Cwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "?"
	}
	return wd
}
