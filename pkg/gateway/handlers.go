package gateway

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/goterminal/goterm/pkg/logger"
	"github.com/goterminal/goterm/pkg/shell"
)

// allowed is the fixed set of command names the gateway will run. Anything
// else is rejected with 403 before reaching a handler; notably cd, touch,
// history, shell and exit stay operator-only.
var allowed = map[string]bool{
	"ls":    true,
	"pwd":   true,
	"cat":   true,
	"mkdir": true,
	"rm":    true,
	"ps":    true,
	"sys":   true,
}

// runCommand resolves one submitted command line against the allowlist and
// the registry, returning the handler's uniform result and an HTTP status.
func (s *Server) runCommand(cmdline string) (shell.Result, int) {
	cmdline = strings.TrimSpace(cmdline)
	if cmdline == "" {
		return shell.Fail("No command provided"), http.StatusBadRequest
	}

	tokens, err := shell.Tokenize(cmdline)
	if err != nil {
		// Fall back to whitespace splitting so a stray quote still gets a
		// meaningful "not allowed" or handler-level error.
		tokens = strings.Fields(cmdline)
	}
	if len(tokens) == 0 {
		return shell.Fail("No command provided"), http.StatusBadRequest
	}

	name, args := tokens[0], tokens[1:]
	if !allowed[name] {
		logger.WarnCF("gateway", "Rejected command outside allowlist",
			map[string]any{"command": name})
		return shell.Fail("Command not allowed: %s", name), http.StatusForbidden
	}

	return s.registry.Execute(name, args), http.StatusOK
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, shell.Fail("invalid form data"))
		return
	}

	result, status := s.runCommand(r.FormValue("cmd"))
	writeJSON(w, status, result)
}

// handleRunGet runs the same pipeline from a query parameter and answers
// plain text, for quick browser debugging.
func (s *Server) handleRunGet(w http.ResponseWriter, r *http.Request) {
	result, _ := s.runCommand(r.URL.Query().Get("cmd"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(result.Output))
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "msg": "pong"})
}

const indexPage = `<!doctype html>
<html>
  <body style="font-family:monospace;padding:20px;">
    <h3>goterm web demo</h3>
    <form method="post" action="/run">
      <input name="cmd" placeholder="e.g. ls" style="width:300px;padding:8px;margin-right:8px"/>
      <button type="submit">Send</button>
    </form>
    <p>Allowed commands: ls, pwd, cat, mkdir, rm, ps, sys.</p>
  </body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorCF("gateway", "failed to encode JSON response",
			map[string]any{"error": err.Error()})
	}
}
