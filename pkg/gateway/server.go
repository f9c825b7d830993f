// Package gateway exposes a small fixed subset of the shell's builtins over
// HTTP. It is a separate consumer of the command handler contract: commands
// go in, {ok, output} comes out, and anything outside the allowlist is
// rejected before a handler is ever reached.
package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/goterminal/goterm/pkg/config"
	"github.com/goterminal/goterm/pkg/logger"
	"github.com/goterminal/goterm/pkg/shell"
)

// Server is the web demo HTTP server.
type Server struct {
	cfg      config.WebConfig
	registry *shell.Registry
	server   *http.Server
}

func NewServer(cfg config.WebConfig, registry *shell.Registry) *Server {
	return &Server{
		cfg:      cfg,
		registry: registry,
	}
}

// Handler returns the routed http.Handler, exposed separately so tests can
// drive it without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /ping", s.handlePing)
	mux.HandleFunc("POST /run", s.handleRun)
	mux.HandleFunc("GET /run_get", s.handleRunGet)
	return mux
}

// Start begins listening on the configured host:port.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("gateway listen: %w", err)
	}

	go func() {
		logger.InfoCF("gateway", "HTTP server starting", map[string]any{"addr": addr})
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.ErrorCF("gateway", "HTTP server error", map[string]any{"error": err.Error()})
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
