package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goterminal/goterm/pkg/gateway"
)

func newWebCommand() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve an allowlisted subset of commands over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Web.Host = host
			}
			if port != 0 {
				cfg.Web.Port = port
			}

			dispatcher, store := buildShell(cfg)
			defer store.Close()

			srv := gateway.NewServer(cfg.Web, dispatcher.Registry())
			if err := srv.Start(); err != nil {
				return err
			}
			fmt.Printf("goterm web demo listening on %s:%d\n", cfg.Web.Host, cfg.Web.Port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "bind address (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")
	return cmd
}
