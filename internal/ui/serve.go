package ui

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/pagetable/internal/config"
	"github.com/javiermolinar/pagetable/internal/server"
)

func (a *App) serveCmd() *cobra.Command {
	var (
		addr   string
		source string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the paginated user API",
		Long: `Serve users over HTTP at /api/users?page=N&limit=M.

Records are read once at startup from a JSON file (source "memory")
or from a SQLite database filled with "pagetable import" (source "sqlite").`,
		Example: `  pagetable serve
  pagetable serve --addr=:8080 --source=sqlite`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := a.config.Server
			if addr != "" {
				cfg.Addr = addr
			}
			if source != "" {
				cfg.Source = source
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr)")
	cmd.Flags().StringVar(&source, "source", "", `Record source, "memory" or "sqlite"`)

	return cmd
}

func serve(ctx context.Context, cfg config.ServerConfig) error {
	src, err := server.OpenSource(cfg)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer func() { _ = src.Close() }()

	total, err := src.Total(ctx)
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}
	log.Printf("[SERVER] source=%s records=%d addr=%s", cfg.Source, total, cfg.Addr)

	return server.New(cfg, src).Run(ctx)
}
