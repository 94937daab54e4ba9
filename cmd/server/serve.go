package main

import (
	"os"
	"os/signal"
	"syscall"

	"bookscan/internal/agent"
	"bookscan/internal/handler"
	"bookscan/internal/server"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides HOST)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[INFO] Starting BookScan env=%s", cfg.Env)

	var reviewer handler.ReviewService
	if r, err := agent.NewReviewerFromConfig(ctx, cfg); err != nil {
		log.Warnf("[WARN] Failed to initialize reviewer: %v", err)
		log.Warn("[WARN] Review generation will be unavailable")
	} else {
		reviewer = r
	}

	srv, err := server.New(cfg, reviewer)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
