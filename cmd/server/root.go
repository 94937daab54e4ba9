package main

import (
	"fmt"
	"os"

	"bookscan/internal/config"
	"bookscan/internal/observability"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bookscan",
	Short: "BookScan book review service",
	Long: `BookScan takes a book title and returns an AI-generated review together with a
Fiction / Non-Fiction classification. Without a subcommand it starts the HTTP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
	RunE:              runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	observability.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.WithFields(log.Fields{
		"env":      cfg.Env,
		"provider": cfg.LLM.Provider,
	}).Debug("[INFO] Configuration loaded")
	return nil
}
