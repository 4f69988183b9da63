package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jon4hz/cookbook/internal/api"
	"github.com/jon4hz/cookbook/internal/api/handler"
	"github.com/jon4hz/cookbook/internal/config"
	"github.com/jon4hz/cookbook/internal/deploy"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cookbook server",
	Long:  `Start the cookbook web server. The process exits if MongoDB cannot be reached at startup.`,
	Example: `cookbook serve --config config.yml
cookbook serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, db, err := connect(ctx)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if cfg.SearchIndexPolicy() == config.IndexPolicyStartup {
		if err := db.EnsureIndexes(ctx); err != nil {
			log.Fatalf("failed to create indexes: %v", err)
		}
		log.Debug("indexes ensured")
	}

	var deployer handler.Deployer
	if r := deploy.New(cfg.Webhook); r != nil {
		deployer = r
		log.Warn("deployment webhook enabled without authentication", "path", "/webhook")
	}

	server, err := api.New(cfg, db, deployer, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	log.Info("starting API server", "listen", cfg.Listen)
	if err := server.Run(ctx); err != nil {
		log.Error("API server error", "error", err)
		return
	}
	log.Info("cookbook stopped")
}
