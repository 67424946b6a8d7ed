// Command render runs a single publish pass into PUBLISH_DIR and exits.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/dailypicks-service/internal/config"
	"github.com/preston-bernstein/dailypicks-service/internal/logging"
	"github.com/preston-bernstein/dailypicks-service/internal/metrics"
	"github.com/preston-bernstein/dailypicks-service/internal/server"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("render", flag.ContinueOnError)
	outDir := flags.String("out", "", "output directory (overrides PUBLISH_DIR)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	envErr := godotenv.Load()

	cfg := config.Load()
	if *outDir != "" {
		cfg.Publish.Dir = *outDir
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "dailypicks-render",
		Version: appVersion,
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("failed to load .env file", "err", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder()
	svc, err := server.NewDashboard(cfg, logger, recorder)
	if err != nil {
		logger.Error("dashboard setup failed", "err", err)
		return 1
	}
	pub := server.NewPublisher(cfg, svc, logger, recorder)
	if err := pub.PublishOnce(ctx); err != nil {
		logger.Error("publish failed", "err", err)
		return 1
	}
	logger.Info("publish complete", "dir", cfg.Publish.Dir)
	return 0
}
