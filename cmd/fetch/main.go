package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"stock_snapshot/internal/app/config"
	"stock_snapshot/internal/app/di"
	"stock_snapshot/internal/feature/snapshot/domain/entity"
	"stock_snapshot/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		slog.Error("fetch failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// newCommand builds the CLI. Progress and errors are logged to stdout.
func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "save the most actively traded stock and its price history to a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "optional YAML config file",
				Value: "config.yaml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (default test.json)",
			},
			&cli.StringFlag{
				Name:    "granularity",
				Aliases: []string{"g"},
				Usage:   "price series granularity: 1d (5min intraday) or daily",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, stdout)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	// .envを読み込む
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// フラグは設定ファイルと環境変数より優先
	if cmd.IsSet("output") {
		cfg.OutputPath = cmd.String("output")
	}
	if cmd.IsSet("granularity") {
		g, err := entity.ParseGranularity(cmd.String("granularity"))
		if err != nil {
			return err
		}
		cfg.Granularity = g
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	logger := logging.New(stdout, cfg.LogLevel)
	if dotenvErr != nil {
		logger.Info(".env not found; using system environment variables")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	uc := di.NewSnapshotUsecase(cfg, logger)
	_, err = uc.Run(ctx)
	return err
}
