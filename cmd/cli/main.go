package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/cebip/internal/backup"
	"github.com/dmitrijs2005/cebip/internal/buildinfo"
	"github.com/dmitrijs2005/cebip/internal/cli"
	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/config"
	"github.com/dmitrijs2005/cebip/internal/logging"
	"github.com/dmitrijs2005/cebip/internal/repository"
	"github.com/dmitrijs2005/cebip/internal/session"
	"github.com/dmitrijs2005/cebip/internal/storage/kv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	if err := run(ctx, cfg); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	if cfg.TokenSecret == "" {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return err
		}
		cfg.TokenSecret = secret
		logger.Warn(ctx, "no token secret configured, sessions will not survive a restart")
	}

	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "close storage", "error", err)
		}
	}()

	repo := repository.New(store, repository.WithLogger(logger))
	sessions := session.NewManager(store, repo, []byte(cfg.TokenSecret), session.WithLogger(logger))
	repo.BindSession(sessions)

	if err := repo.InitializeDefaultData(ctx); err != nil {
		return err
	}
	if err := repo.InitializeUsers(ctx); err != nil {
		return err
	}

	var opts []cli.Option
	if cfg.S3Bucket != "" {
		sink, err := backup.OpenS3Sink(ctx, cfg)
		if err != nil {
			return err
		}
		opts = append(opts, cli.WithRemoteSink(sink))
	}

	logger.Info(ctx, "storage ready", "backend", cfg.StorageBackend)
	cli.NewApp(cfg, repo, sessions, logger, opts...).Run(ctx)
	return nil
}
