// Package main provides the swalign CLI. It reads a word list, aligns every
// pair of words with Smith-Waterman and writes one report block per pair.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/swalign/internal/logger"
)

func main() {
	// diagnostics before the config is read still go to stderr.
	if err := logger.Setup(logger.DevelopmentEnvironment); err != nil {
		log.Println("could not setup logger:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := execute(ctx, os.Args[1:])
	stop()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// execute runs the root command with args and logs the error it ends with,
// including argument and flag errors raised before the command body runs.
func execute(ctx context.Context, args []string) error {
	cmd := rootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}

	return err
}
