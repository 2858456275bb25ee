package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/stubserver"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := stubserver.New(logger).Start(ctx, *addr); err != nil {
		logger.Fatal("stub server failed", zap.Error(err))
	}
	logger.Info("stub server stopped")
}
