package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/navkit/navbridge/internal/config"
	"github.com/navkit/navbridge/internal/events"
	"github.com/navkit/navbridge/internal/logger"
	"github.com/navkit/navbridge/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Error("failed to load config", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	host := transport.NewHost(log, transport.Options{
		WriteWait:      cfg.WriteWait,
		PongWait:       cfg.PongWait,
		SendBuffer:     cfg.SendBuffer,
		ReplyCacheSize: cfg.ReplyCacheSize,
	})

	demux := events.NewDemux(log)
	demux.Attach(host)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("bridge host starting", "addr", cfg.Addr)
	if err := host.ListenAndServe(ctx, cfg.Addr); err != nil {
		log.Error("bridge host failed", "err", err)
		os.Exit(1)
	}
	log.Info("bridge host stopped")
}
