package main

import (
	"context"

	"github.com/gabapcia/tokenwatch/internal/blockproc"
	"github.com/gabapcia/tokenwatch/internal/chainstream"
	"github.com/gabapcia/tokenwatch/internal/config"
	"github.com/gabapcia/tokenwatch/internal/handlers/cli"
	"github.com/gabapcia/tokenwatch/internal/infra/blockchain/jsonrpc"
	"github.com/gabapcia/tokenwatch/internal/infra/blockchain/jsonrpc/ethereum"
	"github.com/gabapcia/tokenwatch/internal/infra/notifier/telegram"
	"github.com/gabapcia/tokenwatch/internal/infra/storage/redis"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/tokenwatch/internal/pkg/telemetry"
	"github.com/gabapcia/tokenwatch/internal/summary"
	"github.com/gabapcia/tokenwatch/internal/tokenmeta"
	"github.com/gabapcia/tokenwatch/internal/transferlog"
	"github.com/gabapcia/tokenwatch/internal/txanalysis"
	"github.com/gabapcia/tokenwatch/internal/walletregistry"
	"github.com/gabapcia/tokenwatch/internal/walletwatch"
)

const serviceName = "tokenwatch"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			panic(err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	node := ethereum.NewClient(jsonrpc.NewClient(cfg.RPCEndpoint))

	chainStream := chainstream.New(
		map[string]chainstream.Blockchain{cfg.Network: node},
		chainstream.WithCheckpointStorage(storage),
		chainstream.WithRetry(retry.New()),
	)
	defer chainStream.Close()

	tokenMeta := tokenmeta.New(node)
	transferDecoder := transferlog.New(tokenMeta)
	analyzer := txanalysis.New(node, transferDecoder)
	formatter := summary.New()
	notifier := telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramChatID)

	walletWatch := walletwatch.New(storage, analyzer, formatter, notifier,
		walletwatch.WithIdempotencyGuard(storage),
	)

	blockProc := blockproc.New(chainStream, walletWatch)
	walletRegistry := walletregistry.New(storage)

	if err := cli.Run(ctx, walletRegistry, blockProc); err != nil {
		logger.Fatal(ctx, "cli execution failed", "error", err)
	}
}
