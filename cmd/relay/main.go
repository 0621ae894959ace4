package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/blockrelay/internal/config"
	"github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/event"
	"github.com/gabapcia/blockrelay/internal/handlers/cli"
	ethnode "github.com/gabapcia/blockrelay/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/blockrelay/internal/infra/messaging/kafka"
	"github.com/gabapcia/blockrelay/internal/infra/storage/redis"
	"github.com/gabapcia/blockrelay/internal/metrics"
	"github.com/gabapcia/blockrelay/internal/observer"
	"github.com/gabapcia/blockrelay/internal/pkg/credential"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"
	"github.com/gabapcia/blockrelay/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/blockrelay/internal/pkg/transport/http"
	"github.com/gabapcia/blockrelay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockrelay/internal/reactor"
	"github.com/gabapcia/blockrelay/internal/relay"

	"github.com/ethereum/go-ethereum/common"
)

const (
	originChain    = "origin"
	auxiliaryChain = "auxiliary"
)

// newConnection wires one chain: retrying HTTP transport, JSON-RPC client,
// metered node handle and the connection itself.
func newConnection(ctx context.Context, name string, cfg config.Chain, sched scheduler.Scheduler) *ethereum.Connection {
	httpOpts := []httptransport.Option{
		httptransport.WithTimeout(cfg.Timeout),
		httptransport.WithRetryMax(cfg.RetryMax),
	}
	for key, value := range cfg.Headers {
		httpOpts = append(httpOpts, httptransport.WithHeader(key, value))
	}
	httpClient := httptransport.NewClient(httpOpts...)

	node := ethnode.NewObservedNode(
		ethnode.NewClient(jsonrpc.NewClient(httpClient.StandardClient(), cfg.Endpoint)),
		metrics.NewRPCClient(name),
	)

	provider := credential.Chain{
		credential.Static(cfg.Password),
		credential.NewPrompt(),
	}

	conn, err := ethereum.New(ctx, name, node, common.HexToAddress(cfg.Validator), provider, sched,
		ethereum.WithPollingInterval(cfg.PollingInterval),
		ethereum.WithRetry(retry.New(
			retry.WithAttempts(uint(cfg.RetryMax)+1),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Debug(ctx, "node call attempt failed", "chain", name, "attempt", attempt, "error", err)
			}),
		)),
	)
	if err != nil {
		logger.Fatal(ctx, "failed to create chain connection", "chain", name, "error", err)
	}

	return conn
}

func loadContracts(ctx context.Context, name string, entries []string) []event.Contract {
	contracts, err := event.LoadContracts(entries)
	if err != nil {
		logger.Fatal(ctx, "failed to load contracts", "chain", name, "error", err)
	}

	return contracts
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to initialize telemetry:", err)
			os.Exit(1)
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.MetricsAddr != "" {
		metrics.Serve(ctx, cfg.MetricsAddr)
	}

	workers := scheduler.New(ctx, scheduler.WithName("workers"))
	reactors := scheduler.New(ctx,
		scheduler.WithName("reactors"),
		scheduler.WithLimit(cfg.SchedulerLimit),
	)

	origin := newConnection(ctx, originChain, cfg.Origin, reactors)
	auxiliary := newConnection(ctx, auxiliaryChain, cfg.Auxiliary, reactors)

	var opts []relay.Option

	if cfg.Redis.Enabled {
		store, err := redis.NewClient(ctx, cfg.Redis.Addr,
			redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithNamespace(cfg.Redis.Namespace),
		)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to redis", "error", err)
		}
		defer store.Close()

		origin.RegisterReactor(reactor.NewHeadTracker(originChain, store))
		auxiliary.RegisterReactor(reactor.NewHeadTracker(auxiliaryChain, store))
		opts = append(opts, relay.WithHeads(store))
	}

	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic,
			kafka.WithTopicCreation(cfg.Kafka.CreateTopic),
		)
		defer producer.Close()

		origin.RegisterReactor(reactor.NewPublisher(originChain, producer))
		auxiliary.RegisterReactor(reactor.NewPublisher(auxiliaryChain, producer))
	}

	// Runs before the stores above are closed.
	defer reactors.Wait()

	svc := relay.New(origin, auxiliary, workers, observer.Config{
		OriginContracts:    loadContracts(ctx, originChain, cfg.Origin.Contracts),
		AuxiliaryContracts: loadContracts(ctx, auxiliaryChain, cfg.Auxiliary.Contracts),
	}, opts...)

	if err := cli.Run(ctx, svc); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
