package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"notification-lab/contract"
	"notification-lab/delivery"
	"notification-lab/generator"
	"notification-lab/internal"
	"notification-lab/sink"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code, err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Notification simulator terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps main a thin wrapper so deferred cleanups (log file) execute
// before the process exits.
func run(ctx context.Context, args []string, stdout io.Writer) (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig(args)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger, closer, err := internal.NewLogger(config)
	if err != nil {
		return exitConfig, fmt.Errorf("logger error: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()
	logger = logger.With("run", uuid.NewString())

	// 2. Delivery system
	logger.Info("Launching Notification Simulator.")
	system, err := delivery.New(config.LossChance, config.ReadChance, options(config, logger)...)
	if err != nil {
		return exitConfig, err
	}

	// 3. Simulation
	if err = system.Simulate(ctx, config.NumUsers, config.NumMessages); err != nil {
		return exitRuntime, err
	}

	// 4. Statistics
	logger.Info("Displaying system statistics...")
	format := sink.NewFormatter(config.ReportFormat)
	sink.Show(displaySink(config, logger, stdout), format(system.StatisticsReport()))
	return exitOK, nil
}

func options(config internal.Config, logger *slog.Logger) []delivery.Option {
	opts := []delivery.Option{
		delivery.WithLogger(logger),
		delivery.WithWordCount(config.WordCount),
	}
	if config.Seed == nil {
		return opts
	}
	seed := uint64(*config.Seed)
	logger.Info("Using seeded random sources", "seed", *config.Seed)
	return append(opts,
		delivery.WithNameGenerator(generator.NewNames(rand.New(rand.NewPCG(seed, 1)))),
		delivery.WithTextGenerator(generator.NewLorem(rand.New(rand.NewPCG(seed, 2)))),
		delivery.WithRandomSource(rand.New(rand.NewPCG(seed, 3))),
	)
}

func displaySink(config internal.Config, logger *slog.Logger, stdout io.Writer) contract.LineSink {
	if config.Output == internal.OutputLogfile {
		return sink.NewLogSink(logger)
	}
	return sink.NewConsoleSink(stdout, config.Colours)
}
