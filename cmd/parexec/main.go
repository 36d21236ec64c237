// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

// Command parexec drives one of the three chunked-workload executors
// over a generated dataset, printing the same two summary lines the
// original study's main.cpp printed and writing a per-chunk timing CSV
// alongside them.
package main

import (
	"fmt"
	"os"

	"github.com/relee/parexec"
	"github.com/relee/parexec/internal/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const slowestChunksTracked = 5

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PAREXEC")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "parexec",
		Short:         "Compare chunked-workload execution strategies",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.Bool("stacked", false, "generate a dataset with heavy items stacked at the front of each chunk")
	flags.Bool("even", false, "generate a dataset with heavy items spread evenly through each chunk")
	flags.Bool("queued", false, "use the locked-queue executor")
	flags.Bool("atomic-queued", false, "use the atomic-queue executor")
	flags.Int64("seed", 1, "seed for the dataset generator")
	flags.String("csv", "timings.csv", "path to write per-chunk timings")
	flags.BoolP("verbose", "v", false, "enable debug-level logging")

	for _, name := range []string{"stacked", "even", "queued", "atomic-queued", "seed", "csv", "verbose"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func run(v *viper.Viper) error {
	logger, err := newLogger(v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("parexec: building logger: %w", err)
	}
	defer logger.Sync()
	defer zap.ReplaceGlobals(logger)()

	if v.GetBool("stacked") && v.GetBool("even") {
		return fmt.Errorf("parexec: --stacked and --even are mutually exclusive")
	}
	if v.GetBool("queued") && v.GetBool("atomic-queued") {
		return fmt.Errorf("parexec: --queued and --atomic-queued are mutually exclusive")
	}

	strategy, dataset := selectDataset(v)
	executor := selectExecutor(v)
	defer executor.Close()

	logger.Info("dataset generated",
		zap.String("distribution", strategy),
		zap.Int64("seed", v.GetInt64("seed")),
		zap.Int("chunks", parexec.ChunkCount),
		zap.Int("chunk_size", parexec.ChunkSize),
	)

	timer := parexec.NewMonotonicTimer()
	result, timings := executor.RunDataset(dataset)
	elapsed := timer.Peek()

	fmt.Printf("Processing took %f seconds\n", elapsed)
	fmt.Printf("Result is %d\n", result)

	tracker := stats.NewSlowestTracker(slowestChunksTracked)
	for i, rec := range timings {
		tracker.Observe(i, rec.TotalChunkTime)
	}
	for _, s := range tracker.Slowest() {
		logger.Debug("slow chunk", zap.Int("chunk", s.Index), zap.Float64("seconds", s.TotalChunkTime))
	}

	csvPath := v.GetString("csv")
	if err := parexec.WriteTimingsCSV(csvPath, timings); err != nil {
		return fmt.Errorf("parexec: writing timings: %w", err)
	}
	logger.Info("timings written", zap.String("path", csvPath))

	return nil
}

func selectDataset(v *viper.Viper) (string, parexec.Dataset) {
	seed := v.GetInt64("seed")
	switch {
	case v.GetBool("stacked"):
		return "stacked", parexec.GenerateStacked(seed)
	case v.GetBool("even"):
		return "even", parexec.GenerateEven(seed)
	default:
		return "random", parexec.GenerateRandom(seed)
	}
}

func selectExecutor(v *viper.Viper) parexec.Executor {
	switch {
	case v.GetBool("queued"):
		return parexec.NewLockedQueueExecutor()
	case v.GetBool("atomic-queued"):
		return parexec.NewAtomicQueueExecutor()
	default:
		return parexec.NewPreassignedExecutor()
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewProductionConfig().Build()
}
