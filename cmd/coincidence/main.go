package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/coincidence/internal/config"
	"github.com/tensorplex-labs/coincidence/internal/dataset"
	"github.com/tensorplex-labs/coincidence/internal/report"
	"github.com/tensorplex-labs/coincidence/internal/utils/logger"
)

func main() {
	logger.Init()
	defer logger.Logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("coincidence run failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return err
	}
	tri, err := cfg.Triangle()
	if err != nil {
		return err
	}

	var datasets []*dataset.Dataset
	if cfg.InputPath == "" {
		log.Info().Msg("--- No COINCIDENCE_INPUT set, scoring built-in scenarios ---")
		datasets = dataset.Scenarios()
	} else {
		ds, err := dataset.Load(cfg.InputPath)
		if err != nil {
			return err
		}
		datasets = []*dataset.Dataset{ds}
	}

	pipeline := report.NewPipeline(
		report.WithTriangle(tri),
		report.WithParallelism(cfg.Parallelism),
	)

	reports := make([]report.Report, 0, len(datasets))
	for _, ds := range datasets {
		results, rep, err := pipeline.Process(ctx, ds)
		if err != nil {
			return err
		}
		report.Plot(os.Stdout, ds.Name, results)
		reports = append(reports, rep)
	}

	if cfg.OutputPath == "" {
		return nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.WriteJSON(f, reports); err != nil {
		return err
	}
	log.Info().Str("path", cfg.OutputPath).Int("datasets", len(reports)).Msg("report written")
	return nil
}
