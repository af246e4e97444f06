// cmd/salesclean/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/josebleal/sales-cleaner/pkg/cleaner"
	"github.com/josebleal/sales-cleaner/pkg/config"
	"github.com/josebleal/sales-cleaner/pkg/csvio"
	"github.com/josebleal/sales-cleaner/pkg/pipeline"
)

func main() {
	// A .env file is optional; the defaults cover the designed layout.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dataCleaner, err := cleaner.NewCleaner(
		logger,
		cfg.NumericColumns,
		cfg.DedupKeyColumns,
		cfg.TitleCaseColumns,
	)
	if err != nil {
		logger.Fatal("Failed to create cleaner", zap.Error(err))
	}

	p, err := pipeline.NewPipeline(
		csvio.NewFileSource(cfg.InputPath, logger),
		csvio.NewFileSink(cfg.OutputPath, logger),
		dataCleaner,
		cfg.NumericColumns,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to create pipeline", zap.Error(err))
	}

	result, err := p.Run(context.Background())
	if err != nil {
		logger.Fatal("Cleaning run failed",
			zap.String("stage", result.FailedStage),
			zap.Error(err))
	}

	fmt.Println(p.Metrics().Report())
}

// buildLogger constructs a zap logger from the configured level and format.
// Diagnostics go to stdout: they are advisory progress messages, not errors.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stdout"}

	return zapCfg.Build()
}
