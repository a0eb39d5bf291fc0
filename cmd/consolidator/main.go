// Command consolidator runs one shipment-document consolidation batch:
// it reads every .xlsx in the input directory, extracts validated line items,
// fills the output template, and saves the result once at the end.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"shipfill/internal/batch"
	"shipfill/internal/config"
	"shipfill/internal/infrastructure"
)

func main() {
	inDir := flag.String("in", "", "input directory for .xlsx shipment documents (default: input)")
	templatePath := flag.String("template", "", "output template workbook (default: output/template.xlsx)")
	outPath := flag.String("out", "", "destination for the filled workbook (default: output/output_filled.xlsx)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override config.
	if *inDir != "" {
		cfg.Paths.InputDir = *inDir
	}
	if *templatePath != "" {
		cfg.Paths.TemplatePath = *templatePath
	}
	if *outPath != "" {
		cfg.Paths.OutputPath = *outPath
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureRunID(context.Background())

	logger.InfoContext(ctx, "starting shipment consolidation",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("input_dir", cfg.Paths.InputDir),
		slog.String("template", cfg.Paths.TemplatePath),
		slog.String("output", cfg.Paths.OutputPath))

	summary, err := batch.NewRunner(cfg, logger).Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "fatal error, no output produced", slog.Any("error", err))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "consolidation finished",
		slog.Int("files_seen", summary.FilesSeen),
		slog.Int("files_processed", summary.FilesProcessed),
		slog.Int("files_skipped", summary.FilesSkipped),
		slog.Int("rows_written", summary.RowsWritten),
		slog.Bool("output_saved", summary.OutputSaved))
}
