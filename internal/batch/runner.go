// Package batch drives one consolidation run: it enumerates the input
// directory, extracts each shipment document in isolation, appends every
// valid line item through the shared output cursor, and saves the filled
// template once at the end.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"shipfill/internal/config"
	"shipfill/internal/dataprocessing"
	"shipfill/internal/exporter"
	"shipfill/internal/files"
	"shipfill/pkg/contracts/domain"
)

// Runner executes one batch consolidation run.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner creates a batch runner for the given configuration.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run processes every input file sequentially and returns the batch summary.
// A non-nil error means a fatal condition: unreadable template, missing input
// directory, or a failed final save. Per-file problems never abort the batch.
func (r *Runner) Run(ctx context.Context) (*domain.BatchSummary, error) {
	logger := r.logger

	if err := r.cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	writer, err := exporter.OpenTemplate(r.cfg.Paths.TemplatePath)
	if err != nil {
		return nil, err
	}
	defer writer.Close()

	logger.InfoContext(ctx, "output template loaded",
		slog.String("template", r.cfg.Paths.TemplatePath))

	inputFiles, err := files.FindInputFiles(r.cfg.Paths.InputDir)
	if err != nil {
		return nil, err
	}

	summary := &domain.BatchSummary{FilesSeen: len(inputFiles)}

	if len(inputFiles) == 0 {
		logger.WarnContext(ctx, "no input files found",
			slog.String("input_dir", r.cfg.Paths.InputDir),
			slog.String("pattern", "*"+config.InputExtension))
	} else {
		logger.InfoContext(ctx, "input files discovered",
			slog.String("input_dir", r.cfg.Paths.InputDir),
			slog.Int("count", len(inputFiles)))
	}

	for _, fi := range inputFiles {
		logger.InfoContext(ctx, "processing file", slog.String("file", fi.Name))

		result := dataprocessing.ExtractFile(fi.Path, logger)
		switch result.Status {
		case domain.FileFailed:
			logger.ErrorContext(ctx, "file failed, skipping",
				slog.String("file", result.File),
				slog.String("reason", result.Reason),
				slog.Any("error", result.Err))
			summary.FilesSkipped++
			continue
		case domain.FileSkipped:
			logger.WarnContext(ctx, "file skipped",
				slog.String("file", result.File),
				slog.String("reason", result.Reason))
			summary.FilesSkipped++
			continue
		}

		for _, item := range result.Items {
			row, err := writer.Append(result.Context, item)
			if err != nil {
				return summary, fmt.Errorf("failed to append row from %s: %w", result.File, err)
			}
			logger.InfoContext(ctx, "row written",
				slog.String("file", result.File),
				slog.Int("input_row", item.SourceRow),
				slog.Int("output_row", row))
		}

		summary.FilesProcessed++
		summary.RowsWritten += len(result.Items)
	}

	switch {
	case writer.Rows() > 0:
		logger.InfoContext(ctx, "saving output workbook",
			slog.Int("rows_written", writer.Rows()),
			slog.Int("files_processed", summary.FilesProcessed),
			slog.String("output", r.cfg.Paths.OutputPath))
		if err := writer.Save(r.cfg.Paths.OutputPath); err != nil {
			return summary, err
		}
		summary.OutputSaved = true
		summary.OutputPath = r.cfg.Paths.OutputPath
		logger.InfoContext(ctx, "output saved",
			slog.String("output", r.cfg.Paths.OutputPath))
	case summary.FilesProcessed > 0:
		logger.WarnContext(ctx, "files processed but no valid rows found, output not saved",
			slog.Int("files_processed", summary.FilesProcessed))
	default:
		logger.InfoContext(ctx, "nothing to process, output not saved")
	}

	return summary, nil
}
