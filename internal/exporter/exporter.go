package exporter

import (
	"context"
	"log/slog"
	"os"

	"boxcli/internal/analytics"
	"boxcli/internal/config"
	apperrors "boxcli/internal/errors"
)

// Exporter writes result tables to the output directory as delimited text
// and tabular markdown, both at <output_dir>/<name>.{csv,md}.
type Exporter struct {
	paths  *config.Paths
	csv    *CSVWriter
	logger *slog.Logger
}

// New creates an exporter over the resolved paths.
func New(paths *config.Paths, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		paths:  paths,
		csv:    NewCSVWriter(paths),
		logger: logger,
	}
}

// ExportTable writes one result table under its name. Empty tables are
// skipped; they have nothing to encode.
func (e *Exporter) ExportTable(ctx context.Context, t analytics.Table) error {
	if t.Empty() {
		e.logger.WarnContext(ctx, "skipping export of empty result",
			slog.String("name", t.Name))
		return nil
	}
	if err := e.paths.EnsureOutputDir(); err != nil {
		return apperrors.NewExportError("prepare output directory", err)
	}

	csvPath := e.paths.ExportPath(t.Name, ".csv")
	if err := e.csv.WriteSimpleCSV(csvPath, t.Columns, t.Rows); err != nil {
		return apperrors.NewExportError("write "+csvPath, err)
	}

	mdPath := e.paths.ExportPath(t.Name, ".md")
	if err := os.WriteFile(mdPath, []byte(FormatMarkdown(t)), 0644); err != nil {
		return apperrors.NewExportError("write "+mdPath, err)
	}

	e.logger.InfoContext(ctx, "exported result",
		slog.String("name", t.Name),
		slog.Int("rows", len(t.Rows)))
	return nil
}

// ExportTables exports a sequence of tables in order.
func (e *Exporter) ExportTables(ctx context.Context, tables []analytics.Table) error {
	for _, t := range tables {
		if err := e.ExportTable(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
