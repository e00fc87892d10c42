package exporter

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"boxcli/internal/analytics"
	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

// reportSections is the fixed section order of the combined document.
var reportSections = []string{
	"totals",
	"top_worldwide",
	"top_india",
	"top_overseas",
	"top_firstday",
	"year_counts",
	"language_budget",
	"language_worldwide",
	"directors_top_films",
	"directors_top_worldwide",
	"actors_top_worldwide",
	"runtime_longest",
	"runtime_shortest",
}

// reportTitle heads the combined document.
const reportTitle = "# Movie Box Office Analytics – Report\n"

// ReportBuilder runs the fixed aggregation set, exports each result, and
// assembles the exported markdown into one combined document.
type ReportBuilder struct {
	exporter *Exporter
	logger   *slog.Logger
}

// NewReportBuilder creates a report builder over an exporter.
func NewReportBuilder(exporter *Exporter, logger *slog.Logger) *ReportBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportBuilder{exporter: exporter, logger: logger}
}

// Run computes the 13 report outputs, exports each, writes the combined
// workbook, and assembles REPORT.md. The dataset is read-only, so the
// per-section exports run concurrently; each targets distinct file names.
func (b *ReportBuilder) Run(ctx context.Context, ds *domain.Dataset) error {
	tables, err := b.collect(ds)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tables {
		t := t
		g.Go(func() error {
			return b.exporter.ExportTable(gctx, t)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := b.exporter.WriteWorkbook(ctx, tables); err != nil {
		return err
	}

	return b.assemble(ctx)
}

// collect runs the report's aggregations in section order.
func (b *ReportBuilder) collect(ds *domain.Dataset) ([]analytics.Table, error) {
	var tables []analytics.Table

	totals, err := analytics.Totals(ds)
	if err != nil {
		return nil, err
	}
	tables = append(tables, totals)

	for _, metric := range analytics.ValidMetrics {
		t, err := analytics.TopFilms(ds, metric, analytics.DefaultTopN)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	years, err := analytics.CountsBy(ds, "year")
	if err != nil {
		return nil, err
	}
	tables = append(tables, years)

	langTables, err := analytics.LanguageMetrics(ds)
	if err != nil {
		return nil, err
	}
	// The report carries the two monetary language tables under its own
	// section names.
	budget, worldwide := langTables[0], langTables[1]
	budget.Name = "language_budget"
	worldwide.Name = "language_worldwide"
	tables = append(tables, budget, worldwide)

	directorTables, err := analytics.DirectorMetrics(ds)
	if err != nil {
		return nil, err
	}
	tables = append(tables, directorTables...)

	actors, err := analytics.ActorMetrics(ds, analytics.DefaultTopN)
	if err != nil {
		return nil, err
	}
	tables = append(tables, actors)

	runtimeTables, err := analytics.RuntimeExtremes(ds)
	if err != nil {
		return nil, err
	}
	tables = append(tables, runtimeTables...)

	return tables, nil
}

// assemble concatenates the exported section markdown, in fixed order, under
// one heading per section. A section whose export file does not exist is
// skipped; that protects against partial export failures.
func (b *ReportBuilder) assemble(ctx context.Context) error {
	var sections []string
	for _, name := range reportSections {
		path := b.exporter.paths.ExportPath(name, ".md")
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				b.logger.WarnContext(ctx, "report section export missing, skipping",
					slog.String("section", name),
					slog.String("path", path))
				continue
			}
			return apperrors.NewExportError("read section "+path, err)
		}
		sections = append(sections, "\n\n## "+sectionHeading(name)+"\n\n"+string(content))
	}

	if len(sections) == 0 {
		b.logger.WarnContext(ctx, "no report sections found, skipping combined document")
		return nil
	}

	path := b.exporter.paths.ReportPath()
	doc := reportTitle + strings.Join(sections, "")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return apperrors.NewExportError("write "+path, err)
	}

	b.logger.InfoContext(ctx, "assembled combined report",
		slog.String("path", path),
		slog.Int("sections", len(sections)))
	return nil
}

// sectionHeading title-cases a result name: "top_worldwide" -> "Top Worldwide".
func sectionHeading(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
