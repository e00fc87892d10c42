package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"boxcli/internal/analytics"
	"boxcli/internal/config"
	"boxcli/internal/dataprocessing"
	apperrors "boxcli/internal/errors"
	"boxcli/internal/exporter"
	"boxcli/internal/infrastructure"
	"boxcli/internal/store"
	"boxcli/internal/validation"
	"boxcli/pkg/contracts/domain"
)

// validOperations is the fixed command catalogue, default "report".
var validOperations = []string{
	"totals", "top-films", "counts-by", "language-metrics",
	"director-metrics", "actor-metrics", "runtime", "industry-top",
	"not-overseas", "language-year", "ott-metrics", "snapshot", "report",
}

func main() {
	os.Exit(run())
}

func run() int {
	inputDir := flag.String("input-dir", "", "directory containing the four source CSV files")
	factFile := flag.String("fact", "", "fact table file name")
	directorFile := flag.String("director", "", "director dimension file name")
	genreFile := flag.String("genre", "", "genre dimension file name")
	languageFile := flag.String("language", "", "language dimension file name")
	outputDir := flag.String("output-dir", "", "directory for exported results")
	export := flag.Bool("export", false, "also write <output-dir>/<name>.csv and .md")
	metric := flag.String("metric", "worldwide", "ranking metric: worldwide|india|overseas|firstday")
	n := flag.Int("n", 0, "row limit for ranking queries")
	by := flag.String("by", "year", "counts-by grouping key: year|weekday")
	industry := flag.String("industry", "Bollywood", "industry filter for industry-top")
	dbPath := flag.String("db", "", "snapshot database path")
	flag.Parse()

	operation := strings.ToLower(flag.Arg(0))
	if operation == "" {
		operation = "report"
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	applyFlags(cfg, *inputDir, *factFile, *directorFile, *genreFile, *languageFile, *outputDir, *dbPath)
	resolveLogPath(cfg)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	paths := config.NewPaths(cfg.Input, cfg.Output.Dir)

	logger.InfoContext(ctx, "starting analytics run",
		slog.String("operation", operation),
		slog.String("input_dir", paths.InputDir),
		slog.String("output_dir", paths.OutputDir))

	if !isValidOperation(operation) {
		logger.ErrorContext(ctx, "unknown operation",
			slog.String("operation", operation),
			slog.Any("valid", validOperations))
		fmt.Fprintf(os.Stderr, "unknown operation %q, valid operations are %s\n",
			operation, strings.Join(validOperations, ", "))
		return 1
	}

	validator := validation.NewFileValidator(infrastructure.LoggerWithContext(ctx))
	if err := validator.ValidateSources(paths); err != nil {
		logger.ErrorContext(ctx, "source validation failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	loader := dataprocessing.NewLoader(logger)
	ds, err := loader.Load(ctx, paths)
	if err != nil {
		logger.ErrorContext(ctx, "load failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app := &application{
		cfg:      cfg,
		paths:    paths,
		logger:   logger,
		exporter: exporter.New(paths, logger),
		export:   *export,
	}

	if err := app.dispatch(ctx, operation, ds, *metric, *n, *by, *industry); err != nil {
		logger.ErrorContext(ctx, "operation failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// application bundles the collaborators of one run.
type application struct {
	cfg      *config.Config
	paths    *config.Paths
	logger   *slog.Logger
	exporter *exporter.Exporter
	export   bool
}

// dispatch runs one named operation against the loaded dataset.
func (a *application) dispatch(ctx context.Context, operation string, ds *domain.Dataset, metric string, n int, by, industry string) error {
	switch operation {
	case "totals":
		t, err := analytics.Totals(ds)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "top-films":
		t, err := analytics.TopFilms(ds, metric, n)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "counts-by":
		t, err := analytics.CountsBy(ds, by)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "language-metrics":
		tables, err := analytics.LanguageMetrics(ds)
		if err != nil {
			return err
		}
		return a.emitAll(ctx, tables)

	case "director-metrics":
		tables, err := analytics.DirectorMetrics(ds)
		if err != nil {
			return err
		}
		return a.emitAll(ctx, tables)

	case "actor-metrics":
		t, err := analytics.ActorMetrics(ds, n)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "runtime":
		tables, err := analytics.RuntimeExtremes(ds)
		if err != nil {
			return err
		}
		return a.emitAll(ctx, tables)

	case "industry-top":
		t, err := analytics.IndustryTop(ds, industry, metric, n)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "not-overseas":
		t, err := analytics.NotOverseas(ds)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "language-year":
		t, err := analytics.LanguageYearCount(ds)
		if err != nil {
			return err
		}
		return a.emit(ctx, t)

	case "ott-metrics":
		tables, err := analytics.OTTMetrics(ds)
		if err != nil {
			return err
		}
		return a.emitAll(ctx, tables)

	case "snapshot":
		return a.snapshot(ctx, ds)

	case "report":
		builder := exporter.NewReportBuilder(a.exporter, a.logger)
		if err := builder.Run(ctx, ds); err != nil {
			return err
		}
		fmt.Printf("Report generated under: %s\n", a.paths.OutputDir)
		return nil

	default:
		return apperrors.NewArgumentError("operation", operation, validOperations)
	}
}

// emit prints one result table and exports it when requested.
func (a *application) emit(ctx context.Context, t analytics.Table) error {
	fmt.Print(exporter.FormatText(t))
	if a.export && !t.Empty() {
		return a.exporter.ExportTable(ctx, t)
	}
	return nil
}

// emitAll prints each table under its own heading, then exports the whole
// sequence when requested.
func (a *application) emitAll(ctx context.Context, tables []analytics.Table) error {
	for _, t := range tables {
		fmt.Printf("\n## %s\n\n", t.Name)
		fmt.Print(exporter.FormatText(t))
	}
	if a.export {
		return a.exporter.ExportTables(ctx, tables)
	}
	return nil
}

// snapshot persists the unified dataset to the SQLite store.
func (a *application) snapshot(ctx context.Context, ds *domain.Dataset) error {
	s, err := store.Open(a.cfg.Output.SnapshotPath, a.logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SaveDataset(ctx, ds); err != nil {
		return err
	}
	fmt.Printf("Snapshot written to: %s\n", a.cfg.Output.SnapshotPath)
	return nil
}

// applyFlags lets command-line flags override the loaded configuration.
func applyFlags(cfg *config.Config, inputDir, fact, director, genre, language, outputDir, dbPath string) {
	if inputDir != "" {
		cfg.Input.Dir = inputDir
	}
	if fact != "" {
		cfg.Input.Fact = fact
	}
	if director != "" {
		cfg.Input.Director = director
	}
	if genre != "" {
		cfg.Input.Genre = genre
	}
	if language != "" {
		cfg.Input.Language = language
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if dbPath != "" {
		cfg.Output.SnapshotPath = dbPath
	}
}

// resolveLogPath routes a bare log file name into the logs directory.
// Configured paths that already carry a directory are left alone.
func resolveLogPath(cfg *config.Config) {
	if filepath.Dir(cfg.Logging.FilePath) == "." {
		cfg.Logging.FilePath = config.GetLogPath(cfg.Logging.FilePath)
	}
}

func isValidOperation(op string) bool {
	for _, v := range validOperations {
		if v == op {
			return true
		}
	}
	return false
}
