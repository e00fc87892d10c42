package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"boxcli/internal/config"
	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

// Accepted source spellings per join key and descriptive column, resolved
// once at load time. Order is acceptance order.
var (
	directorKeyAliases  = []string{"director_id", "directorid"}
	genreKeyAliases     = []string{"genreid", "genre_id"}
	languageKeyAliases  = []string{"languageid", "language_id"}
	leadActorAliases    = []string{"lead_actor_actress", "lead_actor/actress"}
	directorNameAliases = []string{"director", "director_name"}
	genreNameAliases    = []string{"genre", "genere", "genre_name"}
	languageNameAliases = []string{"language", "language_name"}
)

// Source column names of the fact table after normalization.
const (
	colTitle       = "title"
	colIndustry    = "industry"
	colBudget      = "budget_in_crores"
	colWorldwide   = "worldwide_collection_in_crores"
	colOverseas    = "overseas_collection_in_crores"
	colIndia       = "india_gross_collection_in_crores"
	colFirstDay    = "first_day_collection_worldwide_in_crores"
	colIMDBRating  = "imdb_rating"
	colRuntime     = "runtime_mins"
	colReleaseDate = "release_date"
	colVerdict     = "verdict"
	colOTTPlatform = "ott_platform"
)

// Loader reads the four tabular sources and produces the unified record set.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// dimension is one loaded lookup table: key -> descriptive value.
type dimension struct {
	name    string
	lookup  map[string]string
	present bool
}

// Load reads the fact table and the three dimension tables, left-joins them
// into one Film per fact row, and coerces types. Every fact row survives;
// unmatched dimension lookups yield nil descriptive fields. A duplicate key
// in a dimension table aborts the load.
func (l *Loader) Load(ctx context.Context, paths *config.Paths) (*domain.Dataset, error) {
	fact, err := ReadCSVTable(paths.FactPath)
	if err != nil {
		return nil, err
	}
	l.logger.InfoContext(ctx, "loaded fact table",
		slog.String("path", paths.FactPath),
		slog.Int("rows", fact.Len()))

	director, err := l.loadDimension(ctx, paths.DirectorPath, "director", directorKeyAliases, directorNameAliases)
	if err != nil {
		return nil, err
	}
	genre, err := l.loadDimension(ctx, paths.GenrePath, "genre", genreKeyAliases, genreNameAliases)
	if err != nil {
		return nil, err
	}
	language, err := l.loadDimension(ctx, paths.LanguagePath, "language", languageKeyAliases, languageNameAliases)
	if err != nil {
		return nil, err
	}

	return l.join(ctx, fact, director, genre, language)
}

// loadDimension reads one lookup table and builds its key -> value map.
// Duplicate keys are a fan-out risk and fail loudly rather than silently
// duplicating fact rows.
func (l *Loader) loadDimension(ctx context.Context, path, name string, keyAliases, nameAliases []string) (*dimension, error) {
	table, err := ReadCSVTable(path)
	if err != nil {
		return nil, err
	}

	keyCol, keyOK := table.ResolveColumn(keyAliases...)
	nameCol, nameOK := table.ResolveColumn(nameAliases...)
	if !keyOK || !nameOK {
		l.logger.WarnContext(ctx, "dimension table misses key or name column, lookups will be null",
			slog.String("dimension", name),
			slog.String("path", path))
		return &dimension{name: name}, nil
	}

	lookup := make(map[string]string, table.Len())
	for i := 0; i < table.Len(); i++ {
		key := strings.TrimSpace(table.Value(i, keyCol))
		if key == "" {
			continue
		}
		if _, dup := lookup[key]; dup {
			return nil, apperrors.NewJoinFanOutError(name, key)
		}
		lookup[key] = strings.TrimSpace(table.Value(i, nameCol))
	}

	l.logger.InfoContext(ctx, "loaded dimension table",
		slog.String("dimension", name),
		slog.String("path", path),
		slog.Int("keys", len(lookup)))

	return &dimension{name: name, lookup: lookup, present: true}, nil
}

// join produces exactly one Film per fact row.
func (l *Loader) join(ctx context.Context, fact *RawTable, director, genre, language *dimension) (*domain.Dataset, error) {
	directorKey, hasDirectorKey := fact.ResolveColumn(directorKeyAliases...)
	genreKey, hasGenreKey := fact.ResolveColumn(genreKeyAliases...)
	languageKey, hasLanguageKey := fact.ResolveColumn(languageKeyAliases...)
	leadActorCol, hasLeadActor := fact.ResolveColumn(leadActorAliases...)

	fields := map[string]bool{
		domain.FieldTitle:           fact.HasColumn(colTitle),
		domain.FieldIndustry:        fact.HasColumn(colIndustry),
		domain.FieldLeadActor:       hasLeadActor,
		domain.FieldBudgetCrores:    fact.HasColumn(colBudget),
		domain.FieldWorldwideCrores: fact.HasColumn(colWorldwide),
		domain.FieldOverseasCrores:  fact.HasColumn(colOverseas),
		domain.FieldIndiaCrores:     fact.HasColumn(colIndia),
		domain.FieldFirstDayCrores:  fact.HasColumn(colFirstDay),
		domain.FieldIMDBRating:      fact.HasColumn(colIMDBRating),
		domain.FieldRuntimeMinutes:  fact.HasColumn(colRuntime),
		domain.FieldReleaseDate:     fact.HasColumn(colReleaseDate),
		domain.FieldYear:            fact.HasColumn(colReleaseDate),
		domain.FieldWeekday:         fact.HasColumn(colReleaseDate),
		domain.FieldVerdict:         fact.HasColumn(colVerdict),
		domain.FieldOTTPlatform:     fact.HasColumn(colOTTPlatform),
		domain.FieldDirector:        hasDirectorKey && director.present,
		domain.FieldGenre:           hasGenreKey && genre.present,
		domain.FieldLanguage:        hasLanguageKey && language.present,
	}

	films := make([]domain.Film, 0, fact.Len())
	for i := 0; i < fact.Len(); i++ {
		film := domain.Film{
			Title:     strings.TrimSpace(fact.Value(i, colTitle)),
			Industry:  strings.TrimSpace(fact.Value(i, colIndustry)),
			LeadActor: strings.TrimSpace(fact.Value(i, leadActorCol)),
		}

		if hasDirectorKey {
			film.DirectorID = strings.TrimSpace(fact.Value(i, directorKey))
			film.Director = lookupDimension(director, film.DirectorID)
		}
		if hasGenreKey {
			film.GenreID = strings.TrimSpace(fact.Value(i, genreKey))
			film.Genre = lookupDimension(genre, film.GenreID)
		}
		if hasLanguageKey {
			film.LanguageID = strings.TrimSpace(fact.Value(i, languageKey))
			film.Language = lookupDimension(language, film.LanguageID)
		}

		film.BudgetCrores = parseDecimal(fact.Value(i, colBudget))
		film.WorldwideCrores = parseDecimal(fact.Value(i, colWorldwide))
		film.OverseasCrores = parseDecimal(fact.Value(i, colOverseas))
		film.IndiaCrores = parseDecimal(fact.Value(i, colIndia))
		film.FirstDayCrores = parseDecimal(fact.Value(i, colFirstDay))
		film.IMDBRating = parseDecimal(fact.Value(i, colIMDBRating))
		film.RuntimeMinutes = parseMinutes(fact.Value(i, colRuntime))

		film.ReleaseDate = parseDate(fact.Value(i, colReleaseDate))
		film.Year, film.Weekday = deriveDateParts(film.ReleaseDate)

		if fields[domain.FieldVerdict] {
			film.Verdict = cleanVerdict(fact.Value(i, colVerdict))
		}
		if fields[domain.FieldOTTPlatform] {
			film.OTTPlatform = cleanOTTPlatform(fact.Value(i, colOTTPlatform))
		}

		films = append(films, film)
	}

	l.logger.InfoContext(ctx, "built unified record set",
		slog.Int("films", len(films)),
		slog.Int("fields", len(fields)))

	return domain.NewDataset(films, fields), nil
}

// lookupDimension resolves a key against a dimension, nil when unmatched.
func lookupDimension(dim *dimension, key string) *string {
	if !dim.present || key == "" {
		return nil
	}
	value, ok := dim.lookup[key]
	if !ok {
		return nil
	}
	return &value
}
