package domain

import (
	"time"
)

// Film is one row of the unified movie dataset: a fact-table row joined with
// its director, genre, and language dimensions. Nullable attributes use
// pointers; a nil pointer means the source cell was absent or failed coercion.
type Film struct {
	Title      string `json:"title" csv:"title"`
	Industry   string `json:"industry,omitempty" csv:"industry"`
	LeadActor  string `json:"lead_actor_actress,omitempty" csv:"lead_actor_actress"`
	DirectorID string `json:"director_id,omitempty" csv:"director_id"`
	GenreID    string `json:"genre_id,omitempty" csv:"genre_id"`
	LanguageID string `json:"language_id,omitempty" csv:"language_id"`

	// Dimension lookups, nil when the left join found no match.
	Director *string `json:"director,omitempty" csv:"director"`
	Genre    *string `json:"genre,omitempty" csv:"genre"`
	Language *string `json:"language,omitempty" csv:"language"`

	// Monetary fields, in crores.
	BudgetCrores    *float64 `json:"budget_crores,omitempty" csv:"budget_crores"`
	WorldwideCrores *float64 `json:"worldwide_crores,omitempty" csv:"worldwide_crores"`
	OverseasCrores  *float64 `json:"overseas_crores,omitempty" csv:"overseas_crores"`
	IndiaCrores     *float64 `json:"india_crores,omitempty" csv:"india_crores"`
	FirstDayCrores  *float64 `json:"firstday_crores,omitempty" csv:"firstday_crores"`

	IMDBRating     *float64 `json:"imdb_rating,omitempty" csv:"imdb_rating"`
	RuntimeMinutes *int     `json:"runtime_minutes,omitempty" csv:"runtime_minutes"`

	ReleaseDate *time.Time `json:"release_date,omitempty" csv:"release_date"`
	// Derived from ReleaseDate; both nil when the date failed to parse.
	Year    *int    `json:"year,omitempty" csv:"year"`
	Weekday *string `json:"weekday,omitempty" csv:"weekday"`

	Verdict     *string `json:"verdict,omitempty" csv:"verdict"`
	OTTPlatform *string `json:"ott_platform,omitempty" csv:"ott_platform"`
}

// Canonical field names of the unified schema. Aggregations declare their
// requirements in these terms and the loader records which of them the
// sources actually provided.
const (
	FieldTitle           = "title"
	FieldIndustry        = "industry"
	FieldLeadActor       = "lead_actor_actress"
	FieldDirector        = "director"
	FieldGenre           = "genre"
	FieldLanguage        = "language"
	FieldBudgetCrores    = "budget_crores"
	FieldWorldwideCrores = "worldwide_crores"
	FieldOverseasCrores  = "overseas_crores"
	FieldIndiaCrores     = "india_crores"
	FieldFirstDayCrores  = "firstday_crores"
	FieldIMDBRating      = "imdb_rating"
	FieldRuntimeMinutes  = "runtime_minutes"
	FieldReleaseDate     = "release_date"
	FieldYear            = "year"
	FieldWeekday         = "weekday"
	FieldVerdict         = "verdict"
	FieldOTTPlatform     = "ott_platform"
)

// Dataset is the unified record set built once per invocation. It is
// read-only input to every aggregation; no aggregation mutates it.
type Dataset struct {
	Films []Film

	// fields holds the canonical field names the sources provided.
	// Derived fields (year, weekday) are present iff release_date is.
	fields map[string]bool
}

// NewDataset builds a Dataset from films and the set of canonical fields the
// loader resolved from the source schemas.
func NewDataset(films []Film, fields map[string]bool) *Dataset {
	if fields == nil {
		fields = make(map[string]bool)
	}
	return &Dataset{Films: films, fields: fields}
}

// HasField reports whether the sources provided the given canonical field.
func (d *Dataset) HasField(name string) bool {
	return d.fields[name]
}

// Fields returns the canonical field names present in the dataset.
func (d *Dataset) Fields() []string {
	out := make([]string, 0, len(d.fields))
	for name, ok := range d.fields {
		if ok {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of unified records.
func (d *Dataset) Len() int {
	return len(d.Films)
}

// Subset returns a dataset over a filtered slice of films carrying the same
// field presence. Used by aggregations that filter then delegate.
func (d *Dataset) Subset(films []Film) *Dataset {
	return &Dataset{Films: films, fields: d.fields}
}
