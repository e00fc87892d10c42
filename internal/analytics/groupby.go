package analytics

import (
	"sort"
	"strconv"

	"boxcli/pkg/contracts/domain"
)

// groupCounter accumulates a count per group key. Keys emit ascending.
type groupCounter struct {
	counts map[string]int
}

func newGroupCounter() *groupCounter {
	return &groupCounter{counts: make(map[string]int)}
}

// add registers one row for a key; counted controls whether the counted
// field was non-null.
func (g *groupCounter) add(key string, counted bool) {
	if counted {
		g.counts[key]++
	} else if _, ok := g.counts[key]; !ok {
		g.counts[key] = 0
	}
}

func (g *groupCounter) sortedKeys() []string {
	keys := make([]string, 0, len(g.counts))
	for k := range g.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (g *groupCounter) table(name, keyColumn string) Table {
	rows := make([][]string, 0, len(g.counts))
	for _, key := range g.sortedKeys() {
		rows = append(rows, []string{key, formatCount(g.counts[key])})
	}
	return Table{Name: name, Columns: []string{keyColumn, "count"}, Rows: rows}
}

// groupSummer accumulates a sum per group key, ignoring nulls.
type groupSummer struct {
	sums map[string]float64
}

func newGroupSummer() *groupSummer {
	return &groupSummer{sums: make(map[string]float64)}
}

func (g *groupSummer) add(key string, value *float64) {
	g.sums[key] += deref(value)
}

// sortedKeys returns group keys ascending.
func (g *groupSummer) sortedKeys() []string {
	keys := make([]string, 0, len(g.sums))
	for k := range g.sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// keysByValueDesc returns group keys by summed value descending; ties keep
// ascending key order, so the result is deterministic.
func (g *groupSummer) keysByValueDesc() []string {
	keys := g.sortedKeys()
	sort.SliceStable(keys, func(a, b int) bool {
		return g.sums[keys[a]] > g.sums[keys[b]]
	})
	return keys
}

func (g *groupSummer) table(name, keyColumn, valueColumn string, keys []string) Table {
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, formatFloat(g.sums[key])})
	}
	return Table{Name: name, Columns: []string{keyColumn, valueColumn}, Rows: rows}
}

func yearKey(year int) string {
	return strconv.Itoa(year)
}

// LanguageMetrics returns three group-by-language tables: summed budget,
// summed worldwide collection, and the count of non-null directors.
func LanguageMetrics(ds *domain.Dataset) ([]Table, error) {
	err := requireFields(ds, "language_metrics",
		domain.FieldLanguage,
		domain.FieldBudgetCrores,
		domain.FieldWorldwideCrores,
		domain.FieldDirector,
	)
	if err != nil {
		return nil, err
	}

	budget := newGroupSummer()
	worldwide := newGroupSummer()
	directors := newGroupCounter()
	for _, f := range ds.Films {
		if f.Language == nil {
			continue
		}
		budget.add(*f.Language, f.BudgetCrores)
		worldwide.add(*f.Language, f.WorldwideCrores)
		directors.add(*f.Language, f.Director != nil)
	}

	return []Table{
		budget.table("budget_by_language", "language", "budget_crores", budget.sortedKeys()),
		worldwide.table("worldwide_by_language", "language", "worldwide_crores", worldwide.sortedKeys()),
		directors.table("directors_by_language", "language"),
	}, nil
}

// DirectorMetrics returns the top 10 directors by film count and the top 10
// by summed worldwide collection. The second table is empty when the
// worldwide field is absent from the schema.
func DirectorMetrics(ds *domain.Dataset) ([]Table, error) {
	if err := requireFields(ds, "director_metrics", domain.FieldDirector); err != nil {
		return nil, err
	}

	counts := newGroupCounter()
	worldwide := newGroupSummer()
	for _, f := range ds.Films {
		if f.Director == nil {
			continue
		}
		counts.add(*f.Director, f.Title != "")
		worldwide.add(*f.Director, f.WorldwideCrores)
	}

	countKeys := counts.sortedKeys()
	sort.SliceStable(countKeys, func(a, b int) bool {
		return counts.counts[countKeys[a]] > counts.counts[countKeys[b]]
	})
	countKeys = headKeys(countKeys, DefaultTopN)

	byFilms := Table{
		Name:    "directors_top_films",
		Columns: []string{"director", "films"},
	}
	for _, key := range countKeys {
		byFilms.Rows = append(byFilms.Rows, []string{key, formatCount(counts.counts[key])})
	}

	if !ds.HasField(domain.FieldWorldwideCrores) {
		return []Table{byFilms, emptyTable("directors_top_worldwide")}, nil
	}

	byWorldwide := worldwide.table(
		"directors_top_worldwide", "director", "worldwide_crores",
		headKeys(worldwide.keysByValueDesc(), DefaultTopN))

	return []Table{byFilms, byWorldwide}, nil
}

// ActorMetrics groups by the lead-actor field, sums worldwide collection,
// and returns the top n actors (default 10). The field is resolved from its
// accepted spellings at load time; its absence is a schema error.
func ActorMetrics(ds *domain.Dataset, n int) (Table, error) {
	err := requireFields(ds, "actor_metrics",
		domain.FieldLeadActor, domain.FieldWorldwideCrores)
	if err != nil {
		return Table{}, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	worldwide := newGroupSummer()
	for _, f := range ds.Films {
		if f.LeadActor == "" {
			continue
		}
		worldwide.add(f.LeadActor, f.WorldwideCrores)
	}

	return worldwide.table(
		"actors_top_worldwide", "lead_actor_actress", "worldwide_crores",
		headKeys(worldwide.keysByValueDesc(), n)), nil
}

// LanguageYearCount groups by (language, year) and counts titles. Pairs emit
// ascending by language, then year.
func LanguageYearCount(ds *domain.Dataset) (Table, error) {
	err := requireFields(ds, "language_year_count",
		domain.FieldLanguage, domain.FieldYear)
	if err != nil {
		return Table{}, err
	}

	type pair struct {
		language string
		year     int
	}
	counts := make(map[pair]int)
	for _, f := range ds.Films {
		if f.Language == nil || f.Year == nil {
			continue
		}
		key := pair{*f.Language, *f.Year}
		if f.Title != "" {
			counts[key]++
		} else if _, ok := counts[key]; !ok {
			counts[key] = 0
		}
	}

	pairs := make([]pair, 0, len(counts))
	for p := range counts {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].language != pairs[b].language {
			return pairs[a].language < pairs[b].language
		}
		return pairs[a].year < pairs[b].year
	})

	table := Table{
		Name:    "language_year_counts",
		Columns: []string{"language", "year", "count"},
	}
	for _, p := range pairs {
		table.Rows = append(table.Rows, []string{
			p.language, yearKey(p.year), formatCount(counts[p]),
		})
	}
	return table, nil
}

// OTTMetrics returns group-by-ott counts and group-by-(language, ott)
// counts. When the ott field is absent from the schema both results are
// empty tables, not an error.
func OTTMetrics(ds *domain.Dataset) ([]Table, error) {
	if !ds.HasField(domain.FieldOTTPlatform) {
		return []Table{emptyTable("by_ott"), emptyTable("by_language_ott")}, nil
	}
	if err := requireFields(ds, "ott_metrics", domain.FieldLanguage); err != nil {
		return nil, err
	}

	byOTT := newGroupCounter()
	type pair struct {
		language string
		ott      string
	}
	byLangOTT := make(map[pair]int)
	for _, f := range ds.Films {
		if f.OTTPlatform == nil {
			continue
		}
		byOTT.add(*f.OTTPlatform, f.Title != "")
		if f.Language == nil {
			continue
		}
		key := pair{*f.Language, *f.OTTPlatform}
		if f.Title != "" {
			byLangOTT[key]++
		} else if _, ok := byLangOTT[key]; !ok {
			byLangOTT[key] = 0
		}
	}

	pairs := make([]pair, 0, len(byLangOTT))
	for p := range byLangOTT {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].language != pairs[b].language {
			return pairs[a].language < pairs[b].language
		}
		return pairs[a].ott < pairs[b].ott
	})

	langOTT := Table{
		Name:    "by_language_ott",
		Columns: []string{"language", "ott_platform", "count"},
	}
	for _, p := range pairs {
		langOTT.Rows = append(langOTT.Rows, []string{
			p.language, p.ott, formatCount(byLangOTT[p]),
		})
	}

	return []Table{byOTT.table("by_ott", "ott_platform"), langOTT}, nil
}

// headKeys truncates a key slice to at most n entries.
func headKeys(keys []string, n int) []string {
	if n >= 0 && len(keys) > n {
		return keys[:n]
	}
	return keys
}
