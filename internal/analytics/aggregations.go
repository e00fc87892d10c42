package analytics

import (
	"strings"

	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

// Defaults for ranking queries.
const (
	DefaultTopN         = 10
	DefaultIndustryTopN = 7
	extremesN           = 5
)

// ValidGroupKeys are the keys accepted by CountsBy.
var ValidGroupKeys = []string{"year", "weekday"}

// Totals returns one row holding the film count and the sum of every
// monetary field. Nulls are excluded from sums but the count covers every
// record with a non-null title.
func Totals(ds *domain.Dataset) (Table, error) {
	err := requireFields(ds, "totals",
		domain.FieldTitle,
		domain.FieldBudgetCrores,
		domain.FieldWorldwideCrores,
		domain.FieldFirstDayCrores,
		domain.FieldOverseasCrores,
		domain.FieldIndiaCrores,
	)
	if err != nil {
		return Table{}, err
	}

	var films int
	var budget, worldwide, firstday, overseas, india float64
	for _, f := range ds.Films {
		if f.Title != "" {
			films++
		}
		budget += deref(f.BudgetCrores)
		worldwide += deref(f.WorldwideCrores)
		firstday += deref(f.FirstDayCrores)
		overseas += deref(f.OverseasCrores)
		india += deref(f.IndiaCrores)
	}

	return Table{
		Name: "totals",
		Columns: []string{
			"total_films",
			"total_budget_crores",
			"total_worldwide_crores",
			"total_firstday_crores",
			"total_overseas_crores",
			"total_india_crores",
		},
		Rows: [][]string{{
			formatCount(films),
			formatFloat(budget),
			formatFloat(worldwide),
			formatFloat(firstday),
			formatFloat(overseas),
			formatFloat(india),
		}},
	}, nil
}

// TopFilms ranks titles by one monetary metric, descending, ties in source
// order, nulls last, truncated to n (default 10).
func TopFilms(ds *domain.Dataset, metric string, n int) (Table, error) {
	field, err := MetricField(metric)
	if err != nil {
		return Table{}, err
	}
	if err := requireFields(ds, "top_films", domain.FieldTitle, field); err != nil {
		return Table{}, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	idx := sortDescNullsLast(ds.Len(), func(i int) *float64 {
		return metricValue(ds.Films[i], field)
	})
	idx = head(idx, n)

	rows := make([][]string, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, []string{
			ds.Films[i].Title,
			formatDecimal(metricValue(ds.Films[i], field)),
		})
	}

	return Table{
		Name:    "top_" + strings.ToLower(metric),
		Columns: []string{"title", field},
		Rows:    rows,
	}, nil
}

// CountsBy groups films by a derived release-date field (year or weekday)
// and counts non-null titles per group. Rows whose grouping key is null are
// excluded. Group keys emit in ascending order.
func CountsBy(ds *domain.Dataset, by string) (Table, error) {
	switch strings.ToLower(by) {
	case "year":
		if err := requireFields(ds, "counts_by", domain.FieldYear); err != nil {
			return Table{}, err
		}
		groups := newGroupCounter()
		for _, f := range ds.Films {
			if f.Year == nil {
				continue
			}
			groups.add(yearKey(*f.Year), f.Title != "")
		}
		return groups.table("year_counts", "year"), nil
	case "weekday":
		if err := requireFields(ds, "counts_by", domain.FieldWeekday); err != nil {
			return Table{}, err
		}
		groups := newGroupCounter()
		for _, f := range ds.Films {
			if f.Weekday == nil {
				continue
			}
			groups.add(*f.Weekday, f.Title != "")
		}
		return groups.table("weekday_counts", "weekday"), nil
	default:
		return Table{}, apperrors.NewArgumentError("by", by, ValidGroupKeys)
	}
}

// RuntimeExtremes returns the five longest and five shortest runtimes by
// title. Null runtimes sort last in both views.
func RuntimeExtremes(ds *domain.Dataset) ([]Table, error) {
	err := requireFields(ds, "runtime_extremes", domain.FieldTitle, domain.FieldRuntimeMinutes)
	if err != nil {
		return nil, err
	}

	runtime := func(i int) *float64 {
		if ds.Films[i].RuntimeMinutes == nil {
			return nil
		}
		v := float64(*ds.Films[i].RuntimeMinutes)
		return &v
	}

	build := func(name string, idx []int) Table {
		rows := make([][]string, 0, len(idx))
		for _, i := range idx {
			rows = append(rows, []string{
				ds.Films[i].Title,
				formatMinutes(ds.Films[i].RuntimeMinutes),
			})
		}
		return Table{Name: name, Columns: []string{"title", "runtime_minutes"}, Rows: rows}
	}

	longest := build("runtime_longest", head(sortDescNullsLast(ds.Len(), runtime), extremesN))
	shortest := build("runtime_shortest", head(sortAscNullsLast(ds.Len(), runtime), extremesN))
	return []Table{longest, shortest}, nil
}

// IndustryTop filters on the industry field (case-insensitive exact match)
// and delegates to TopFilms. n defaults to 7.
func IndustryTop(ds *domain.Dataset, industry, metric string, n int) (Table, error) {
	if err := requireFields(ds, "industry_top", domain.FieldIndustry); err != nil {
		return Table{}, err
	}
	if n <= 0 {
		n = DefaultIndustryTopN
	}

	var filtered []domain.Film
	for _, f := range ds.Films {
		if strings.EqualFold(f.Industry, industry) {
			filtered = append(filtered, f)
		}
	}

	table, err := TopFilms(ds.Subset(filtered), metric, n)
	if err != nil {
		return Table{}, err
	}
	table.Name = strings.ToLower(industry) + "_" + table.Name
	return table, nil
}

// NotOverseas returns exactly the titles whose overseas collection is null
// or exactly zero.
func NotOverseas(ds *domain.Dataset) (Table, error) {
	err := requireFields(ds, "not_overseas", domain.FieldTitle, domain.FieldOverseasCrores)
	if err != nil {
		return Table{}, err
	}

	var rows [][]string
	for _, f := range ds.Films {
		if f.OverseasCrores == nil || *f.OverseasCrores == 0 {
			rows = append(rows, []string{f.Title})
		}
	}

	return Table{Name: "not_overseas", Columns: []string{"title"}, Rows: rows}, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
