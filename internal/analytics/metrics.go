package analytics

import (
	"sort"
	"strings"

	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

// ValidMetrics are the ranking metrics accepted by top-film queries, each
// mapped to its monetary field.
var ValidMetrics = []string{"worldwide", "india", "overseas", "firstday"}

var metricFields = map[string]string{
	"worldwide": domain.FieldWorldwideCrores,
	"india":     domain.FieldIndiaCrores,
	"overseas":  domain.FieldOverseasCrores,
	"firstday":  domain.FieldFirstDayCrores,
}

// MetricField maps a metric name to its canonical monetary field. An
// unsupported metric is an argument error naming it and the valid set.
func MetricField(metric string) (string, error) {
	field, ok := metricFields[strings.ToLower(metric)]
	if !ok {
		return "", apperrors.NewArgumentError("metric", metric, ValidMetrics)
	}
	return field, nil
}

// metricValue reads the monetary field behind a canonical field name.
func metricValue(f domain.Film, field string) *float64 {
	switch field {
	case domain.FieldWorldwideCrores:
		return f.WorldwideCrores
	case domain.FieldIndiaCrores:
		return f.IndiaCrores
	case domain.FieldOverseasCrores:
		return f.OverseasCrores
	case domain.FieldFirstDayCrores:
		return f.FirstDayCrores
	case domain.FieldBudgetCrores:
		return f.BudgetCrores
	default:
		return nil
	}
}

// sortDescNullsLast stable-sorts indices 0..n-1 by a nullable value,
// descending, nulls after every non-null. Ties keep source order.
func sortDescNullsLast(n int, value func(int) *float64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := value(idx[a]), value(idx[b])
		if va == nil {
			return false
		}
		if vb == nil {
			return true
		}
		return *va > *vb
	})
	return idx
}

// sortAscNullsLast is the ascending counterpart; nulls still sort last.
func sortAscNullsLast(n int, value func(int) *float64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := value(idx[a]), value(idx[b])
		if va == nil {
			return false
		}
		if vb == nil {
			return true
		}
		return *va < *vb
	})
	return idx
}

// head truncates an index slice to at most n entries.
func head(idx []int, n int) []int {
	if n >= 0 && len(idx) > n {
		return idx[:n]
	}
	return idx
}
