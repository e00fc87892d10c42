package analytics

import (
	"math"
	"strconv"

	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

// Table is one result of an aggregation: named, ordered columns and
// pre-formatted cells. Null values render as empty cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table carries no columns and no rows.
func (t Table) Empty() bool {
	return len(t.Columns) == 0 && len(t.Rows) == 0
}

// emptyTable is the result of an aggregation whose inputs are absent by
// contract (not an error), e.g. ott_metrics without an ott column.
func emptyTable(name string) Table {
	return Table{Name: name}
}

// formatDecimal renders a nullable decimal. Integral values keep one decimal
// place ("200" sums render as "200.0") so exported tables match the
// dataset's established presentation.
func formatDecimal(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCount renders a row count.
func formatCount(n int) string {
	return strconv.Itoa(n)
}

// formatMinutes renders a nullable integer minute count.
func formatMinutes(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// requireFields checks an aggregation's declared field dependencies up front
// and fails with a schema error listing exactly what is missing.
func requireFields(ds *domain.Dataset, aggregation string, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if !ds.HasField(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewSchemaError(aggregation, missing)
	}
	return nil
}
