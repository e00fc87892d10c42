package exporter

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxcli/pkg/contracts/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func reportDataset() *domain.Dataset {
	fields := make(map[string]bool)
	for _, f := range []string{
		domain.FieldTitle, domain.FieldLeadActor, domain.FieldDirector,
		domain.FieldLanguage, domain.FieldBudgetCrores,
		domain.FieldWorldwideCrores, domain.FieldOverseasCrores,
		domain.FieldIndiaCrores, domain.FieldFirstDayCrores,
		domain.FieldRuntimeMinutes, domain.FieldReleaseDate,
		domain.FieldYear, domain.FieldWeekday,
	} {
		fields[f] = true
	}
	films := []domain.Film{
		{
			Title: "Film A", LeadActor: "Actor One",
			Director: sptr("Director One"), Language: sptr("Hindi"),
			BudgetCrores: fptr(50), WorldwideCrores: fptr(150.5),
			OverseasCrores: fptr(30), IndiaCrores: fptr(120.5), FirstDayCrores: fptr(12),
			RuntimeMinutes: iptr(152), Year: iptr(2020), Weekday: sptr("Monday"),
		},
		{
			Title: "Film B", LeadActor: "Actor Two",
			Director: sptr("Director Two"), Language: sptr("Telugu"),
			BudgetCrores: fptr(80), WorldwideCrores: fptr(200),
			OverseasCrores: fptr(0), IndiaCrores: fptr(200), FirstDayCrores: fptr(20),
			RuntimeMinutes: iptr(170), Year: iptr(2021), Weekday: sptr("Friday"),
		},
	}
	return domain.NewDataset(films, fields)
}

func TestReportBuilder_Run(t *testing.T) {
	e, paths := testExporter(t)
	builder := NewReportBuilder(e, nil)

	require.NoError(t, builder.Run(context.Background(), reportDataset()))

	// Every section exported to both encodings.
	for _, name := range reportSections {
		assert.FileExists(t, paths.ExportPath(name, ".csv"), name)
		assert.FileExists(t, paths.ExportPath(name, ".md"), name)
	}
	assert.FileExists(t, paths.WorkbookPath())

	data, err := os.ReadFile(paths.ReportPath())
	require.NoError(t, err)
	doc := string(data)

	assert.True(t, strings.HasPrefix(doc, reportTitle))

	// Sections appear in fixed order under one heading each.
	last := -1
	for _, name := range reportSections {
		pos := strings.Index(doc, "## "+sectionHeading(name))
		assert.Greater(t, pos, last, name)
		last = pos
	}
}

func TestReportBuilder_Run_Idempotent(t *testing.T) {
	e, paths := testExporter(t)
	builder := NewReportBuilder(e, nil)
	ds := reportDataset()

	require.NoError(t, builder.Run(context.Background(), ds))
	first, err := os.ReadFile(paths.ReportPath())
	require.NoError(t, err)

	require.NoError(t, builder.Run(context.Background(), ds))
	second, err := os.ReadFile(paths.ReportPath())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportBuilder_Assemble_SkipsMissingSection(t *testing.T) {
	e, paths := testExporter(t)
	builder := NewReportBuilder(e, nil)

	require.NoError(t, builder.Run(context.Background(), reportDataset()))
	require.NoError(t, os.Remove(paths.ExportPath("year_counts", ".md")))

	require.NoError(t, builder.assemble(context.Background()))
	data, err := os.ReadFile(paths.ReportPath())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "## Year Counts")
	assert.Contains(t, string(data), "## Totals")
}

func TestSectionHeading(t *testing.T) {
	assert.Equal(t, "Top Worldwide", sectionHeading("top_worldwide"))
	assert.Equal(t, "Directors Top Films", sectionHeading("directors_top_films"))
	assert.Equal(t, "Totals", sectionHeading("totals"))
}
