package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

func TestLanguageMetrics(t *testing.T) {
	tables, err := LanguageMetrics(testDataset(sampleFilms()))
	require.NoError(t, err)
	require.Len(t, tables, 3)

	budget, worldwide, directors := tables[0], tables[1], tables[2]

	assert.Equal(t, "budget_by_language", budget.Name)
	assert.Equal(t, [][]string{{"Hindi", "50.0"}, {"Telugu", "80.0"}}, budget.Rows)

	assert.Equal(t, "worldwide_by_language", worldwide.Name)
	assert.Equal(t, [][]string{{"Hindi", "150.5"}, {"Telugu", "200.0"}}, worldwide.Rows)

	assert.Equal(t, "directors_by_language", directors.Name)
	assert.Equal(t, []string{"language", "count"}, directors.Columns)
	assert.Equal(t, [][]string{{"Hindi", "2"}, {"Telugu", "1"}}, directors.Rows)
}

func TestLanguageMetrics_SchemaError(t *testing.T) {
	_, err := LanguageMetrics(testDataset(sampleFilms(), domain.FieldLanguage))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
	assert.Contains(t, err.Error(), "language")
}

func TestDirectorMetrics(t *testing.T) {
	tables, err := DirectorMetrics(testDataset(sampleFilms()))
	require.NoError(t, err)
	require.Len(t, tables, 2)

	byFilms, byWorldwide := tables[0], tables[1]

	assert.Equal(t, "directors_top_films", byFilms.Name)
	assert.Equal(t, [][]string{
		{"Director One", "2"},
		{"Director Two", "1"},
	}, byFilms.Rows)

	assert.Equal(t, "directors_top_worldwide", byWorldwide.Name)
	assert.Equal(t, [][]string{
		{"Director Two", "200.0"},
		{"Director One", "150.5"},
	}, byWorldwide.Rows)
}

func TestDirectorMetrics_WorldwideAbsent(t *testing.T) {
	tables, err := DirectorMetrics(testDataset(sampleFilms(), domain.FieldWorldwideCrores))
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.NotEmpty(t, tables[0].Rows)
	assert.True(t, tables[1].Empty())
}

func TestDirectorMetrics_TruncatesToTen(t *testing.T) {
	films := make([]domain.Film, 0, 12)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		director := name
		films = append(films, domain.Film{Title: "Film " + name, Director: &director})
	}

	tables, err := DirectorMetrics(testDataset(films))
	require.NoError(t, err)
	assert.Len(t, tables[0].Rows, DefaultTopN)
	assert.Len(t, tables[1].Rows, DefaultTopN)
}

func TestActorMetrics(t *testing.T) {
	table, err := ActorMetrics(testDataset(sampleFilms()), 10)
	require.NoError(t, err)

	assert.Equal(t, "actors_top_worldwide", table.Name)
	assert.Equal(t, []string{"lead_actor_actress", "worldwide_crores"}, table.Columns)
	assert.Equal(t, [][]string{
		{"Actor Two", "200.0"},
		{"Actor One", "150.5"}, // Film C's null worldwide adds nothing
	}, table.Rows)
}

func TestActorMetrics_FieldAbsent(t *testing.T) {
	_, err := ActorMetrics(testDataset(sampleFilms(), domain.FieldLeadActor), 10)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
	assert.Contains(t, err.Error(), "lead_actor_actress")
}

func TestLanguageYearCount(t *testing.T) {
	table, err := LanguageYearCount(testDataset(sampleFilms()))
	require.NoError(t, err)

	assert.Equal(t, []string{"language", "year", "count"}, table.Columns)
	assert.Equal(t, [][]string{
		{"Hindi", "2020", "2"},
		{"Telugu", "2021", "1"},
	}, table.Rows)
}

func TestOTTMetrics(t *testing.T) {
	tables, err := OTTMetrics(testDataset(sampleFilms()))
	require.NoError(t, err)
	require.Len(t, tables, 2)

	byOTT, byLangOTT := tables[0], tables[1]
	assert.Equal(t, [][]string{
		{"Netflix", "2"},
		{"Prime video", "1"},
	}, byOTT.Rows)
	assert.Equal(t, [][]string{
		{"Hindi", "Netflix", "2"},
		{"Telugu", "Prime video", "1"},
	}, byLangOTT.Rows)
}

func TestOTTMetrics_FieldAbsent(t *testing.T) {
	tables, err := OTTMetrics(testDataset(sampleFilms(), domain.FieldOTTPlatform))
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// Two empty result tables, not an error.
	assert.True(t, tables[0].Empty())
	assert.True(t, tables[1].Empty())
}
