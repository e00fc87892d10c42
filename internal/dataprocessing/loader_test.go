package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxcli/internal/config"
	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func testPaths(dir string) *config.Paths {
	return config.NewPaths(config.InputConfig{
		Dir:      dir,
		Fact:     "Boxoffice_Fact.csv",
		Director: "Director_dim.csv",
		Genre:    "Genere_dim.csv",
		Language: "Language_dim.csv",
	}, filepath.Join(dir, "out"))
}

func writeDefaultSources(t *testing.T, dir string) {
	t.Helper()
	writeSource(t, dir, "Boxoffice_Fact.csv",
		"Title,DirectorID,GenreID,LanguageID,Industry,Lead Actor/Actress,Budget in Crores,Worldwide Collection in Crores,Overseas Collection in Crores,India Gross Collection in Crores,First Day Collection Worldwide in Crores,IMDB Rating,Runtime Mins,Release Date,Verdict,OTT Platform\n"+
			"Film A,D1,G1,L1,Bollywood,Actor One,50,150.5,30,120.5,12,7.8,152,2020-03-16,Hit:,netflix\n"+
			"Film B,D2,G2,L2,Tollywood,Actor Two,80,200,0,200,20,8.1,170,2021-07-09,Blockbuster,PRIME VIDEO\n"+
			"Film C,D9,G1,L1,Bollywood,Actor One,not known,,abc,90,,6.5,,bad-date,,\n")
	writeSource(t, dir, "Director_dim.csv",
		"Director_ID,Director\nD1,Director One\nD2,Director Two\n")
	writeSource(t, dir, "Genere_dim.csv",
		"GenreID,Genre\nG1,Action\nG2,Drama\n")
	writeSource(t, dir, "Language_dim.csv",
		"LanguageID,Language\nL1,Hindi\nL2,Telugu\n")
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSources(t, dir)

	loader := NewLoader(slog.Default())
	ds, err := loader.Load(context.Background(), testPaths(dir))
	require.NoError(t, err)

	// Exactly one unified record per fact row.
	require.Equal(t, 3, ds.Len())

	a := ds.Films[0]
	assert.Equal(t, "Film A", a.Title)
	assert.Equal(t, "Bollywood", a.Industry)
	assert.Equal(t, "Actor One", a.LeadActor)
	require.NotNil(t, a.Director)
	assert.Equal(t, "Director One", *a.Director)
	require.NotNil(t, a.Genre)
	assert.Equal(t, "Action", *a.Genre)
	require.NotNil(t, a.Language)
	assert.Equal(t, "Hindi", *a.Language)
	require.NotNil(t, a.WorldwideCrores)
	assert.Equal(t, 150.5, *a.WorldwideCrores)
	require.NotNil(t, a.Year)
	assert.Equal(t, 2020, *a.Year)
	require.NotNil(t, a.Weekday)
	assert.Equal(t, "Monday", *a.Weekday)
	require.NotNil(t, a.Verdict)
	assert.Equal(t, "Hit", *a.Verdict)
	require.NotNil(t, a.OTTPlatform)
	assert.Equal(t, "Netflix", *a.OTTPlatform)

	// Unmatched dimension keys survive as null descriptive fields.
	c := ds.Films[2]
	assert.Nil(t, c.Director)
	require.NotNil(t, c.Genre)
	assert.Equal(t, "Action", *c.Genre)

	// Failed coercions recover to null, never an error.
	assert.Nil(t, c.BudgetCrores)
	assert.Nil(t, c.WorldwideCrores)
	assert.Nil(t, c.OverseasCrores)
	assert.Nil(t, c.RuntimeMinutes)
	assert.Nil(t, c.ReleaseDate)
	assert.Nil(t, c.Year)
	assert.Nil(t, c.Weekday)

	// Field presence reflects the source schema.
	assert.True(t, ds.HasField(domain.FieldTitle))
	assert.True(t, ds.HasField(domain.FieldOTTPlatform))
	assert.True(t, ds.HasField(domain.FieldLeadActor))
	assert.True(t, ds.HasField(domain.FieldLanguage))
}

func TestLoader_Load_MissingSource(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSources(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "Language_dim.csv")))

	loader := NewLoader(nil)
	_, err := loader.Load(context.Background(), testPaths(dir))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInput))
	assert.Contains(t, err.Error(), "Language_dim.csv")
}

func TestLoader_Load_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSources(t, dir)
	writeSource(t, dir, "Director_dim.csv", "Director_ID,Director\nD1,\"unterminated\n")

	loader := NewLoader(nil)
	_, err := loader.Load(context.Background(), testPaths(dir))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInput))
}

func TestLoader_Load_DuplicateDimensionKey(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSources(t, dir)
	writeSource(t, dir, "Director_dim.csv",
		"Director_ID,Director\nD1,Director One\nD1,Director One Again\n")

	loader := NewLoader(nil)
	_, err := loader.Load(context.Background(), testPaths(dir))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeJoinFanOut))
	assert.Contains(t, err.Error(), `"D1"`)
}

func TestLoader_Load_DimensionWithoutNameColumn(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSources(t, dir)
	writeSource(t, dir, "Genere_dim.csv", "GenreID,Something Else\nG1,x\n")

	loader := NewLoader(nil)
	ds, err := loader.Load(context.Background(), testPaths(dir))
	require.NoError(t, err)

	assert.False(t, ds.HasField(domain.FieldGenre))
	for _, film := range ds.Films {
		assert.Nil(t, film.Genre)
	}
}

func TestLoader_Load_AcceptsNormalizedLeadActorSpelling(t *testing.T) {
	dir := t.TempDir()
	writeDefaultSources(t, dir)
	writeSource(t, dir, "Boxoffice_Fact.csv",
		"Title,DirectorID,GenreID,LanguageID,Lead_Actor_Actress\nFilm A,D1,G1,L1,Actor One\n")

	loader := NewLoader(nil)
	ds, err := loader.Load(context.Background(), testPaths(dir))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.True(t, ds.HasField(domain.FieldLeadActor))
	assert.Equal(t, "Actor One", ds.Films[0].LeadActor)
}

func TestReadCSVTable_BOMHeader(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bom.csv", "\uFEFFTitle,Year\nFilm A,2020\n")

	table, err := ReadCSVTable(filepath.Join(dir, "bom.csv"))
	require.NoError(t, err)
	assert.True(t, table.HasColumn("title"))
	assert.Equal(t, "Film A", table.Value(0, "title"))
}
