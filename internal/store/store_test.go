package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxcli/pkg/contracts/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "boxoffice.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func snapshotDataset(titles ...string) *domain.Dataset {
	films := make([]domain.Film, 0, len(titles))
	for _, title := range titles {
		worldwide := 100.0
		films = append(films, domain.Film{Title: title, WorldwideCrores: &worldwide})
	}
	return domain.NewDataset(films, map[string]bool{domain.FieldTitle: true})
}

func TestStore_SaveDataset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDataset(ctx, snapshotDataset("Film A", "Film B")))

	count, err := s.CountFilms(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestStore_SaveDataset_Replaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDataset(ctx, snapshotDataset("Film A", "Film B", "Film C")))
	require.NoError(t, s.SaveDataset(ctx, snapshotDataset("Film D")))

	count, err := s.CountFilms(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestStore_SaveDataset_Empty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDataset(ctx, snapshotDataset()))

	count, err := s.CountFilms(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
