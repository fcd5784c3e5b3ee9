package infrastructure_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Agurato/filmstats/internal/infrastructure"
	"github.com/Agurato/filmstats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "films.db")

	db, err := infrastructure.NewSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	films := []model.Film{
		{Title: "Alpha", Directors: []string{"Jane Doe"}, Actors: []string{"Jane Doe", "Bob"}},
		{Title: "Apple", Directors: []string{}, Actors: []string{"Sam"}},
		{Title: "", Directors: []string{"", "Ben"}, Actors: []string{}},
	}

	t.Run("ExportFilms", func(t *testing.T) {
		require.NoError(t, db.ExportFilms(ctx, films))
		count, err := db.CountExportedFilms(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("ExportReplaces", func(t *testing.T) {
		require.NoError(t, db.ExportFilms(ctx, films[:1]))
		count, err := db.CountExportedFilms(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.NoError(t, db.ExportFilms(ctx, films))
	})

	t.Run("GetFilms", func(t *testing.T) {
		stored, err := db.GetFilms(ctx)
		require.NoError(t, err)
		assert.Equal(t, films, stored)
	})
}
