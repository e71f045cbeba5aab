package repository

import (
	"context"
	"regexp"
	"testing"

	"chorus/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistRepository_AddSong_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "playlist_songs"`).
		WillReturnError(assertableUniqueViolation{})
	mock.ExpectRollback()

	err := repo.AddSong(ctx, 1, 2, 1)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestPlaylistRepository_RemoveSong_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "playlist_songs" WHERE playlist_id = $1 AND song_id = $2`)).
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.RemoveSong(ctx, 1, 99)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestPlaylistRepository_MaxPosition(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(position), 0) FROM "playlist_songs" WHERE playlist_id = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))

	max, err := repo.MaxPosition(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, max)
}
