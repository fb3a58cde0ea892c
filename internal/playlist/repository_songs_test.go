package playlist

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestAddSongToPlaylist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		mock.ExpectQuery("SELECT id FROM songs").
			WithArgs("song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("song-1"))
		mock.ExpectQuery("INSERT INTO playlistsongs").
			WithArgs(pgxmock.AnyArg(), "playlist-1", "song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("playlistsong-1"))

		assert.NoError(t, repo.AddSongToPlaylist(context.Background(), "playlist-1", "song-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SongMissingNoInsert", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		// Only the existence check is expected; an attempted insert
		// would fail the unmatched-expectation check.
		mock.ExpectQuery("SELECT id FROM songs").
			WithArgs("song-ghost").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		err := repo.AddSongToPlaylist(context.Background(), "playlist-1", "song-ghost")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertNoIDEchoed", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		mock.ExpectQuery("SELECT id FROM songs").
			WithArgs("song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("song-1"))
		mock.ExpectQuery("INSERT INTO playlistsongs").
			WithArgs(pgxmock.AnyArg(), "playlist-1", "song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		err := repo.AddSongToPlaylist(context.Background(), "playlist-1", "song-1")
		assert.ErrorIs(t, err, ErrInvariant)
	})
}

func TestGetSongsFromPlaylist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		mock.ExpectQuery("INNER JOIN playlists ON playlists.id = playlistsongs.playlist_id").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}).
				AddRow("playlist-1", "Chill Mix", "johndoe"))
		mock.ExpectQuery("INNER JOIN songs ON songs.id = playlistsongs.song_id").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "performer"}).
				AddRow("song-1", "Kupu-Kupu", "Melly").
				AddRow("song-2", "Centini", "Ki Ageng"))

		detail, err := repo.GetSongsFromPlaylist(context.Background(), "playlist-1")
		assert.NoError(t, err)
		assert.Equal(t, PlaylistWithSongs{
			ID:       "playlist-1",
			Name:     "Chill Mix",
			Username: "johndoe",
			Songs: []Song{
				{ID: "song-1", Title: "Kupu-Kupu", Performer: "Melly"},
				{ID: "song-2", Title: "Centini", Performer: "Ki Ageng"},
			},
		}, detail)
	})

	t.Run("MissingPlaylistStillFetchesSongs", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		mock.ExpectQuery("INNER JOIN playlists ON playlists.id = playlistsongs.playlist_id").
			WithArgs("playlist-ghost").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}))
		mock.ExpectQuery("INNER JOIN songs ON songs.id = playlistsongs.song_id").
			WithArgs("playlist-ghost").
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "performer"}))

		_, err := repo.GetSongsFromPlaylist(context.Background(), "playlist-ghost")
		assert.ErrorIs(t, err, ErrNotFound)
		// The song list read runs even though the playlist is missing.
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteSongFromPlaylist(t *testing.T) {
	t.Run("Linked", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		mock.ExpectExec("DELETE FROM playlistsongs").
			WithArgs("playlist-1", "song-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteSongFromPlaylist(context.Background(), "playlist-1", "song-1"))
	})

	t.Run("NeverLinked", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewPlaylistSongRepository(mock)

		mock.ExpectExec("DELETE FROM playlistsongs").
			WithArgs("playlist-1", "song-9").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteSongFromPlaylist(context.Background(), "playlist-1", "song-9")
		assert.ErrorIs(t, err, ErrInvariant)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
