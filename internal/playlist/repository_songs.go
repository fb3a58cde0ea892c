package playlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PlaylistSongRepository manages the playlist<->song join rows.
type PlaylistSongRepository struct {
	db DB
}

func NewPlaylistSongRepository(db DB) *PlaylistSongRepository {
	return &PlaylistSongRepository{db: db}
}

// AddSongToPlaylist links a song to a playlist. The song must exist in
// the catalog; the pair is not checked for uniqueness here, so linking
// the same song twice is allowed unless the store constrains it. The
// existence check and the insert are two independent round-trips with
// no transaction between them.
func (r *PlaylistSongRepository) AddSongToPlaylist(ctx context.Context, playlistID, songID string) error {
	var exists string
	err := r.db.QueryRow(ctx, `SELECT id FROM songs WHERE id = $1`, songID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("song failed to be added: %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	var linkID string
	err = r.db.QueryRow(ctx, `
		INSERT INTO playlistsongs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, newID("playlistsong"), playlistID, songID).Scan(&linkID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("song failed to be added to playlist: %w", ErrInvariant)
	}
	if err != nil {
		return err
	}
	if linkID == "" {
		return fmt.Errorf("song failed to be added to playlist: %w", ErrInvariant)
	}
	return nil
}

// GetSongsFromPlaylist returns playlist metadata together with the
// linked songs. Two independent reads: the metadata row count is the
// existence signal, and the song list is fetched regardless of it.
func (r *PlaylistSongRepository) GetSongsFromPlaylist(ctx context.Context, playlistID string) (PlaylistWithSongs, error) {
	var out PlaylistWithSongs
	metaErr := r.db.QueryRow(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlistsongs
		INNER JOIN playlists ON playlists.id = playlistsongs.playlist_id
		INNER JOIN users ON users.id = playlists.owner
		WHERE playlistsongs.playlist_id = $1
	`, playlistID).Scan(&out.ID, &out.Name, &out.Username)
	if metaErr != nil && !errors.Is(metaErr, pgx.ErrNoRows) {
		return PlaylistWithSongs{}, metaErr
	}

	rows, err := r.db.Query(ctx, `
		SELECT songs.id, songs.title, songs.performer
		FROM playlistsongs
		INNER JOIN songs ON songs.id = playlistsongs.song_id
		WHERE playlistsongs.playlist_id = $1
	`, playlistID)
	if err != nil {
		return PlaylistWithSongs{}, err
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Performer); err != nil {
			return PlaylistWithSongs{}, err
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return PlaylistWithSongs{}, err
	}

	if errors.Is(metaErr, pgx.ErrNoRows) {
		return PlaylistWithSongs{}, fmt.Errorf("playlist not found: %w", ErrNotFound)
	}

	out.Songs = songs
	return out, nil
}

// DeleteSongFromPlaylist unlinks the exact (playlist, song) pair. A
// pair that was never linked reports an invariant failure rather than
// a missing resource: the song is simply already absent.
func (r *PlaylistSongRepository) DeleteSongFromPlaylist(ctx context.Context, playlistID, songID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM playlistsongs
		WHERE playlist_id = $1 AND song_id = $2
	`, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("song failed to be deleted: %w", ErrInvariant)
	}
	return nil
}
