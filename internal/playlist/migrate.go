package playlist

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AutoMigrate creates the table set on startup. Users and songs are
// owned by other services; the tables exist here so the joins and the
// referential checks have something to land on in a standalone
// deployment.
func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS users (
          id       TEXT PRIMARY KEY,
          username TEXT NOT NULL UNIQUE,
          password TEXT NOT NULL,
          fullname TEXT NOT NULL
      )
    `); err != nil {
		log.Printf("playlist-service: migrate users: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS songs (
          id        TEXT PRIMARY KEY,
          title     TEXT NOT NULL,
          year      INT NOT NULL,
          genre     TEXT NOT NULL,
          performer TEXT NOT NULL,
          duration  INT,
          album_id  TEXT
      )
    `); err != nil {
		log.Printf("playlist-service: migrate songs: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id    TEXT PRIMARY KEY,
          name  TEXT NOT NULL,
          owner TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
      )
    `); err != nil {
		log.Printf("playlist-service: migrate playlists: %v", err)
		return err
	}

	// No uniqueness on (playlist_id, song_id): attaching the same song
	// twice is allowed at this layer.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlistsongs (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE
      )
    `); err != nil {
		log.Printf("playlist-service: migrate playlistsongs: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS collaborations (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
          UNIQUE (playlist_id, user_id)
      )
    `); err != nil {
		log.Printf("playlist-service: migrate collaborations: %v", err)
		return err
	}

	// song_id and user_id hold the denormalized title/username
	// snapshots, not foreign keys.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_songs_activities (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL,
          user_id     TEXT NOT NULL,
          action      TEXT NOT NULL,
          time        TEXT NOT NULL
      )
    `); err != nil {
		log.Printf("playlist-service: migrate activities: %v", err)
		return err
	}

	return nil
}
