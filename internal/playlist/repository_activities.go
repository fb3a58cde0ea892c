package playlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ActivityRepository appends and reads the playlist audit trail.
// Entries are immutable once written.
type ActivityRepository struct {
	db DB
}

func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// AddActivity appends one audit entry. The song title and username are
// resolved at write time and stored as snapshots. Any action other
// than "add" is recorded as "delete".
//
// The song_id and user_id columns hold the resolved title and username
// strings, not foreign keys. The naming is historical and kept for
// wire compatibility.
func (r *ActivityRepository) AddActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	var title string
	err := r.db.QueryRow(ctx, `SELECT title FROM songs WHERE id = $1`, songID).Scan(&title)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("song not found: %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	var username string
	err = r.db.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, userID).Scan(&username)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("user not found: %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	if action != actionAdd {
		action = actionDelete
	}

	id := newID("activity")
	now := time.Now().UTC().Format(time.RFC3339)

	tag, err := r.db.Exec(ctx, `
		INSERT INTO playlist_songs_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, playlistID, title, username, action, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity failed to be added: %w", ErrInvariant)
	}
	return nil
}

// GetActivities reads all audit entries for a playlist. No ORDER BY:
// the read path does not guarantee chronological order.
func (r *ActivityRepository) GetActivities(ctx context.Context, playlistID string) (PlaylistActivities, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, song_id, action, time
		FROM playlist_songs_activities
		WHERE playlist_id = $1
	`, playlistID)
	if err != nil {
		return PlaylistActivities{}, err
	}
	defer rows.Close()

	out := PlaylistActivities{PlaylistID: playlistID, Activities: []Activity{}}
	for rows.Next() {
		var a Activity
		// user_id and song_id already hold the username/title snapshots.
		if err := rows.Scan(&a.Username, &a.Title, &a.Action, &a.Time); err != nil {
			return PlaylistActivities{}, err
		}
		out.Activities = append(out.Activities, a)
	}
	return out, rows.Err()
}
