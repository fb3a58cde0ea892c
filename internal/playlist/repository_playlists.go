package playlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CollaboratorVerifier reports whether a user has been granted shared
// access to a playlist. Implemented by CollaborationRepository.
type CollaboratorVerifier interface {
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
}

// PlaylistRepository owns playlist rows and the owner/collaborator
// authorization rules around them. It never caches: every operation
// reads the store fresh.
type PlaylistRepository struct {
	db     DB
	collab CollaboratorVerifier
}

func NewPlaylistRepository(db DB, collab CollaboratorVerifier) *PlaylistRepository {
	return &PlaylistRepository{db: db, collab: collab}
}

// AddPlaylist inserts a playlist under a fresh namespaced id and
// returns the id the store echoed back.
func (r *PlaylistRepository) AddPlaylist(ctx context.Context, name, owner string) (string, error) {
	id := newID("playlist")

	var returned string
	err := r.db.QueryRow(ctx, `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, owner).Scan(&returned)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("playlist failed to be added: %w", ErrInvariant)
	}
	if err != nil {
		return "", err
	}
	if returned == "" {
		return "", fmt.Errorf("playlist failed to be added: %w", ErrInvariant)
	}
	return returned, nil
}

// GetPlaylists lists playlists the user owns or collaborates on.
// A user who is both owner and collaborator of the same playlist gets
// one row per matching relation; callers that need strict
// one-row-per-playlist output must deduplicate by id.
func (r *PlaylistRepository) GetPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []PlaylistSummary{}
	for rows.Next() {
		var pl PlaylistSummary
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	return playlists, rows.Err()
}

// DeletePlaylistByID removes a playlist. The delete doubles as the
// existence check: zero matched rows means the id was never there.
func (r *PlaylistRepository) DeletePlaylistByID(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist failed to be deleted, id not found: %w", ErrNotFound)
	}
	return nil
}

// VerifyPlaylistOwner checks that the playlist exists and is owned by
// ownerID. Pure read, no mutation.
func (r *PlaylistRepository) VerifyPlaylistOwner(ctx context.Context, id, ownerID string) error {
	var owner string
	err := r.db.QueryRow(ctx, `SELECT owner FROM playlists WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("playlist not found: %w", ErrNotFound)
	}
	if err != nil {
		return err
	}
	if owner != ownerID {
		return fmt.Errorf("you are not authorized to access this resource: %w", ErrForbidden)
	}
	return nil
}

// VerifyPlaylistAccess grants access to the owner or to an accepted
// collaborator. A missing playlist short-circuits before the
// collaboration check ever runs. When both predicates deny, the
// ownership error is the one reported to the caller.
func (r *PlaylistRepository) VerifyPlaylistAccess(ctx context.Context, id, userID string) error {
	ownErr := r.VerifyPlaylistOwner(ctx, id, userID)
	if ownErr == nil {
		return nil
	}
	if !errors.Is(ownErr, ErrForbidden) {
		// Not-found and store failures are terminal here.
		return ownErr
	}
	if err := r.collab.VerifyCollaborator(ctx, id, userID); err != nil {
		return ownErr
	}
	return nil
}

// GetUsersByUsername searches users by partial username match. Used by
// the collaborator-invite flow.
func (r *PlaylistRepository) GetUsersByUsername(ctx context.Context, username string) ([]User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, fullname
		FROM users
		WHERE username LIKE $1
	`, "%"+username+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Fullname); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
