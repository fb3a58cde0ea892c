package playlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CollaborationRepository manages shared-access grants and answers the
// collaborator membership checks consumed by PlaylistRepository.
type CollaborationRepository struct {
	db DB
}

func NewCollaborationRepository(db DB) *CollaborationRepository {
	return &CollaborationRepository{db: db}
}

// AddCollaboration grants a user shared access to a playlist. The user
// must exist; the playlist reference is enforced by the store.
func (r *CollaborationRepository) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	var exists string
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, userID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("user not found: %w", ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	var id string
	err = r.db.QueryRow(ctx, `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, newID("collab"), playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("collaboration failed to be added: %w", ErrInvariant)
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteCollaboration revokes a grant.
func (r *CollaborationRepository) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collaboration failed to be deleted: %w", ErrInvariant)
	}
	return nil
}

// VerifyCollaborator confirms the user holds a shared-access grant on
// the playlist.
func (r *CollaborationRepository) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	var id string
	err := r.db.QueryRow(ctx, `
		SELECT id FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("you are not a collaborator on this playlist: %w", ErrForbidden)
	}
	return err
}
