package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleAddCollaboration grants a user shared access. Only the owner
// manages collaborators.
func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.UserID = strings.TrimSpace(body.UserID)
	if body.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := s.playlists.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	id, err := s.collabs.AddCollaboration(ctx, playlistID, body.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type": "playlist.collaborator_added",
		"payload": map[string]any{
			"playlistId": playlistID,
			"userId":     body.UserID,
		},
	})

	writeJSON(w, http.StatusCreated, map[string]string{"collaborationId": id})
}

// handleDeleteCollaboration revokes a grant. Owner only.
func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")
	targetUserID := chi.URLParam(r, "userId")
	if playlistID == "" || targetUserID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id or user id")
		return
	}

	if err := s.playlists.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.collabs.DeleteCollaboration(ctx, playlistID, targetUserID); err != nil {
		writeDomainError(w, err)
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type": "playlist.collaborator_removed",
		"payload": map[string]any{
			"playlistId": playlistID,
			"userId":     targetUserID,
		},
	})

	w.WriteHeader(http.StatusNoContent)
}
