package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleCreatePlaylist creates a new playlist owned by the current user.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := r.Header.Get("X-User-Id")
	if owner == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || len(body.Name) > 200 {
		writeError(w, http.StatusBadRequest, "name must be between 1 and 200 characters")
		return
	}

	id, err := s.playlists.AddPlaylist(ctx, body.Name, owner)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type": "playlist.created",
		"payload": map[string]any{
			"playlistId": id,
			"name":       body.Name,
			"owner":      owner,
		},
	})

	writeJSON(w, http.StatusCreated, map[string]string{"playlistId": id})
}

// handleListPlaylists returns playlists the user owns or collaborates on.
func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlists, err := s.playlists.GetPlaylists(ctx, userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"playlists": playlists})
}

// handleDeletePlaylist deletes a playlist. Only the owner can delete.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
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

	if err := s.playlists.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.playlists.DeletePlaylistByID(ctx, playlistID); err != nil {
		writeDomainError(w, err)
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type":    "playlist.deleted",
		"payload": map[string]any{"playlistId": playlistID},
	})

	w.WriteHeader(http.StatusNoContent)
}

// handleSearchUsers looks up users by partial username, for picking
// collaborators.
func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := strings.TrimSpace(r.URL.Query().Get("username"))

	users, err := s.playlists.GetUsersByUsername(ctx, username)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}
