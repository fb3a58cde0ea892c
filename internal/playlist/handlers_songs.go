package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleAddSong attaches a song to a playlist and records the audit
// entry. Owner or collaborator only.
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
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
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.SongID = strings.TrimSpace(body.SongID)
	if body.SongID == "" {
		writeError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.songs.AddSongToPlaylist(ctx, playlistID, body.SongID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.activities.AddActivity(ctx, playlistID, body.SongID, userID, actionAdd); err != nil {
		writeDomainError(w, err)
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type": "playlist.song_added",
		"payload": map[string]any{
			"playlistId": playlistID,
			"songId":     body.SongID,
		},
	})

	writeJSON(w, http.StatusCreated, map[string]string{
		"playlistId": playlistID,
		"songId":     body.SongID,
	})
}

// handleListSongs returns playlist metadata plus the linked songs.
func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
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

	if err := s.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	detail, err := s.songs.GetSongsFromPlaylist(ctx, playlistID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"playlist": detail})
}

// handleDeleteSong unlinks a song and records the audit entry.
func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")
	songID := chi.URLParam(r, "songId")
	if playlistID == "" || songID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist or song id")
		return
	}

	if err := s.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.songs.DeleteSongFromPlaylist(ctx, playlistID, songID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.activities.AddActivity(ctx, playlistID, songID, userID, actionDelete); err != nil {
		writeDomainError(w, err)
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type": "playlist.song_deleted",
		"payload": map[string]any{
			"playlistId": playlistID,
			"songId":     songID,
		},
	})

	w.WriteHeader(http.StatusNoContent)
}

// handleListActivities returns the playlist's audit trail. Poll-only;
// entries are never pushed.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
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

	if err := s.playlists.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	activities, err := s.activities.GetActivities(ctx, playlistID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}
