package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	playlists  *PlaylistRepository
	songs      *PlaylistSongRepository
	activities *ActivityRepository
	collabs    *CollaborationRepository
	rdb        *redis.Client
}

func NewServer(db DB, rdb *redis.Client) *Server {
	collabs := NewCollaborationRepository(db)
	return &Server{
		playlists:  NewPlaylistRepository(db, collabs),
		songs:      NewPlaylistSongRepository(db),
		activities: NewActivityRepository(db),
		collabs:    collabs,
		rdb:        rdb,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/users", s.handleSearchUsers)

	r.Group(func(r chi.Router) {
		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists", s.handleListPlaylists)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)

		r.Post("/playlists/{id}/songs", s.handleAddSong)
		r.Get("/playlists/{id}/songs", s.handleListSongs)
		r.Delete("/playlists/{id}/songs/{songId}", s.handleDeleteSong)

		r.Get("/playlists/{id}/activities", s.handleListActivities)

		r.Post("/playlists/{id}/collaborations", s.handleAddCollaboration)
		r.Delete("/playlists/{id}/collaborations/{userId}", s.handleDeleteCollaboration)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-service",
	})
}
