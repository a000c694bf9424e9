package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/sowilo/internal/contentservice"
)

// NewRouter creates a chi router with all content API routes mounted.
// The API is read-only: authoring happens through the file system, never
// over HTTP. authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *contentservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/posts", h.ListPosts)
	r.Get("/pages", h.ListPages)
	r.Get("/documents/*", h.GetDocument)
	r.Get("/search", h.Search)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
