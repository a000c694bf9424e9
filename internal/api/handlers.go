package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/contentservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *contentservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *contentservice.Service) *Handler {
	return &Handler{svc: svc}
}

// documentID extracts the document identifier from the URL (everything
// after /documents/). Page identifiers are permalinks and may contain
// slashes; encoded slashes from generated clients are also accepted.
func documentID(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListPosts handles GET /posts: the full post sequence, most recent first.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.svc.ListPosts(r.Context())
	writeJSON(w, http.StatusOK, PostListResponse{Posts: posts, Total: len(posts)})
}

// ListPages handles GET /pages.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages := h.svc.ListPages(r.Context())
	writeJSON(w, http.StatusOK, PageListResponse{Pages: pages, Total: len(pages)})
}

// GetDocument handles GET /documents/*.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := documentID(r)
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("document id is required"))
		return
	}
	doc, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Page identifiers start with a slash; retry with one so
			// /documents/about resolves the page at /about.
			if doc2, err2 := h.svc.GetDocument(r.Context(), "/"+id); err2 == nil {
				writeJSON(w, http.StatusOK, doc2)
				return
			}
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get document failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Search handles GET /search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	hits, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	results := make([]SearchResult, len(hits))
	for i, hit := range hits {
		results[i] = SearchResult{ID: hit.ID, Kind: hit.Kind, Title: hit.Title, Snippet: hit.Snippet}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
