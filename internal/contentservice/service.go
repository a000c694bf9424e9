// Package contentservice coordinates the immutable store snapshot, the
// content source, and the search index behind one query surface.
package contentservice

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/content"
	"github.com/starford/sowilo/internal/index"
	"github.com/starford/sowilo/internal/models"
	"github.com/starford/sowilo/internal/storage"
)

// Service serves read queries against the most recent valid store
// snapshot. The snapshot itself is immutable; Reload swaps in a freshly
// loaded one atomically, so readers always observe a complete, validated
// document set.
type Service struct {
	src    storage.Source
	db     index.DocumentIndex
	logger *slog.Logger

	snapshot atomic.Pointer[content.Store]
}

// NewService creates a new content service. Call Load before serving.
func NewService(src storage.Source, db index.DocumentIndex, logger *slog.Logger) *Service {
	return &Service{src: src, db: db, logger: logger}
}

// Load performs the initial fail-fast load: a validation failure is
// returned to the caller and no snapshot is installed.
func (s *Service) Load() error {
	store, err := content.Load(s.src)
	if err != nil {
		return err
	}
	if err := index.Sync(s.db, store.All(), s.logger); err != nil {
		return err
	}
	s.snapshot.Store(store)
	s.logger.Info("content loaded",
		slog.Int("posts", len(store.ListPosts())),
		slog.Int("pages", len(store.ListPages())))
	return nil
}

// Reload builds a fresh snapshot from the source. When the new tree fails
// validation the previous snapshot stays in place, so consumers are never
// exposed to a malformed document set; the error is returned for the
// caller to surface.
func (s *Service) Reload() error {
	store, err := content.Load(s.src)
	if err != nil {
		s.logger.Warn("reload rejected, keeping last valid snapshot",
			slog.String("error", err.Error()))
		return err
	}
	if err := index.Sync(s.db, store.All(), s.logger); err != nil {
		return err
	}
	s.snapshot.Store(store)
	s.logger.Info("content reloaded",
		slog.Int("posts", len(store.ListPosts())),
		slog.Int("pages", len(store.ListPages())))
	return nil
}

// Store returns the current snapshot, or nil before the first Load.
func (s *Service) Store() *content.Store {
	return s.snapshot.Load()
}

// ListPosts returns post summaries, most recent publication date first.
func (s *Service) ListPosts(_ context.Context) []models.DocumentSummary {
	return summaries(s.Store().ListPosts())
}

// ListPages returns page summaries.
func (s *Service) ListPages(_ context.Context) []models.DocumentSummary {
	return summaries(s.Store().ListPages())
}

// GetDocument returns the full document for an identifier.
func (s *Service) GetDocument(_ context.Context, id string) (*models.Document, error) {
	doc, ok := s.Store().FindByIdentifier(id)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return doc, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

func summaries(docs []*models.Document) []models.DocumentSummary {
	out := make([]models.DocumentSummary, len(docs))
	for i, d := range docs {
		out[i] = d.Summary()
	}
	return out
}
