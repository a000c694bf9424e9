package index

import (
	"log/slog"
	"time"

	"github.com/starford/sowilo/internal/models"
)

// Sync brings the index in line with a validated document set:
//   - new or changed documents (checksum mismatch) are upserted
//   - rows whose documents are gone from the set are deleted
func Sync(db DocumentIndex, docs []*models.Document, logger *slog.Logger) error {
	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	now := time.Now()
	live := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		live[doc.ID] = struct{}{}

		if checksums[doc.ID] == doc.Checksum {
			continue
		}
		row := DocumentRow{
			ID:        doc.ID,
			Kind:      string(doc.Kind),
			Title:     doc.Title,
			Date:      doc.Date,
			Permalink: doc.Permalink,
			Checksum:  doc.Checksum,
			UpdatedAt: now,
		}
		if err := db.UpsertDocument(row, doc.Body); err != nil {
			logger.Warn("sync: index failed", slog.String("id", doc.ID), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("id", doc.ID))
		}
	}

	// Remove stale entries.
	for id := range checksums {
		if _, ok := live[id]; !ok {
			if err := db.DeleteDocument(id); err != nil {
				logger.Warn("sync: delete failed", slog.String("id", id), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("id", id))
			}
		}
	}

	return nil
}
