// Package models defines the domain types for Sowilo.
package models

import "time"

// Kind distinguishes the two document variants.
type Kind string

const (
	// KindPost is a dated, chronologically ordered document.
	KindPost Kind = "post"
	// KindPage is an undated document addressed by an explicit permalink.
	KindPage Kind = "page"
)

// Document represents one authored content unit: a blog post or a
// standalone page, parsed from a Markdown source file.
type Document struct {
	// ID is the unique identifier within the store. For posts it is
	// "YYYY-MM-DD-<slug>"; for pages it is the cleaned permalink.
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	Title string `json:"title"`
	Slug  string `json:"slug,omitempty"`

	// Date is the publication date. Set for posts, zero for pages.
	Date time.Time `json:"date,omitempty"`

	// Permalink is the explicit routing path. Set for pages only;
	// post URLs are the renderer's concern.
	Permalink string `json:"permalink,omitempty"`

	// Metadata holds the raw front-matter mapping. Unknown keys are
	// retained and passed through to the renderer untouched.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Body is the raw Markdown content following the metadata block.
	Body string `json:"body"`

	// SourcePath is the file path relative to the content root.
	SourcePath string `json:"source_path"`

	// Checksum is the hex-encoded SHA-256 of the source bytes.
	Checksum string `json:"checksum"`
}

// IsPost reports whether the document is a dated post.
func (d *Document) IsPost() bool { return d.Kind == KindPost }

// DocumentSummary is a lightweight representation returned by list operations.
type DocumentSummary struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date,omitempty"`
	Permalink string    `json:"permalink,omitempty"`
}

// Summary returns the list representation of the document.
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        d.ID,
		Kind:      d.Kind,
		Title:     d.Title,
		Date:      d.Date,
		Permalink: d.Permalink,
	}
}
