// Package storage defines the read-only content directory abstraction.
package storage

import "time"

// FileInfo describes one Markdown source file under the content root.
type FileInfo struct {
	Path      string
	Checksum  string
	UpdatedAt time.Time
}

// Source is the interface for content file access. Documents are authored
// and removed by external file management; the store only ever reads.
type Source interface {
	// List returns metadata for every .md file under the content root.
	List() ([]FileInfo, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
}
