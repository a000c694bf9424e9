package content

import "fmt"

// ErrorKind enumerates the document validation failure classes.
type ErrorKind string

const (
	DuplicateIdentifier ErrorKind = "duplicate_identifier"
	MissingTitle        ErrorKind = "missing_title"
	MissingBody         ErrorKind = "missing_body"
	MalformedCodeFence  ErrorKind = "malformed_code_fence"
	MissingPermalink    ErrorKind = "missing_permalink"
)

// ValidationError identifies the first invariant violation encountered
// while loading the store. Load fails whole-store on it: no partial or
// degraded document set is ever returned.
type ValidationError struct {
	Kind ErrorKind
	// Path is the source file (relative to the content root) that
	// violated the invariant.
	Path string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s: %s", e.Kind, e.Path)
}
