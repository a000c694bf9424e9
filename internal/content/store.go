// Package content implements the validated, immutable document store.
//
// Load parses every Markdown file under a source, applies the document
// invariants (non-empty title and body, balanced code fences, unique
// identifiers, page permalinks), and fails fast on the first violation.
// The resulting Store is read-only for its lifetime; content edits are
// picked up by constructing a fresh Store from the source.
package content

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/starford/sowilo/internal/checksum"
	"github.com/starford/sowilo/internal/models"
	"github.com/starford/sowilo/internal/parser"
	"github.com/starford/sowilo/internal/slug"
	"github.com/starford/sowilo/internal/storage"
)

// postDirs are the top-level directories whose files are classified as
// dated posts. Everything else under the root is a standalone page.
var postDirs = map[string]struct{}{
	"posts":  {},
	"_posts": {},
}

// datePrefixRe matches the YYYY-MM-DD- filename prefix of post sources.
var datePrefixRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// Store is an immutable snapshot of the validated document set.
type Store struct {
	posts []*models.Document // date descending, identifier ascending on ties
	pages []*models.Document
	byID  map[string]*models.Document
}

// Load reads every .md file from the source, parses and validates it, and
// returns the assembled store. The first invariant violation aborts the
// whole load with a *ValidationError naming the offending file.
func Load(src storage.Source) (*Store, error) {
	files, err := src.List()
	if err != nil {
		return nil, err
	}

	// Deterministic first-violation reporting.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	s := &Store{byID: make(map[string]*models.Document, len(files))}
	for _, fi := range files {
		data, err := src.Read(fi.Path)
		if err != nil {
			return nil, err
		}
		doc, err := buildDocument(fi.Path, data)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byID[doc.ID]; dup {
			return nil, &ValidationError{Kind: DuplicateIdentifier, Path: fi.Path}
		}
		s.byID[doc.ID] = doc
		if doc.IsPost() {
			s.posts = append(s.posts, doc)
		} else {
			s.pages = append(s.pages, doc)
		}
	}

	sort.Slice(s.posts, func(i, j int) bool {
		a, b := s.posts[i], s.posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID < b.ID
	})

	return s, nil
}

// buildDocument parses one source file and applies the per-document
// invariants in order: title, body, code fences, then kind-specific
// required fields.
func buildDocument(srcPath string, data []byte) (*models.Document, error) {
	res, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", srcPath, err)
	}

	if strings.TrimSpace(res.Title) == "" {
		return nil, &ValidationError{Kind: MissingTitle, Path: srcPath}
	}
	if strings.TrimSpace(res.Body) == "" {
		return nil, &ValidationError{Kind: MissingBody, Path: srcPath}
	}
	if !parser.BalancedFences(res.Body) {
		return nil, &ValidationError{Kind: MalformedCodeFence, Path: srcPath}
	}

	doc := &models.Document{
		Title:      res.Title,
		Metadata:   res.Metadata,
		Body:       res.Body,
		SourcePath: srcPath,
		Checksum:   checksum.Sum(data),
	}

	if isPostPath(srcPath) {
		return buildPost(doc, srcPath, res)
	}
	return buildPage(doc, srcPath, res)
}

// buildPost derives the publication date and slug, then the identifier
// "YYYY-MM-DD-<slug>".
func buildPost(doc *models.Document, srcPath string, res *parser.Result) (*models.Document, error) {
	doc.Kind = models.KindPost

	stem := strings.TrimSuffix(path.Base(srcPath), ".md")
	var dateStr, nameSlug string
	if m := datePrefixRe.FindStringSubmatch(stem); m != nil {
		dateStr, nameSlug = m[1], m[2]
	}
	// An explicit date key overrides the filename prefix. YAML may hand
	// us either a string or an already-resolved timestamp.
	switch v := res.Metadata["date"].(type) {
	case string:
		if v != "" {
			dateStr = v
		}
	case time.Time:
		dateStr = v.Format("2006-01-02")
	}
	if dateStr == "" {
		return nil, fmt.Errorf("content: %s: post has no publication date", srcPath)
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("content: %s: bad publication date %q: %w", srcPath, dateStr, err)
	}
	doc.Date = date

	// Slug precedence: explicit metadata override, filename stem,
	// normalized title.
	doc.Slug = parser.MetaString(res.Metadata, "slug")
	if doc.Slug == "" {
		doc.Slug = nameSlug
	}
	if doc.Slug == "" {
		doc.Slug = slug.Normalize(res.Title)
	}
	if doc.Slug == "" {
		return nil, fmt.Errorf("content: %s: cannot derive a slug from title %q", srcPath, res.Title)
	}

	doc.ID = date.Format("2006-01-02") + "-" + doc.Slug
	return doc, nil
}

// buildPage requires an explicit permalink, which doubles as the identifier.
func buildPage(doc *models.Document, srcPath string, res *parser.Result) (*models.Document, error) {
	doc.Kind = models.KindPage

	permalink := parser.MetaString(res.Metadata, "permalink")
	if strings.TrimSpace(permalink) == "" {
		return nil, &ValidationError{Kind: MissingPermalink, Path: srcPath}
	}
	if !strings.HasPrefix(permalink, "/") {
		permalink = "/" + permalink
	}
	doc.Permalink = path.Clean(permalink)
	doc.ID = doc.Permalink
	return doc, nil
}

func isPostPath(srcPath string) bool {
	dir, _, ok := strings.Cut(srcPath, "/")
	if !ok {
		return false
	}
	_, found := postDirs[dir]
	return found
}

// ListPosts returns the posts ordered by publication date descending,
// ties broken by identifier ascending.
func (s *Store) ListPosts() []*models.Document {
	out := make([]*models.Document, len(s.posts))
	copy(out, s.posts)
	return out
}

// ListPages returns the standalone pages. Pages are independent of each
// other; callers must not rely on the order.
func (s *Store) ListPages() []*models.Document {
	out := make([]*models.Document, len(s.pages))
	copy(out, s.pages)
	return out
}

// FindByIdentifier looks up a document by its unique identifier.
func (s *Store) FindByIdentifier(id string) (*models.Document, bool) {
	doc, ok := s.byID[id]
	return doc, ok
}

// All returns every document in the store, posts first.
func (s *Store) All() []*models.Document {
	out := make([]*models.Document, 0, len(s.posts)+len(s.pages))
	out = append(out, s.posts...)
	out = append(out, s.pages...)
	return out
}

// Len returns the number of documents in the store.
func (s *Store) Len() int {
	return len(s.byID)
}
