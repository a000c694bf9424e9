package content

import (
	"errors"
	"testing"

	"github.com/starford/sowilo/internal/models"
	"github.com/starford/sowilo/internal/parser"
	"github.com/starford/sowilo/internal/testutil"
)

const aboutPage = "---\nlayout: page\ntitle: About\npermalink: /about/\n---\nA few words about me.\n"

func postSource(title, body string) string {
	return "---\nlayout: post\ntitle: " + title + "\n---\n" + body
}

func loadDir(t *testing.T, files map[string]string) (*Store, error) {
	t.Helper()
	dir, src := testutil.TestContentDir(t)
	for rel, content := range files {
		testutil.WriteFile(t, dir, rel, content)
	}
	return Load(src)
}

func mustLoad(t *testing.T, files map[string]string) *Store {
	t.Helper()
	s, err := loadDir(t, files)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func validationKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return verr.Kind
}

func TestLoad_PostIdentifierFromFilename(t *testing.T) {
	s := mustLoad(t, map[string]string{
		"posts/2016-10-23-elixir-processes.md": postSource("Elixir Processes", "Processes are cheap.\n"),
	})
	doc, ok := s.FindByIdentifier("2016-10-23-elixir-processes")
	if !ok {
		t.Fatal("post not found by identifier")
	}
	if doc.Kind != models.KindPost {
		t.Errorf("kind = %q, want post", doc.Kind)
	}
	if got := doc.Date.Format("2006-01-02"); got != "2016-10-23" {
		t.Errorf("date = %q", got)
	}
	if doc.Slug != "elixir-processes" {
		t.Errorf("slug = %q", doc.Slug)
	}
}

func TestLoad_PostsOrderedByDateDescending(t *testing.T) {
	s := mustLoad(t, map[string]string{
		"posts/2016-10-23-elixir-processes.md": postSource("Elixir Processes", "Body A.\n"),
		"posts/2016-12-24-streams.md":          postSource("Streams", "Body B.\n"),
	})
	posts := s.ListPosts()
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].ID != "2016-12-24-streams" || posts[1].ID != "2016-10-23-elixir-processes" {
		t.Errorf("order = [%s, %s], want most recent first", posts[0].ID, posts[1].ID)
	}
}

func TestLoad_EqualDatesTieBrokenByIdentifier(t *testing.T) {
	s := mustLoad(t, map[string]string{
		"posts/2016-10-23-zeta.md":  postSource("Zeta", "Z.\n"),
		"posts/2016-10-23-alpha.md": postSource("Alpha", "A.\n"),
	})
	posts := s.ListPosts()
	if posts[0].ID != "2016-10-23-alpha" || posts[1].ID != "2016-10-23-zeta" {
		t.Errorf("tie order = [%s, %s], want identifier ascending", posts[0].ID, posts[1].ID)
	}
}

func TestLoad_DateMetadataOverridesFilename(t *testing.T) {
	src := "---\nlayout: post\ntitle: Streams\ndate: \"2017-01-05\"\n---\nBody.\n"
	s := mustLoad(t, map[string]string{
		"posts/2016-12-24-streams.md": src,
	})
	if _, ok := s.FindByIdentifier("2017-01-05-streams"); !ok {
		t.Error("date override not applied to identifier")
	}
}

func TestLoad_SlugMetadataOverride(t *testing.T) {
	src := "---\nlayout: post\ntitle: Ruby Delegation\nslug: delegate\n---\nBody.\n"
	s := mustLoad(t, map[string]string{
		"posts/2016-11-01-ruby-delegation.md": src,
	})
	if _, ok := s.FindByIdentifier("2016-11-01-delegate"); !ok {
		t.Error("slug override not applied to identifier")
	}
}

func TestLoad_PageByPermalink(t *testing.T) {
	s := mustLoad(t, map[string]string{
		"about.md": aboutPage,
	})
	pages := s.ListPages()
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1", len(pages))
	}
	doc, ok := s.FindByIdentifier("/about")
	if !ok {
		t.Fatal("page not found by cleaned permalink")
	}
	if doc.Kind != models.KindPage {
		t.Errorf("kind = %q, want page", doc.Kind)
	}
	if !doc.Date.IsZero() {
		t.Errorf("page has a publication date: %v", doc.Date)
	}
}

func TestLoad_MissingTitleFailsWholeStore(t *testing.T) {
	_, err := loadDir(t, map[string]string{
		"posts/2016-10-23-good.md":     postSource("Good", "Body.\n"),
		"posts/2016-10-24-no-title.md": "---\nlayout: post\n---\nBody.\n",
	})
	if err == nil {
		t.Fatal("expected load to fail")
	}
	if kind := validationKind(t, err); kind != MissingTitle {
		t.Errorf("kind = %q, want %q", kind, MissingTitle)
	}
}

func TestLoad_MissingBody(t *testing.T) {
	_, err := loadDir(t, map[string]string{
		"posts/2016-10-23-empty.md": "---\nlayout: post\ntitle: Empty\n---\n\n",
	})
	if kind := validationKind(t, err); kind != MissingBody {
		t.Errorf("kind = %q, want %q", kind, MissingBody)
	}
}

func TestLoad_MalformedCodeFence(t *testing.T) {
	body := "Intro.\n```elixir\nspawn(fn -> :ok end)\n"
	_, err := loadDir(t, map[string]string{
		"posts/2016-10-23-fence.md": postSource("Fence", body),
	})
	if kind := validationKind(t, err); kind != MalformedCodeFence {
		t.Errorf("kind = %q, want %q", kind, MalformedCodeFence)
	}
}

func TestLoad_MissingPermalink(t *testing.T) {
	_, err := loadDir(t, map[string]string{
		"about.md": "---\nlayout: page\ntitle: About\n---\nBody.\n",
	})
	if kind := validationKind(t, err); kind != MissingPermalink {
		t.Errorf("kind = %q, want %q", kind, MissingPermalink)
	}
}

func TestLoad_DuplicatePostIdentifier(t *testing.T) {
	// Same date, same derived slug via explicit override.
	a := "---\nlayout: post\ntitle: First Take\nslug: streams\n---\nBody A.\n"
	b := "---\nlayout: post\ntitle: Second Take\nslug: streams\n---\nBody B.\n"
	_, err := loadDir(t, map[string]string{
		"posts/2016-12-24-first-take.md":  a,
		"posts/2016-12-24-second-take.md": b,
	})
	if kind := validationKind(t, err); kind != DuplicateIdentifier {
		t.Errorf("kind = %q, want %q", kind, DuplicateIdentifier)
	}
}

func TestLoad_DuplicatePagePermalink(t *testing.T) {
	_, err := loadDir(t, map[string]string{
		"about.md":   aboutPage,
		"profile.md": "---\nlayout: page\ntitle: Profile\npermalink: /about/\n---\nOther body.\n",
	})
	if kind := validationKind(t, err); kind != DuplicateIdentifier {
		t.Errorf("kind = %q, want %q", kind, DuplicateIdentifier)
	}
}

func TestLoad_UnknownMetadataRetained(t *testing.T) {
	src := "---\nlayout: post\ntitle: Keywords\nkeywords: elixir, streams\ncomments: true\n---\nBody.\n"
	s := mustLoad(t, map[string]string{
		"posts/2016-12-24-keywords.md": src,
	})
	doc, _ := s.FindByIdentifier("2016-12-24-keywords")
	if doc.Metadata["keywords"] != "elixir, streams" {
		t.Errorf("keywords = %v", doc.Metadata["keywords"])
	}
	if doc.Metadata["comments"] != true {
		t.Errorf("comments = %v", doc.Metadata["comments"])
	}
}

func TestLoad_PostWithoutDateRejected(t *testing.T) {
	_, err := loadDir(t, map[string]string{
		"posts/undated.md": postSource("Undated", "Body.\n"),
	})
	if err == nil {
		t.Fatal("expected error for post without a publication date")
	}
}

func TestLoad_EncodeReload_RoundTrip(t *testing.T) {
	s := mustLoad(t, map[string]string{
		"posts/2016-12-24-streams.md": postSource("Streams", "Lazy enumerables.\n"),
	})
	orig, _ := s.FindByIdentifier("2016-12-24-streams")

	data, err := parser.Encode(orig.Metadata, orig.Body)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s2 := mustLoad(t, map[string]string{
		"posts/2016-12-24-streams.md": string(data),
	})
	doc, ok := s2.FindByIdentifier("2016-12-24-streams")
	if !ok {
		t.Fatal("reloaded document not found")
	}
	if doc.Title != orig.Title || doc.Body != orig.Body || doc.ID != orig.ID {
		t.Errorf("round-trip mismatch: got %+v, want %+v", doc, orig)
	}
}

func TestFindByIdentifier_Miss(t *testing.T) {
	s := mustLoad(t, map[string]string{"about.md": aboutPage})
	if _, ok := s.FindByIdentifier("2016-01-01-nope"); ok {
		t.Error("unexpected hit for unknown identifier")
	}
}

func TestLoad_EmptyTree(t *testing.T) {
	s := mustLoad(t, nil)
	if s.Len() != 0 || len(s.ListPosts()) != 0 || len(s.ListPages()) != 0 {
		t.Error("empty tree should load an empty store")
	}
}
