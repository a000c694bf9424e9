package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/sowilo/internal/contentservice"
	"github.com/starford/sowilo/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	dir, src := testutil.TestContentDir(t)
	testutil.WriteFile(t, dir, "posts/2016-10-23-elixir-processes.md",
		"---\nlayout: post\ntitle: Elixir Processes\n---\nProcesses are cheap.\n")
	testutil.WriteFile(t, dir, "about.md",
		"---\nlayout: page\ntitle: About\npermalink: /about/\n---\nA few words.\n")

	db := testutil.TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := contentservice.NewService(src, db, logger)
	if err := svc.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	return New(svc)
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return tc.Text
}

func TestListPostsTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.listPosts(context.Background(), toolRequest("list_posts", nil))
	if err != nil {
		t.Fatalf("listPosts: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "2016-10-23-elixir-processes") {
		t.Errorf("missing post id in %q", text)
	}
}

func TestListPagesTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.listPages(context.Background(), toolRequest("list_pages", nil))
	if err != nil {
		t.Fatalf("listPages: %v", err)
	}
	if !strings.Contains(resultText(t, res), "/about") {
		t.Error("missing page permalink")
	}
}

func TestReadDocumentTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.readDocument(context.Background(),
		toolRequest("read_document", map[string]interface{}{"id": "2016-10-23-elixir-processes"}))
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %v", res.Content)
	}
	if !strings.Contains(resultText(t, res), "Processes are cheap.") {
		t.Error("missing body in result")
	}
}

func TestReadDocumentTool_NotFound(t *testing.T) {
	srv := testServer(t)
	res, err := srv.readDocument(context.Background(),
		toolRequest("read_document", map[string]interface{}{"id": "2099-01-01-missing"}))
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for unknown identifier")
	}
}

func TestSearchDocumentsTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.searchDocuments(context.Background(),
		toolRequest("search_documents", map[string]interface{}{"query": "cheap"}))
	if err != nil {
		t.Fatalf("searchDocuments: %v", err)
	}
	if !strings.Contains(resultText(t, res), "2016-10-23-elixir-processes") {
		t.Error("missing search hit")
	}
}

func TestDocumentFormatResource(t *testing.T) {
	srv := testServer(t)
	contents, err := srv.readDocumentFormatResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("readDocumentFormatResource: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("len(contents) = %d", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("unexpected contents type %T", contents[0])
	}
	if !strings.Contains(tc.Text, "permalink") {
		t.Error("contract should mention permalinks")
	}
}
