package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_MetadataAndBody(t *testing.T) {
	input := []byte("---\nlayout: post\ntitle: Elixir Processes\ncomments: true\n---\nBody text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "Elixir Processes" {
		t.Errorf("title = %q, want %q", r.Title, "Elixir Processes")
	}
	if r.Metadata["layout"] != "post" {
		t.Errorf("layout = %v", r.Metadata["layout"])
	}
	if r.Metadata["comments"] != true {
		t.Errorf("comments = %v, want true", r.Metadata["comments"])
	}
	if r.Body != "Body text.\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoMetadataBlock(t *testing.T) {
	input := []byte("Just some text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Metadata != nil {
		t.Errorf("expected nil metadata, got %v", r.Metadata)
	}
	if r.Body != "Just some text.\n" {
		t.Errorf("body = %q", r.Body)
	}
	if r.Title != "" {
		t.Errorf("title = %q, want empty", r.Title)
	}
}

func TestParse_UnterminatedBlock(t *testing.T) {
	input := []byte("---\ntitle: Broken\nBody without closing delimiter\n")
	if _, err := Parse(input); err == nil {
		t.Fatal("expected error for unterminated metadata block")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	if _, err := Parse(input); err == nil {
		t.Fatal("expected error for invalid YAML metadata")
	}
}

func TestParse_NonStringTitle(t *testing.T) {
	input := []byte("---\ntitle: 42\n---\nBody\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "" {
		t.Errorf("non-string title should yield empty, got %q", r.Title)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	meta := map[string]any{
		"layout":   "post",
		"title":    "Streams",
		"comments": true,
		"keywords": "elixir, streams",
	}
	body := "Intro paragraph.\n\n```elixir\nStream.map([1, 2], & &1 * 2)\n```\n"

	data, err := Encode(meta, body)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(r.Metadata, meta) {
		t.Errorf("metadata mismatch:\ngot  %v\nwant %v", r.Metadata, meta)
	}
	if r.Body != body {
		t.Errorf("body mismatch:\ngot  %q\nwant %q", r.Body, body)
	}
}

func TestEncode_NoMetadata(t *testing.T) {
	data, err := Encode(nil, "plain body\n")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(string(data), "---") {
		t.Errorf("no delimiters expected, got %q", data)
	}
}

func TestBalancedFences(t *testing.T) {
	balanced := "text\n```elixir\ncode\n```\nmore text\n"
	if !BalancedFences(balanced) {
		t.Error("balanced body reported as unbalanced")
	}

	unbalanced := "text\n```ruby\ncode with no closing fence\n"
	if BalancedFences(unbalanced) {
		t.Error("unbalanced body reported as balanced")
	}

	two := "```go\na\n```\n\n```go\nb\n```\n"
	if !BalancedFences(two) {
		t.Error("two closed fences reported as unbalanced")
	}
}

func TestMetaString(t *testing.T) {
	meta := map[string]any{"permalink": "/about/", "comments": true}
	if got := MetaString(meta, "permalink"); got != "/about/" {
		t.Errorf("permalink = %q", got)
	}
	if got := MetaString(meta, "comments"); got != "" {
		t.Errorf("non-string value should yield empty, got %q", got)
	}
	if got := MetaString(nil, "anything"); got != "" {
		t.Errorf("nil metadata should yield empty, got %q", got)
	}
}
