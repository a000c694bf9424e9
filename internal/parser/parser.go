// Package parser splits Markdown documents into their front-matter
// metadata block and body, and serializes them back.
package parser

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// Result holds the output of parsing a Markdown source file.
type Result struct {
	Metadata map[string]any
	Body     string
	Title    string
}

// Parse separates the YAML metadata block (between leading --- delimiters)
// from the Markdown body. A file without a metadata block yields nil
// Metadata and the whole content as body. A metadata block that is opened
// but never closed, or that is not valid YAML, is an error: authoring
// mistakes must surface, not degrade silently.
func Parse(data []byte) (*Result, error) {
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return &Result{Body: string(data)}, nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, fmt.Errorf("parser: unterminated metadata block")
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var meta map[string]any
	if err := yaml.Unmarshal(yamlBlock, &meta); err != nil {
		return nil, fmt.Errorf("parser: invalid metadata block: %w", err)
	}

	return &Result{
		Metadata: meta,
		Body:     body,
		Title:    MetaString(meta, "title"),
	}, nil
}

// Encode is the inverse of Parse: it serializes a metadata mapping and a
// body back into a single Markdown source file.
func Encode(meta map[string]any, body string) ([]byte, error) {
	var buf bytes.Buffer
	if len(meta) > 0 {
		block, err := yaml.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("parser: encode metadata: %w", err)
		}
		buf.WriteString(delim + "\n")
		buf.Write(block)
		buf.WriteString(delim + "\n\n")
	}
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// BalancedFences reports whether every fenced code block opened in the
// body (a line whose trimmed form starts with ```, the opener optionally
// carrying a language tag) is closed before the end of the document.
func BalancedFences(body string) bool {
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		}
	}
	return !inFence
}

// MetaString returns the string value for key, or "" when the key is
// absent or holds a non-string value.
func MetaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
