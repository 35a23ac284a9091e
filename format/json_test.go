package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/fumi/ast"
)

func TestJSONEncoder(t *testing.T) {
	nodes := []ast.Node{
		ast.Text{Value: "hi "},
		ast.Bold{Children: []ast.Node{ast.Text{Value: "there"}}},
		ast.Link{URL: "https://example.com", Label: []ast.Node{ast.Text{Value: "x"}}},
	}

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(nodes); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d nodes, want 3", len(decoded))
	}
	if decoded[0]["type"] != "text" || decoded[0]["text"] != "hi " {
		t.Errorf("got %v", decoded[0])
	}
	if decoded[1]["type"] != "bold" {
		t.Errorf("got %v", decoded[1])
	}
	if decoded[2]["type"] != "link" || decoded[2]["url"] != "https://example.com" {
		t.Errorf("got %v", decoded[2])
	}
	children, ok := decoded[1]["children"].([]any)
	if !ok || len(children) != 1 {
		t.Errorf("got children %v", decoded[1]["children"])
	}
}

func TestJSONEncoderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("got %q, want empty array", got)
	}
}

func TestTextEncoder(t *testing.T) {
	nodes := []ast.Node{
		ast.Text{Value: "a "},
		ast.Bold{Children: []ast.Node{ast.Text{Value: "b"}}},
		ast.EmojiCode{Name: "wave"},
	}

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(nodes); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a b:wave:" {
		t.Errorf("got %q", got)
	}
}

func TestTreeEncoder(t *testing.T) {
	nodes := []ast.Node{
		ast.Bold{Children: []ast.Node{ast.Text{Value: "b"}}},
	}

	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(nodes); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "bold" || !strings.HasPrefix(lines[1], "  text") {
		t.Errorf("got %q", lines)
	}
}
