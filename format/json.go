package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/fumi/ast"
)

// JSONEncoder writes a node list as a typed JSON array, one object per node
// with a "type" discriminator.
type JSONEncoder struct {
	w     io.Writer
	nodes []ast.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(nodes []ast.Node) error {
	e.nodes = nodes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildNodes(e.nodes), "", "  ")
}

type jsonNode struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Code     string            `json:"code,omitempty"`
	Lang     string            `json:"lang,omitempty"`
	Formula  string            `json:"formula,omitempty"`
	URL      string            `json:"url,omitempty"`
	Brackets bool              `json:"brackets,omitempty"`
	Silent   bool              `json:"silent,omitempty"`
	Name     string            `json:"name,omitempty"`
	Args     map[string]string `json:"args,omitempty"`
	Username string            `json:"username,omitempty"`
	Host     string            `json:"host,omitempty"`
	Acct     string            `json:"acct,omitempty"`
	Tag      string            `json:"tag,omitempty"`
	Query    string            `json:"query,omitempty"`
	Children []jsonNode        `json:"children,omitempty"`
}

func buildNodes(nodes []ast.Node) []jsonNode {
	out := make([]jsonNode, len(nodes))
	for i, n := range nodes {
		out[i] = buildNode(n)
	}
	return out
}

func buildNode(n ast.Node) jsonNode {
	switch v := n.(type) {
	case ast.Text:
		return jsonNode{Type: "text", Text: v.Value}
	case ast.Bold:
		return jsonNode{Type: "bold", Children: buildNodes(v.Children)}
	case ast.Italic:
		return jsonNode{Type: "italic", Children: buildNodes(v.Children)}
	case ast.Strike:
		return jsonNode{Type: "strike", Children: buildNodes(v.Children)}
	case ast.Small:
		return jsonNode{Type: "small", Children: buildNodes(v.Children)}
	case ast.Plain:
		return jsonNode{Type: "plain", Text: v.Value}
	case ast.InlineCode:
		return jsonNode{Type: "inlineCode", Code: v.Code}
	case ast.MathInline:
		return jsonNode{Type: "mathInline", Formula: v.Formula}
	case ast.Mention:
		return jsonNode{Type: "mention", Username: v.Username, Host: v.Host, Acct: v.Acct}
	case ast.Hashtag:
		return jsonNode{Type: "hashtag", Tag: v.Tag}
	case ast.URL:
		return jsonNode{Type: "url", URL: v.URL, Brackets: v.Brackets}
	case ast.Link:
		return jsonNode{Type: "link", URL: v.URL, Silent: v.Silent, Children: buildNodes(v.Label)}
	case ast.Fn:
		return jsonNode{Type: "fn", Name: v.Name, Args: v.Args, Children: buildNodes(v.Children)}
	case ast.EmojiCode:
		return jsonNode{Type: "emojiCode", Name: v.Name}
	case ast.UnicodeEmoji:
		return jsonNode{Type: "unicodeEmoji", Text: v.Emoji}
	case ast.Quote:
		return jsonNode{Type: "quote", Children: buildNodes(v.Children)}
	case ast.Search:
		return jsonNode{Type: "search", Query: v.Query, Text: v.Content}
	case ast.CodeBlock:
		return jsonNode{Type: "codeBlock", Code: v.Code, Lang: v.Lang}
	case ast.MathBlock:
		return jsonNode{Type: "mathBlock", Formula: v.Formula}
	case ast.Center:
		return jsonNode{Type: "center", Children: buildNodes(v.Children)}
	default:
		return jsonNode{Type: "unknown"}
	}
}
