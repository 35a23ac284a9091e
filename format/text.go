package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/fumi/ast"
)

// TextEncoder writes the plain-text projection of a node list, discarding
// all markup.
type TextEncoder struct {
	w     io.Writer
	nodes []ast.Node
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(nodes []ast.Node) error {
	e.nodes = nodes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(ast.TextOf(e.nodes)), nil
}

// TreeEncoder writes an indented node-per-line dump for inspecting parser
// output.
type TreeEncoder struct {
	w     io.Writer
	nodes []ast.Node
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(nodes []ast.Node) error {
	e.nodes = nodes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var b strings.Builder
	writeTree(&b, e.nodes, 0)
	return []byte(b.String()), nil
}

func writeTree(b *strings.Builder, nodes []ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		fmt.Fprintf(b, "%s%s\n", indent, describe(n))
		writeTree(b, ast.Children(n), depth+1)
	}
}

func describe(n ast.Node) string {
	switch v := n.(type) {
	case ast.Text:
		return fmt.Sprintf("text %q", v.Value)
	case ast.Bold:
		return "bold"
	case ast.Italic:
		return "italic"
	case ast.Strike:
		return "strike"
	case ast.Small:
		return "small"
	case ast.Plain:
		return fmt.Sprintf("plain %q", v.Value)
	case ast.InlineCode:
		return fmt.Sprintf("inlineCode %q", v.Code)
	case ast.MathInline:
		return fmt.Sprintf("mathInline %q", v.Formula)
	case ast.Mention:
		return fmt.Sprintf("mention %s", v.Acct)
	case ast.Hashtag:
		return fmt.Sprintf("hashtag #%s", v.Tag)
	case ast.URL:
		return fmt.Sprintf("url %s", v.URL)
	case ast.Link:
		return fmt.Sprintf("link %s silent=%v", v.URL, v.Silent)
	case ast.Fn:
		return fmt.Sprintf("fn %s %v", v.Name, v.Args)
	case ast.EmojiCode:
		return fmt.Sprintf("emojiCode :%s:", v.Name)
	case ast.UnicodeEmoji:
		return fmt.Sprintf("unicodeEmoji %s", v.Emoji)
	case ast.Quote:
		return "quote"
	case ast.Search:
		return fmt.Sprintf("search %q", v.Query)
	case ast.CodeBlock:
		return fmt.Sprintf("codeBlock lang=%q", v.Lang)
	case ast.MathBlock:
		return fmt.Sprintf("mathBlock %q", v.Formula)
	case ast.Center:
		return "center"
	default:
		return "unknown"
	}
}
