package ast

import "strings"

// MergeText normalizes a node list by concatenating adjacent Text nodes,
// recursively through all children. The grammar's fallback rule emits one
// Text node per character; merging restores contiguous runs.
func MergeText(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nodes
	}
	var out []Node
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			out = append(out, Text{Value: buf.String()})
			buf.Reset()
		}
	}

	for _, n := range nodes {
		if t, ok := n.(Text); ok {
			buf.WriteString(t.Value)
			continue
		}
		flush()
		out = append(out, mergeChildren(n))
	}
	flush()
	return out
}

func mergeChildren(n Node) Node {
	switch v := n.(type) {
	case Bold:
		v.Children = MergeText(v.Children)
		return v
	case Italic:
		v.Children = MergeText(v.Children)
		return v
	case Strike:
		v.Children = MergeText(v.Children)
		return v
	case Small:
		v.Children = MergeText(v.Children)
		return v
	case Link:
		v.Label = MergeText(v.Label)
		return v
	case Fn:
		v.Children = MergeText(v.Children)
		return v
	case Quote:
		v.Children = MergeText(v.Children)
		return v
	case Center:
		v.Children = MergeText(v.Children)
		return v
	default:
		return n
	}
}

// Children returns the child node list of n, or nil for leaf nodes.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Bold:
		return v.Children
	case Italic:
		return v.Children
	case Strike:
		return v.Children
	case Small:
		return v.Children
	case Link:
		return v.Label
	case Fn:
		return v.Children
	case Quote:
		return v.Children
	case Center:
		return v.Children
	default:
		return nil
	}
}

// Extract returns, in document order, every node in the trees rooted at
// nodes for which keep returns true.
func Extract(nodes []Node, keep func(Node) bool) []Node {
	var out []Node
	for _, n := range nodes {
		if keep(n) {
			out = append(out, n)
		}
		out = append(out, Extract(Children(n), keep)...)
	}
	return out
}

// TextOf renders a node list as plain text, discarding all markup.
func TextOf(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Text:
		b.WriteString(v.Value)
	case Plain:
		b.WriteString(v.Value)
	case InlineCode:
		b.WriteString(v.Code)
	case MathInline:
		b.WriteString(v.Formula)
	case Mention:
		b.WriteString(v.Acct)
	case Hashtag:
		b.WriteString("#" + v.Tag)
	case URL:
		b.WriteString(v.URL)
	case EmojiCode:
		b.WriteString(":" + v.Name + ":")
	case UnicodeEmoji:
		b.WriteString(v.Emoji)
	case Search:
		b.WriteString(v.Content)
	case CodeBlock:
		b.WriteString(v.Code)
	case MathBlock:
		b.WriteString(v.Formula)
	default:
		for _, c := range Children(n) {
			writeText(b, c)
		}
	}
}
