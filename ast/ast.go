// Package ast defines the syntax tree produced by parsing fumi markup.
package ast

// Node is the interface implemented by all fumi syntax nodes.
type Node interface {
	node()
}

// Text represents a run of plain text.
type Text struct {
	Value string
}

func (Text) node() {}

// Bold represents bold content (**…**, __…__ or <b>…</b>).
type Bold struct {
	Children []Node
}

func (Bold) node() {}

// Italic represents italic content (*…*, _…_ or <i>…</i>).
type Italic struct {
	Children []Node
}

func (Italic) node() {}

// Strike represents struck-through content (~~…~~ or <s>…</s>).
type Strike struct {
	Children []Node
}

func (Strike) node() {}

// Small represents de-emphasized content (<small>…</small>).
type Small struct {
	Children []Node
}

func (Small) node() {}

// Plain represents content excluded from inline parsing (<plain>…</plain>).
type Plain struct {
	Value string
}

func (Plain) node() {}

// InlineCode represents an inline code span (`…`).
type InlineCode struct {
	Code string
}

func (InlineCode) node() {}

// MathInline represents an inline formula (\(…\)).
type MathInline struct {
	Formula string
}

func (MathInline) node() {}

// Mention represents a user mention (@user or @user@host).
type Mention struct {
	Username string
	Host     string // empty for local mentions
	Acct     string // canonical @user or @user@host form
}

func (Mention) node() {}

// Hashtag represents a hashtag (#tag); Tag carries no leading #.
type Hashtag struct {
	Tag string
}

func (Hashtag) node() {}

// URL represents a bare URL, or an angle-bracketed one when Brackets is set.
type URL struct {
	URL      string
	Brackets bool
}

func (URL) node() {}

// Link represents a labeled link [label](url). Silent links (?[label](url))
// are rendered without a preview by consumers.
type Link struct {
	URL    string
	Silent bool
	Label  []Node
}

func (Link) node() {}

// Fn represents a markup function $[name.arg1,arg2=v content]. Args maps
// argument names to values; a bare argument maps to the empty string.
type Fn struct {
	Name     string
	Args     map[string]string
	Children []Node
}

func (Fn) node() {}

// EmojiCode represents a named emoji shortcode (:name:).
type EmojiCode struct {
	Name string
}

func (EmojiCode) node() {}

// UnicodeEmoji represents a single unicode emoji grapheme cluster.
type UnicodeEmoji struct {
	Emoji string
}

func (UnicodeEmoji) node() {}

// Quote represents a block quote built from >-prefixed lines. Its children
// are the parse of the stripped quote body.
type Quote struct {
	Children []Node
}

func (Quote) node() {}

// Search represents a search-prompt line ("query search").
type Search struct {
	Query   string
	Content string // the full source line
}

func (Search) node() {}

// CodeBlock represents a fenced code block with an optional language tag.
type CodeBlock struct {
	Code string
	Lang string
}

func (CodeBlock) node() {}

// MathBlock represents a display formula (\[…\]).
type MathBlock struct {
	Formula string
}

func (MathBlock) node() {}

// Center represents centered block content (<center>…</center>).
type Center struct {
	Children []Node
}

func (Center) node() {}
