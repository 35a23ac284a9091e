package grammar

import (
	"strings"

	"github.com/dhamidi/fumi/ast"
	"github.com/dhamidi/fumi/parser"
)

// fullRules is the complete dialect. Alternatives are ordered first-match-
// wins, so more specific rules (***) come before less specific ones (**, *).
func fullRules() parser.Rules[ast.Node] {
	return parser.Rules[ast.Node]{
		"block":        blockRule,
		"inline":       inlineRule,
		"quote":        quoteRule,
		"codeBlock":    codeBlockRule,
		"mathBlock":    mathBlockRule,
		"center":       centerRule,
		"search":       searchRule,
		"big":          bigRule,
		"bold":         boldRule,
		"small":        smallRule,
		"italic":       italicRule,
		"strike":       strikeRule,
		"inlineCode":   inlineCodeRule,
		"mathInline":   mathInlineRule,
		"plain":        plainRule,
		"fn":           fnRule,
		"link":         linkRule,
		"url":          urlRule,
		"mention":      mentionRule,
		"hashtag":      hashtagRule,
		"emojiCode":    emojiCodeRule,
		"unicodeEmoji": unicodeEmojiRule,
		"text":         textRule,
	}
}

// simpleRules is the reduced profile used for plain-text surfaces such as
// display names: emoji and text only.
func simpleRules() parser.Rules[ast.Node] {
	return parser.Rules[ast.Node]{
		"inline": func(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
			return parser.Alt(lang["emojiCode"], lang["unicodeEmoji"], lang["text"])
		},
		"emojiCode":    emojiCodeRule,
		"unicodeEmoji": unicodeEmojiRule,
		"text":         textRule,
	}
}

func blockRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Alt(
		lang["quote"],
		lang["codeBlock"],
		lang["mathBlock"],
		lang["center"],
		lang["search"],
	)
}

func inlineRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Alt(
		lang["big"],
		lang["bold"],
		lang["small"],
		lang["italic"],
		lang["strike"],
		lang["inlineCode"],
		lang["mathInline"],
		lang["plain"],
		lang["fn"],
		lang["link"],
		lang["url"],
		lang["mention"],
		lang["hashtag"],
		lang["emojiCode"],
		lang["unicodeEmoji"],
		lang["text"],
	)
}

func textRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Map(parser.AnyChar(), func(s string) ast.Node {
		return ast.Text{Value: s}
	})
}

// toNodes narrows a heterogeneous sequence result to a node slice.
func toNodes(values []any) []ast.Node {
	nodes := make([]ast.Node, len(values))
	for i, v := range values {
		nodes[i] = v.(ast.Node)
	}
	return nodes
}

// inlineBody matches one or more nested inline nodes up to, but not
// including, the close delimiter.
func inlineBody(lang parser.Language[ast.Node], close string) parser.Parser[[]ast.Node] {
	item := parser.Pick(1,
		parser.ToAny(parser.Not(parser.Str(close))),
		parser.ToAny(parser.Nest(lang["inline"])),
	)
	return parser.Map(parser.Many(item, 1), toNodes)
}

// delimited matches open, a nested inline body, then close, and wraps the
// body. An unterminated construct fails as a whole and degrades to text.
func delimited(lang parser.Language[ast.Node], open, close string, wrap func([]ast.Node) ast.Node) parser.Parser[ast.Node] {
	body := inlineBody(lang, close)
	return parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str(open)),
			parser.ToAny(body),
			parser.ToAny(parser.Str(close)),
		),
		func(v any) ast.Node { return wrap(v.([]ast.Node)) },
	)
}

// textUntil consumes raw characters up to, but not including, the close
// delimiter. Line terminators are rejected unless multiline is set.
func textUntil(close string, multiline bool) parser.Parser[string] {
	ch := parser.Pattern(`[^\r\n]`)
	if multiline {
		ch = parser.AnyChar()
	}
	item := parser.Pick(1,
		parser.ToAny(parser.Not(parser.Str(close))),
		parser.ToAny(ch),
	)
	return parser.Map(parser.Many(item, 1), func(values []any) string {
		var b strings.Builder
		for _, v := range values {
			b.WriteString(v.(string))
		}
		return b.String()
	})
}

// newline matches one line terminator, \r\n before the lone forms.
func newline() parser.Parser[string] {
	return parser.Pattern(`\r\n|[\r\n]`)
}
