package grammar

import (
	"github.com/rivo/uniseg"

	"github.com/dhamidi/fumi/ast"
	"github.com/dhamidi/fumi/parser"
)

// Both emoji matchers are flag-independent lexical rules, so they are safe
// to memoize.

func emojiCodeRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	rule := parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str(":")),
			parser.ToAny(parser.Pattern(`[A-Za-z0-9_+-]+`)),
			parser.ToAny(parser.Str(":")),
		),
		func(v any) ast.Node { return ast.EmojiCode{Name: v.(string)} },
	)
	return parser.Memo("emojiCode", rule)
}

func unicodeEmojiRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	rule := func(ctx *parser.Context, pos int) parser.Result[ast.Node] {
		rest := ctx.Input[pos:]
		if rest == "" {
			return parser.Reject[ast.Node]()
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		if cluster == "" || !isEmojiCluster(cluster) {
			return parser.Reject[ast.Node]()
		}
		return parser.Accept[ast.Node](ast.UnicodeEmoji{Emoji: cluster}, pos+len(cluster))
	}
	return parser.Memo("unicodeEmoji", rule)
}

// isEmojiCluster reports whether a grapheme cluster renders as an emoji:
// it contains a pictographic rune, a regional indicator, or a keycap
// combiner.
func isEmojiCluster(cluster string) bool {
	for _, r := range cluster {
		if isPictographic(r) || r == 0x20E3 {
			return true
		}
	}
	return false
}

func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // emoji & symbol planes, incl. regional indicators
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // misc symbols and arrows (⭐ etc.)
		return true
	case r == 0x203C || r == 0x2049: // ‼ ⁉
		return true
	default:
		return false
	}
}
