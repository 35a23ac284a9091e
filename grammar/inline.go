package grammar

import (
	"strings"

	"github.com/dhamidi/fumi/ast"
	"github.com/dhamidi/fumi/parser"
)

func bigRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	// ***…*** is legacy syntax for $[tada …].
	return delimited(lang, "***", "***", func(children []ast.Node) ast.Node {
		return ast.Fn{Name: "tada", Children: children}
	})
}

func boldRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	wrap := func(children []ast.Node) ast.Node {
		return ast.Bold{Children: children}
	}
	// __…__ allows only word characters and spaces, kept as raw text.
	under := parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str("__")),
			parser.ToAny(parser.Pattern(`[A-Za-z0-9 \t]+`)),
			parser.ToAny(parser.Str("__")),
		),
		func(v any) ast.Node {
			return ast.Bold{Children: []ast.Node{ast.Text{Value: v.(string)}}}
		},
	)
	return parser.Alt(
		delimited(lang, "**", "**", wrap),
		delimited(lang, "<b>", "</b>", wrap),
		under,
	)
}

func smallRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return delimited(lang, "<small>", "</small>", func(children []ast.Node) ast.Node {
		return ast.Small{Children: children}
	})
}

func italicRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	wrap := func(children []ast.Node) ast.Node {
		return ast.Italic{Children: children}
	}
	under := parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str("_")),
			parser.ToAny(parser.Pattern(`[A-Za-z0-9 \t]+`)),
			parser.ToAny(parser.Str("_")),
		),
		func(v any) ast.Node {
			return ast.Italic{Children: []ast.Node{ast.Text{Value: v.(string)}}}
		},
	)
	return parser.Alt(
		delimited(lang, "<i>", "</i>", wrap),
		delimited(lang, "*", "*", wrap),
		under,
	)
}

func strikeRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	wrap := func(children []ast.Node) ast.Node {
		return ast.Strike{Children: children}
	}
	return parser.Alt(
		delimited(lang, "~~", "~~", wrap),
		delimited(lang, "<s>", "</s>", wrap),
	)
}

func inlineCodeRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str("`")),
			parser.ToAny(parser.Pattern("[^`´\r\n]+")),
			parser.ToAny(parser.Str("`")),
		),
		func(v any) ast.Node { return ast.InlineCode{Code: v.(string)} },
	)
}

func mathInlineRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str(`\(`)),
			parser.ToAny(textUntil(`\)`, false)),
			parser.ToAny(parser.Str(`\)`)),
		),
		func(v any) ast.Node { return ast.MathInline{Formula: v.(string)} },
	)
}

func plainRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str("<plain>")),
			parser.ToAny(textUntil("</plain>", true)),
			parser.ToAny(parser.Str("</plain>")),
		),
		func(v any) ast.Node {
			return ast.Plain{Value: strings.Trim(v.(string), "\r\n")}
		},
	)
}

func fnRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	args := parser.Opt(parser.Pick(1,
		parser.ToAny(parser.Str(".")),
		parser.ToAny(parser.SepBy(parser.Pattern(`[A-Za-z0-9_]+(?:=[^\s,\]]+)?`), parser.Str(","), 1)),
	))
	seq := parser.Seq(
		parser.ToAny(parser.Str("$[")),
		parser.ToAny(parser.Pattern(`[A-Za-z0-9_]+`)),
		parser.ToAny(args),
		parser.ToAny(parser.Str(" ")),
		parser.ToAny(inlineBody(lang, "]")),
		parser.ToAny(parser.Str("]")),
	)
	rule := parser.Map(seq, func(values []any) ast.Node {
		fn := ast.Fn{
			Name:     values[1].(string),
			Children: values[4].([]ast.Node),
		}
		if m := values[2].(parser.Maybe[any]); m.OK {
			fn.Args = make(map[string]string)
			for _, arg := range m.Value.([]string) {
				name, value, _ := strings.Cut(arg, "=")
				fn.Args[name] = value
			}
		}
		return fn
	})
	return parser.UnlessFlag(FlagLinkLabel, rule)
}

func linkRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	label := parser.WithFlag(FlagLinkLabel, inlineBody(lang, "]"))
	seq := parser.Seq(
		parser.ToAny(parser.Alt(parser.Str("?["), parser.Str("["))),
		parser.ToAny(label),
		parser.ToAny(parser.Str("](")),
		parser.ToAny(parser.Pattern(`[^\s)]+`)),
		parser.ToAny(parser.Str(")")),
	)
	rule := parser.Map(seq, func(values []any) ast.Node {
		return ast.Link{
			Silent: values[0].(string) == "?[",
			Label:  values[1].([]ast.Node),
			URL:    values[3].(string),
		}
	})
	// Labels must not contain nested links.
	return parser.UnlessFlag(FlagLinkLabel, rule)
}

// urlBody matches the scheme and a run of URL characters that does not end
// in trailing punctuation.
const urlBody = `https?://[\w/:%#@$&?!()\[\]~.,=+\-]*[\w/:%#@$&?!()\[\]~=+\-]`

func urlRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	bare := parser.Map(parser.Pattern(urlBody), func(s string) ast.Node {
		return ast.URL{URL: s}
	})
	bracketed := parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.Str("<")),
			parser.ToAny(parser.Pattern(`https?://[^\r\n>]+`)),
			parser.ToAny(parser.Str(">")),
		),
		func(v any) ast.Node { return ast.URL{URL: v.(string), Brackets: true} },
	)
	return parser.UnlessFlag(FlagLinkLabel, parser.Alt(bracketed, bare))
}

func mentionRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	rule := parser.Map(
		parser.Pick(1,
			parser.ToAny(wordBoundary()),
			parser.ToAny(parser.Pattern(`@[A-Za-z0-9_][A-Za-z0-9_-]*(?:@[A-Za-z0-9_][A-Za-z0-9_.-]*)?`)),
		),
		func(v any) ast.Node {
			s := v.(string)
			username, host, _ := strings.Cut(s[1:], "@")
			return ast.Mention{Username: username, Host: host, Acct: s}
		},
	)
	return parser.UnlessFlag(FlagLinkLabel, rule)
}

func hashtagRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	// At least one non-digit, so #123 stays plain text.
	rule := parser.Map(
		parser.Pick(1,
			parser.ToAny(wordBoundary()),
			parser.ToAny(parser.Pattern(`#[\p{L}\p{N}_-]*[\p{L}_-][\p{L}\p{N}_-]*`)),
		),
		func(v any) ast.Node { return ast.Hashtag{Tag: v.(string)[1:]} },
	)
	return parser.UnlessFlag(FlagLinkLabel, rule)
}

// wordBoundary matches zero-width unless the preceding character is an
// ASCII letter or digit, so sigil rules do not fire mid-word (a@b,
// foo#bar).
func wordBoundary() parser.Parser[string] {
	return func(ctx *parser.Context, pos int) parser.Result[string] {
		if pos == 0 {
			return parser.Accept("", pos)
		}
		switch c := ctx.Input[pos-1]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return parser.Reject[string]()
		}
		return parser.Accept("", pos)
	}
}
