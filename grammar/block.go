package grammar

import (
	"strings"

	"github.com/dhamidi/fumi/ast"
	"github.com/dhamidi/fumi/parser"
)

func quoteRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	line := parser.Pick(3,
		parser.ToAny(parser.LineBegin()),
		parser.ToAny(parser.Str(">")),
		parser.ToAny(parser.Opt(parser.Str(" "))),
		parser.ToAny(parser.Opt(parser.Pattern(`[^\r\n]+`))),
	)
	lines := parser.SepBy(line, newline(), 1)
	rule := parser.Parser[ast.Node](func(ctx *parser.Context, pos int) parser.Result[ast.Node] {
		r := lines(ctx, pos)
		if !r.OK {
			return parser.Reject[ast.Node]()
		}
		parts := make([]string, len(r.Value))
		for i, v := range r.Value {
			if m := v.(parser.Maybe[string]); m.OK {
				parts[i] = m.Value
			}
		}
		body := strings.Join(parts, "\n")
		if strings.TrimSpace(body) == "" {
			return parser.Reject[ast.Node]()
		}
		children := parseNested(ctx, lang, body)
		return parser.Accept[ast.Node](ast.Quote{Children: children}, r.End)
	})
	// Each quote level consumes nest budget; at the limit the markers stay
	// plain text.
	return parser.Nest(rule)
}

func searchRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	return parser.Map(
		parser.Pick(1,
			parser.ToAny(parser.LineBegin()),
			parser.ToAny(parser.Pattern(`[^\r\n]+ [Ss]earch`)),
			parser.ToAny(parser.LineEnd()),
		),
		func(v any) ast.Node {
			line := v.(string)
			query := line[:strings.LastIndex(line, " ")]
			return ast.Search{Query: query, Content: line}
		},
	)
}

func codeBlockRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	closeFence := parser.Seq(
		parser.ToAny(newline()),
		parser.ToAny(parser.Str("```")),
		parser.ToAny(parser.LineEnd()),
	)
	body := parser.Map(
		parser.Many(parser.Pick(1,
			parser.ToAny(parser.Not(closeFence)),
			parser.ToAny(parser.AnyChar()),
		), 0),
		func(values []any) string {
			var b strings.Builder
			for _, v := range values {
				b.WriteString(v.(string))
			}
			return b.String()
		},
	)
	seq := parser.Seq(
		parser.ToAny(parser.LineBegin()),
		parser.ToAny(parser.Str("```")),
		parser.ToAny(parser.Opt(parser.Pattern(`[^\r\n]+`))),
		parser.ToAny(newline()),
		parser.ToAny(body),
		parser.ToAny(closeFence),
	)
	return parser.Map(seq, func(values []any) ast.Node {
		block := ast.CodeBlock{Code: values[4].(string)}
		if m := values[2].(parser.Maybe[string]); m.OK {
			block.Lang = strings.TrimSpace(m.Value)
		}
		return block
	})
}

func mathBlockRule(parser.Language[ast.Node]) parser.Parser[ast.Node] {
	seq := parser.Seq(
		parser.ToAny(parser.LineBegin()),
		parser.ToAny(parser.Str(`\[`)),
		parser.ToAny(textUntil(`\]`, true)),
		parser.ToAny(parser.Str(`\]`)),
		parser.ToAny(parser.LineEnd()),
	)
	return parser.Map(seq, func(values []any) ast.Node {
		return ast.MathBlock{Formula: strings.Trim(values[2].(string), "\r\n")}
	})
}

func centerRule(lang parser.Language[ast.Node]) parser.Parser[ast.Node] {
	seq := parser.Seq(
		parser.ToAny(parser.LineBegin()),
		parser.ToAny(parser.Str("<center>")),
		parser.ToAny(parser.Opt(newline())),
		parser.ToAny(inlineBody(lang, "</center>")),
		parser.ToAny(parser.Str("</center>")),
		parser.ToAny(parser.LineEnd()),
	)
	return parser.Map(seq, func(values []any) ast.Node {
		return ast.Center{Children: values[3].([]ast.Node)}
	})
}
