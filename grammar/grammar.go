// Package grammar defines the fumi markup dialect as a flat set of named,
// mutually recursive rules over the parser-combinator engine.
package grammar

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/fumi/ast"
	"github.com/dhamidi/fumi/parser"
)

// FlagLinkLabel is held while a link's label is being parsed. A label may
// contain emphasis and other inline constructs, but rules that must not
// nest inside it (link, url, mention, hashtag, fn) fail fast under this
// flag.
const FlagLinkLabel parser.Flag = "link-label"

type config struct {
	nestLimit int
	trace     commonlog.Logger
}

// Option configures a parse invocation.
type Option func(*config)

// WithNestLimit sets the maximum nesting depth of inline constructs.
func WithNestLimit(n int) Option {
	return func(c *config) {
		c.nestLimit = n
	}
}

// WithTrace enables rule tracing through the given logger.
func WithTrace(log commonlog.Logger) Option {
	return func(c *config) {
		c.trace = log
	}
}

func (c config) contextOptions() []parser.ContextOption {
	var opts []parser.ContextOption
	if c.nestLimit > 0 {
		opts = append(opts, parser.WithNestLimit(c.nestLimit))
	}
	if c.trace != nil {
		opts = append(opts, parser.WithTrace(c.trace))
	}
	return opts
}

// Parse parses input with the full dialect: block constructs, nested inline
// constructs and plain text. It never fails: empty input yields an empty
// list, and a grammar failure degrades to a single text node wrapping the
// whole input.
func Parse(input string, opts ...Option) []ast.Node {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	lang := parser.NewLanguage(fullRules())
	return runTop(topLevel(lang), input, cfg.contextOptions())
}

// ParseSimple parses input with the simple profile: emoji shortcodes,
// unicode emoji and plain text only.
func ParseSimple(input string, opts ...Option) []ast.Node {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	lang := parser.NewLanguage(simpleRules())
	return runTop(parser.Many(lang["inline"], 0), input, cfg.contextOptions())
}

// topLevel combines the block and inline rules into the root matcher.
func topLevel(lang parser.Language[ast.Node]) parser.Parser[[]ast.Node] {
	return parser.Many(parser.Alt(lang["block"], lang["inline"]), 0)
}

func runTop(top parser.Parser[[]ast.Node], input string, ctxOpts []parser.ContextOption) []ast.Node {
	if input == "" {
		return nil
	}
	ctx := parser.NewContext(input, ctxOpts...)
	r := top(ctx, 0)
	if !r.OK {
		return []ast.Node{ast.Text{Value: input}}
	}
	nodes := r.Value
	if r.End < len(input) {
		nodes = append(nodes, ast.Text{Value: input[r.End:]})
	}
	return ast.MergeText(nodes)
}

// parseNested re-parses quote bodies with a fresh context that inherits the
// outer parse's nest budget, the depth consumed so far and the trace logger.
// Carrying the depth over keeps repeated quoting bounded by the same budget
// as inline nesting.
func parseNested(ctx *parser.Context, lang parser.Language[ast.Node], input string) []ast.Node {
	opts := []parser.ContextOption{
		parser.WithNestLimit(ctx.NestLimit()),
		parser.WithDepth(ctx.Depth()),
	}
	if t := ctx.Tracer(); t != nil {
		opts = append(opts, parser.WithTrace(t))
	}
	return runTop(topLevel(lang), input, opts)
}
