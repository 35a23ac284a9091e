package parser

// Rules maps rule names to constructor functions. Each constructor receives
// the (not yet resolved) rule table and returns the rule's parser, so rules
// may freely reference themselves and each other without forward
// declarations.
type Rules[T any] map[string]func(Language[T]) Parser[T]

// Language is a table of named, mutually recursive rules. Every entry is a
// lazily resolved parser: the first invocation runs the rule's constructor
// against the complete table and tags the result with the rule's name for
// tracing; later invocations reuse the constructed parser.
type Language[T any] map[string]Parser[T]

// NewLanguage resolves a rule set into a language table in two phases:
// first a lazy cell is allocated for every rule name, then each cell builds
// its parser on first use, with the self-referential table already in place.
func NewLanguage[T any](rules Rules[T]) Language[T] {
	lang := make(Language[T], len(rules))
	for name, build := range rules {
		cell := &ruleCell[T]{name: name, build: build, lang: lang}
		lang[name] = cell.parse
	}
	return lang
}

type ruleCell[T any] struct {
	name     string
	build    func(Language[T]) Parser[T]
	lang     Language[T]
	resolved Parser[T]
}

func (c *ruleCell[T]) parse(ctx *Context, pos int) Result[T] {
	if c.resolved == nil {
		c.resolved = Named(c.name, c.build(c.lang))
	}
	return c.resolved(ctx, pos)
}
