package parser

import (
	"github.com/tliron/commonlog"
)

// Flag names a contextual condition that narrows which rules may match at
// the current nesting point, such as "currently inside a link label".
type Flag string

// DefaultNestLimit bounds the recursion depth of Nest-guarded rules.
const DefaultNestLimit = 20

// Context is the mutable state shared by every parser call of a single parse
// invocation: the input text, the contextual flags, the memo store and the
// nest-depth budget. A Context belongs to exactly one top-level parse and
// must not be shared across concurrent parses.
type Context struct {
	Input string

	nestLimit int
	depth     int
	flags     map[Flag]bool
	memo      map[memoKey]any
	trace     commonlog.Logger
}

type memoKey struct {
	rule string
	pos  int
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithNestLimit sets the maximum nesting depth for Nest-guarded rules.
// Values below 1 are ignored.
func WithNestLimit(n int) ContextOption {
	return func(c *Context) {
		if n >= 1 {
			c.nestLimit = n
		}
	}
}

// WithDepth seeds the starting nesting depth. A re-parse that must count
// against an enclosing parse's budget seeds the child context with the
// enclosing context's current depth.
func WithDepth(n int) ContextOption {
	return func(c *Context) {
		if n >= 0 {
			c.depth = n
		}
	}
}

// WithTrace enables rule tracing through the given logger. Rules registered
// via NewLanguage report enter/match/fail events at debug level.
func WithTrace(log commonlog.Logger) ContextOption {
	return func(c *Context) {
		c.trace = log
	}
}

// NewContext creates the context for one parse invocation over input.
func NewContext(input string, opts ...ContextOption) *Context {
	c := &Context{
		Input:     input,
		nestLimit: DefaultNestLimit,
		flags:     make(map[Flag]bool),
		memo:      make(map[memoKey]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Flag reports whether the named flag is currently set.
func (c *Context) Flag(f Flag) bool {
	return c.flags[f]
}

// SetFlag sets the named flag and returns its previous value. Callers that
// set a flag are responsible for restoring the previous value on every exit
// path; WithFlag packages that discipline as a combinator.
func (c *Context) SetFlag(f Flag, on bool) bool {
	prev := c.flags[f]
	c.flags[f] = on
	return prev
}

// NestLimit returns the configured maximum nesting depth.
func (c *Context) NestLimit() int {
	return c.nestLimit
}

// Depth returns the nesting depth consumed so far.
func (c *Context) Depth() int {
	return c.depth
}

// Tracer returns the trace logger, or nil when tracing is disabled.
func (c *Context) Tracer() commonlog.Logger {
	return c.trace
}

func (c *Context) traceEnter(rule string, pos int) {
	if c.trace != nil {
		c.trace.Debugf("enter %s at %d", rule, pos)
	}
}

func (c *Context) traceMatch(rule string, pos, end int) {
	if c.trace != nil {
		c.trace.Debugf("match %s at %d..%d", rule, pos, end)
	}
}

func (c *Context) traceFail(rule string, pos int) {
	if c.trace != nil {
		c.trace.Debugf("fail %s at %d", rule, pos)
	}
}
