package parser

// Seq runs every parser in order, each starting where the previous one left
// off. It accepts the ordered slice of sub-results only if all parsers
// accept; any rejection rejects the whole sequence at the original position.
// Contextual flags set by earlier parsers are not restored here; use
// WithFlag for scoped flag changes.
func Seq(parsers ...Parser[any]) Parser[[]any] {
	return func(ctx *Context, pos int) Result[[]any] {
		values := make([]any, 0, len(parsers))
		cur := pos
		for _, p := range parsers {
			r := p(ctx, cur)
			if !r.OK {
				return Reject[[]any]()
			}
			values = append(values, r.Value)
			cur = r.End
		}
		return Accept(values, cur)
	}
}

// Pick runs the parsers as a sequence and projects the result at index.
func Pick(index int, parsers ...Parser[any]) Parser[any] {
	seq := Seq(parsers...)
	return func(ctx *Context, pos int) Result[any] {
		r := seq(ctx, pos)
		if !r.OK {
			return Reject[any]()
		}
		return Accept(r.Value[index], r.End)
	}
}

// Alt tries each alternative in order at the same starting position and
// commits to the first one that accepts. Ordered choice: more specific
// alternatives must be listed first.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(ctx *Context, pos int) Result[T] {
		for _, p := range parsers {
			if r := p(ctx, pos); r.OK {
				return r
			}
		}
		return Reject[T]()
	}
}

// Many greedily accumulates matches of p until it rejects, accepting only if
// at least min matches accumulated. A zero-width match stops the loop so
// that non-consuming parsers cannot loop forever.
func Many[T any](p Parser[T], min int) Parser[[]T] {
	return func(ctx *Context, pos int) Result[[]T] {
		var values []T
		cur := pos
		for {
			r := p(ctx, cur)
			if !r.OK || r.End == cur {
				break
			}
			values = append(values, r.Value)
			cur = r.End
		}
		if len(values) < min {
			return Reject[[]T]()
		}
		return Accept(values, cur)
	}
}

// SepBy matches one p, then zero or more separator-p pairs, accepting only
// if at least min occurrences of p accumulated. min must be at least 1.
func SepBy[T, S any](p Parser[T], sep Parser[S], min int) Parser[[]T] {
	if min < 1 {
		min = 1
	}
	return func(ctx *Context, pos int) Result[[]T] {
		first := p(ctx, pos)
		if !first.OK {
			return Reject[[]T]()
		}
		values := []T{first.Value}
		cur := first.End
		for {
			s := sep(ctx, cur)
			if !s.OK {
				break
			}
			r := p(ctx, s.End)
			if !r.OK || r.End == cur {
				break
			}
			values = append(values, r.Value)
			cur = r.End
		}
		if len(values) < min {
			return Reject[[]T]()
		}
		return Accept(values, cur)
	}
}

// Opt lifts p into a parser that never rejects: if p rejects, Opt accepts an
// absent value at the original position.
func Opt[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(ctx *Context, pos int) Result[Maybe[T]] {
		if r := p(ctx, pos); r.OK {
			return Accept(Maybe[T]{Value: r.Value, OK: true}, r.End)
		}
		return Accept(Maybe[T]{}, pos)
	}
}

// Not is a zero-width negative lookahead: it accepts, consuming nothing,
// only if p rejects at the current position.
func Not[T any](p Parser[T]) Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		if r := p(ctx, pos); r.OK {
			return Reject[string]()
		}
		return Accept("", pos)
	}
}

// Map transforms the value of a successful match; rejection passes through.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(ctx *Context, pos int) Result[U] {
		r := p(ctx, pos)
		if !r.OK {
			return Reject[U]()
		}
		return Accept(f(r.Value), r.End)
	}
}

// MapTo replaces the value of a successful match with a fixed value.
func MapTo[T, U any](p Parser[T], value U) Parser[U] {
	return Map(p, func(T) U { return value })
}

// ToAny erases the value type of p, for composition with Seq and Pick.
func ToAny[T any](p Parser[T]) Parser[any] {
	return func(ctx *Context, pos int) Result[any] {
		r := p(ctx, pos)
		if !r.OK {
			return Reject[any]()
		}
		return Accept[any](r.Value, r.End)
	}
}

// Lazy defers construction of a parser until its first invocation and caches
// the constructed parser for all subsequent invocations. This is the
// mechanism that lets mutually recursive rules reference each other before
// both are defined.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var p Parser[T]
	return func(ctx *Context, pos int) Result[T] {
		if p == nil {
			p = build()
		}
		return p(ctx, pos)
	}
}

// WithFlag runs p with the named flag set, restoring the flag's previous
// value on both the success and the failure path.
func WithFlag[T any](flag Flag, p Parser[T]) Parser[T] {
	return func(ctx *Context, pos int) Result[T] {
		prev := ctx.SetFlag(flag, true)
		r := p(ctx, pos)
		ctx.SetFlag(flag, prev)
		return r
	}
}

// UnlessFlag rejects immediately when the named flag is set, otherwise
// runs p.
func UnlessFlag[T any](flag Flag, p Parser[T]) Parser[T] {
	return func(ctx *Context, pos int) Result[T] {
		if ctx.Flag(flag) {
			return Reject[T]()
		}
		return p(ctx, pos)
	}
}

// Nest guards p with the context's nest-depth budget: when the budget is
// exhausted the innermost rule rejects instead of recursing further, so
// adversarial nesting degrades to plain text rather than exhausting the
// call stack.
func Nest[T any](p Parser[T]) Parser[T] {
	return func(ctx *Context, pos int) Result[T] {
		if ctx.depth >= ctx.nestLimit {
			return Reject[T]()
		}
		ctx.depth++
		r := p(ctx, pos)
		ctx.depth--
		return r
	}
}

// Memo caches p's outcome per (name, position) on the context, so repeated
// invocation at the same position replays the first outcome instead of
// recomputing it. Sound only for parsers whose outcome does not depend on
// contextual flags; flag-sensitive rules must not be memoized.
func Memo[T any](name string, p Parser[T]) Parser[T] {
	return func(ctx *Context, pos int) Result[T] {
		key := memoKey{rule: name, pos: pos}
		if cached, ok := ctx.memo[key]; ok {
			return cached.(Result[T])
		}
		r := p(ctx, pos)
		ctx.memo[key] = r
		return r
	}
}

// Named tags p with a rule name for tracing. When the context's trace logger
// is set, each invocation reports enter, match and fail events.
func Named[T any](name string, p Parser[T]) Parser[T] {
	return func(ctx *Context, pos int) Result[T] {
		if ctx.trace == nil {
			return p(ctx, pos)
		}
		ctx.traceEnter(name, pos)
		r := p(ctx, pos)
		if r.OK {
			ctx.traceMatch(name, pos, r.End)
		} else {
			ctx.traceFail(name, pos)
		}
		return r
	}
}
