package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Parser matches a prefix of the context input starting at pos. It either
// accepts with a value and the position after the consumed prefix, or
// rejects without consuming anything.
type Parser[T any] func(ctx *Context, pos int) Result[T]

// Str matches the exact literal s.
func Str(s string) Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		if !strings.HasPrefix(ctx.Input[pos:], s) {
			return Reject[string]()
		}
		return Accept(s, pos+len(s))
	}
}

// Pattern matches the regular expression expr anchored at the current
// position and consumes the matched prefix. The expression is compiled once,
// at construction.
func Pattern(expr string) Parser[string] {
	return Regexp(regexp.MustCompile(`^(?:` + expr + `)`))
}

// Regexp matches a pre-compiled regular expression. The expression must be
// anchored with ^; matches that do not start at the current position are
// rejected.
func Regexp(re *regexp.Regexp) Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		loc := re.FindStringIndex(ctx.Input[pos:])
		if loc == nil || loc[0] != 0 || loc[1] == 0 {
			return Reject[string]()
		}
		return Accept(ctx.Input[pos:pos+loc[1]], pos+loc[1])
	}
}

// AnyChar matches exactly one character (one rune, not one byte).
func AnyChar() Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		if pos >= len(ctx.Input) {
			return Reject[string]()
		}
		_, size := utf8.DecodeRuneInString(ctx.Input[pos:])
		return Accept(ctx.Input[pos:pos+size], pos+size)
	}
}

// LineBegin matches zero-width at the start of the input or immediately
// after a line terminator. The terminators \r\n, \r and \n are recognized in
// that order, so the position between the bytes of a \r\n pair is not a line
// start.
func LineBegin() Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		if pos == 0 {
			return Accept("", pos)
		}
		switch ctx.Input[pos-1] {
		case '\n':
			return Accept("", pos)
		case '\r':
			if pos >= len(ctx.Input) || ctx.Input[pos] != '\n' {
				return Accept("", pos)
			}
		}
		return Reject[string]()
	}
}

// LineEnd matches zero-width at the end of the input or immediately before a
// line terminator, with the same \r\n > \r > \n priority as LineBegin.
func LineEnd() Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		if pos == len(ctx.Input) {
			return Accept("", pos)
		}
		switch ctx.Input[pos] {
		case '\r':
			return Accept("", pos)
		case '\n':
			if pos == 0 || ctx.Input[pos-1] != '\r' {
				return Accept("", pos)
			}
		}
		return Reject[string]()
	}
}

// EOF matches zero-width at the end of the input.
func EOF() Parser[string] {
	return func(ctx *Context, pos int) Result[string] {
		if pos == len(ctx.Input) {
			return Accept("", pos)
		}
		return Reject[string]()
	}
}
