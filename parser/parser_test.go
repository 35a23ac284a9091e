package parser

import (
	"testing"
)

func TestStr(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		pos     int
		ok      bool
		end     int
	}{
		{"hello", "hello", 0, true, 5},
		{"hello world", "hello", 0, true, 5},
		{"hello", "world", 0, false, 0},
		{"say hello", "hello", 4, true, 9},
		{"hell", "hello", 0, false, 0},
		{"", "x", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.literal, func(t *testing.T) {
			ctx := NewContext(tt.input)
			r := Str(tt.literal)(ctx, tt.pos)
			if r.OK != tt.ok {
				t.Fatalf("got ok=%v, want %v", r.OK, tt.ok)
			}
			if r.OK && r.End != tt.end {
				t.Errorf("got end=%d, want %d", r.End, tt.end)
			}
			if r.OK && r.End-tt.pos != len(tt.literal) {
				t.Errorf("advanced %d, want literal length %d", r.End-tt.pos, len(tt.literal))
			}
		})
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		input string
		expr  string
		pos   int
		ok    bool
		value string
	}{
		{"abc123", `[a-z]+`, 0, true, "abc"},
		{"abc123", `[0-9]+`, 0, false, ""},
		{"abc123", `[0-9]+`, 3, true, "123"},
		{"abc", `b`, 0, false, ""}, // anchored: must match at the cursor
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.expr, func(t *testing.T) {
			ctx := NewContext(tt.input)
			r := Pattern(tt.expr)(ctx, tt.pos)
			if r.OK != tt.ok {
				t.Fatalf("got ok=%v, want %v", r.OK, tt.ok)
			}
			if r.OK && r.Value != tt.value {
				t.Errorf("got %q, want %q", r.Value, tt.value)
			}
		})
	}
}

func TestAnyChar(t *testing.T) {
	ctx := NewContext("aよb")
	r := AnyChar()(ctx, 0)
	if !r.OK || r.Value != "a" || r.End != 1 {
		t.Errorf("got %+v, want a at 1", r)
	}
	r = AnyChar()(ctx, 1)
	if !r.OK || r.Value != "よ" || r.End != 4 {
		t.Errorf("got %+v, want よ at 4", r)
	}
	if r = AnyChar()(ctx, len(ctx.Input)); r.OK {
		t.Error("expected rejection at end of input")
	}
}

func TestLineBoundaries(t *testing.T) {
	input := "a\r\nb\rc\nd"
	ctx := NewContext(input)

	begin := LineBegin()
	end := LineEnd()

	beginAt := map[int]bool{0: true, 3: true, 5: true, 7: true}
	endAt := map[int]bool{1: true, 4: true, 6: true, 8: true}

	for pos := 0; pos <= len(input); pos++ {
		if got := begin(ctx, pos).OK; got != beginAt[pos] {
			t.Errorf("LineBegin at %d: got %v, want %v", pos, got, beginAt[pos])
		}
		if got := end(ctx, pos).OK; got != endAt[pos] {
			t.Errorf("LineEnd at %d: got %v, want %v", pos, got, endAt[pos])
		}
	}

	// Zero-width: boundaries never advance.
	if r := begin(ctx, 0); r.End != 0 {
		t.Errorf("LineBegin advanced to %d", r.End)
	}
	if r := end(ctx, 1); r.End != 1 {
		t.Errorf("LineEnd advanced to %d", r.End)
	}
}

func TestEOF(t *testing.T) {
	ctx := NewContext("ab")
	if EOF()(ctx, 0).OK {
		t.Error("EOF matched before end of input")
	}
	if !EOF()(ctx, 2).OK {
		t.Error("EOF rejected at end of input")
	}
}

func TestSeq(t *testing.T) {
	ctx := NewContext("abc")
	p := Seq(ToAny(Str("a")), ToAny(Str("b")), ToAny(Str("c")))

	r := p(ctx, 0)
	if !r.OK || r.End != 3 {
		t.Fatalf("got %+v, want match to 3", r)
	}
	if len(r.Value) != 3 || r.Value[1].(string) != "b" {
		t.Errorf("got values %v", r.Value)
	}

	if r := p(ctx, 1); r.OK {
		t.Error("sequence matched at wrong position")
	}
}

func TestPick(t *testing.T) {
	ctx := NewContext("(x)")
	p := Pick(1, ToAny(Str("(")), ToAny(Str("x")), ToAny(Str(")")))
	r := p(ctx, 0)
	if !r.OK || r.Value.(string) != "x" || r.End != 3 {
		t.Errorf("got %+v, want x to 3", r)
	}
}

func TestAltOrder(t *testing.T) {
	// Ordered choice commits to the first success, not the longest match.
	ctx := NewContext("abc")
	p := Alt(Str("a"), Str("abc"))
	r := p(ctx, 0)
	if !r.OK || r.Value != "a" {
		t.Errorf("got %+v, want first alternative", r)
	}

	if r := Alt(Str("x"), Str("y"))(ctx, 0); r.OK {
		t.Error("Alt matched with no matching alternative")
	}
}

func TestMany(t *testing.T) {
	tests := []struct {
		name  string
		input string
		min   int
		ok    bool
		count int
		end   int
	}{
		{"three", "aaab", 0, true, 3, 3},
		{"none min zero", "bbb", 0, true, 0, 0},
		{"none min one", "bbb", 1, false, 0, 0},
		{"min met", "aa", 2, true, 2, 2},
		{"min unmet", "a", 2, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(tt.input)
			r := Many(Str("a"), tt.min)(ctx, 0)
			if r.OK != tt.ok {
				t.Fatalf("got ok=%v, want %v", r.OK, tt.ok)
			}
			if r.OK && (len(r.Value) != tt.count || r.End != tt.end) {
				t.Errorf("got %d values to %d, want %d to %d", len(r.Value), r.End, tt.count, tt.end)
			}
		})
	}
}

func TestManyZeroWidth(t *testing.T) {
	// A zero-width match must stop the loop instead of spinning forever.
	ctx := NewContext("abc")
	r := Many(LineBegin(), 0)(ctx, 0)
	if !r.OK || r.End != 0 {
		t.Errorf("got %+v, want empty match at origin", r)
	}
}

func TestSepBy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
		end   int
	}{
		{"single element no separator", "a", 1, 1},
		{"two elements", "a,a", 2, 3},
		{"trailing separator not consumed", "a,a,", 2, 3},
		{"dangling element ignored", "a,b", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(tt.input)
			r := SepBy(Str("a"), Str(","), 1)(ctx, 0)
			if !r.OK {
				t.Fatal("rejected")
			}
			if len(r.Value) != tt.count || r.End != tt.end {
				t.Errorf("got %d values to %d, want %d to %d", len(r.Value), r.End, tt.count, tt.end)
			}
		})
	}

	ctx := NewContext("b")
	if r := SepBy(Str("a"), Str(","), 1)(ctx, 0); r.OK {
		t.Error("matched with zero occurrences")
	}
}

func TestOptNeverFails(t *testing.T) {
	reject := func(ctx *Context, pos int) Result[string] { return Reject[string]() }

	ctx := NewContext("ab")
	r := Opt(Parser[string](reject))(ctx, 1)
	if !r.OK || r.Value.OK || r.End != 1 {
		t.Errorf("got %+v, want absent value at origin", r)
	}

	r = Opt(Str("b"))(ctx, 1)
	if !r.OK || !r.Value.OK || r.Value.Value != "b" || r.End != 2 {
		t.Errorf("got %+v, want present value to 2", r)
	}
}

func TestNot(t *testing.T) {
	ctx := NewContext("ab")
	if r := Not(Str("a"))(ctx, 0); r.OK {
		t.Error("lookahead accepted although parser matched")
	}
	r := Not(Str("x"))(ctx, 0)
	if !r.OK || r.End != 0 {
		t.Errorf("got %+v, want zero-width match", r)
	}
}

func TestMap(t *testing.T) {
	ctx := NewContext("42")
	p := Map(Str("42"), func(s string) int { return len(s) })
	if r := p(ctx, 0); !r.OK || r.Value != 2 {
		t.Errorf("got %+v, want 2", r)
	}
	if r := Map(Str("x"), func(s string) int { return 1 })(ctx, 0); r.OK {
		t.Error("map accepted a rejection")
	}
}

func TestLazy(t *testing.T) {
	built := 0
	p := Lazy(func() Parser[string] {
		built++
		return Str("a")
	})

	ctx := NewContext("aa")
	p(ctx, 0)
	p(ctx, 1)
	if built != 1 {
		t.Errorf("constructed %d times, want once", built)
	}
}

func TestWithFlagRestore(t *testing.T) {
	const flag Flag = "inside-link"

	seen := false
	observe := func(ctx *Context, pos int) Result[string] {
		seen = ctx.Flag(flag)
		return Str("a")(ctx, pos)
	}

	t.Run("success path", func(t *testing.T) {
		ctx := NewContext("a")
		r := WithFlag(flag, Parser[string](observe))(ctx, 0)
		if !r.OK || !seen {
			t.Errorf("flag not visible inside scope (ok=%v seen=%v)", r.OK, seen)
		}
		if ctx.Flag(flag) {
			t.Error("flag leaked after success")
		}
	})

	t.Run("failure path", func(t *testing.T) {
		ctx := NewContext("b")
		r := WithFlag(flag, Parser[string](observe))(ctx, 0)
		if r.OK || !seen {
			t.Errorf("unexpected outcome (ok=%v seen=%v)", r.OK, seen)
		}
		if ctx.Flag(flag) {
			t.Error("flag leaked after failure")
		}
	})

	t.Run("prior value restored", func(t *testing.T) {
		ctx := NewContext("a")
		ctx.SetFlag(flag, true)
		WithFlag(flag, Parser[string](observe))(ctx, 0)
		if !ctx.Flag(flag) {
			t.Error("previously set flag cleared")
		}
	})
}

func TestUnlessFlag(t *testing.T) {
	const flag Flag = "inside-link"

	ctx := NewContext("a")
	p := UnlessFlag(flag, Str("a"))
	if !p(ctx, 0).OK {
		t.Error("rejected with flag unset")
	}
	ctx.SetFlag(flag, true)
	if p(ctx, 0).OK {
		t.Error("accepted with flag set")
	}
}

func TestNest(t *testing.T) {
	ctx := NewContext("aaaa", WithNestLimit(2))

	depth3 := func(c *Context, pos int) Result[string] {
		return Nest(Parser[string](func(c *Context, pos int) Result[string] {
			return Nest(Parser[string](func(c *Context, pos int) Result[string] {
				return Nest(Str("a"))(c, pos)
			}))(c, pos)
		}))(c, pos)
	}

	if depth3(ctx, 0).OK {
		t.Error("matched beyond the nest limit")
	}

	depth2 := Nest(Nest(Str("a")))
	if !depth2(ctx, 0).OK {
		t.Error("rejected within the nest limit")
	}

	// A seeded depth counts against the budget from the start.
	seeded := NewContext("a", WithNestLimit(2), WithDepth(2))
	if Nest(Str("a"))(seeded, 0).OK {
		t.Error("matched with seeded depth at the limit")
	}
}

func TestMemoIdempotent(t *testing.T) {
	calls := 0
	counted := func(ctx *Context, pos int) Result[string] {
		calls++
		return Str("ab")(ctx, pos)
	}
	p := Memo("rule", Parser[string](counted))

	ctx := NewContext("abab")
	first := p(ctx, 0)
	second := p(ctx, 0)
	if calls != 1 {
		t.Errorf("ran %d times at the same position, want 1", calls)
	}
	if first != second {
		t.Errorf("outcomes differ: %+v vs %+v", first, second)
	}

	// A different position is a different key.
	p(ctx, 2)
	if calls != 2 {
		t.Errorf("ran %d times, want 2 after new position", calls)
	}

	// Failures are cached too.
	p(ctx, 3)
	p(ctx, 3)
	if calls != 3 {
		t.Errorf("ran %d times, want 3 after cached failure", calls)
	}
}
