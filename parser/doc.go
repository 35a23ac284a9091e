// Package parser provides the parser-combinator engine behind the fumi
// markup dialect: composable matching primitives, a mutable per-parse
// context, a memoization layer and a registry for mutually recursive
// grammar rules.
//
// # Model
//
// A Parser[T] is a function from (context, position) to a Result[T]. A
// result is either a match carrying a value and the position after the
// consumed prefix, or a silent rejection. There is no error payload;
// grammars built on this engine backtrack cheaply and frequently, and the
// top-level entry points in package grammar degrade to plain text instead
// of surfacing failures.
//
// # Context
//
// A Context is created once per parse invocation and threaded by reference
// through every call. It carries named boolean flags for context-sensitive
// rules (a link label must not contain another link), a memo store, and a
// nest-depth budget that bounds recursion on adversarial input. Flags are
// not rewound by position backtracking; WithFlag scopes a flag change with
// a guaranteed restore on both exit paths, and UnlessFlag makes a rule fail
// fast under a flag.
//
// # Memoization
//
// Memo caches a parser's outcome per (rule, position) pair. This is sound
// only for parsers whose outcome is independent of the contextual flags;
// flag-sensitive rules must not be wrapped. The engine does not enforce
// this, it is a contract on grammar authors.
//
// # Recursive grammars
//
// NewLanguage turns a flat map of rule constructors into a table of named
// rules. Cells are allocated for all names before any constructor runs, so
// constructors can reference sibling rules through the table regardless of
// definition order.
//
// # Thread safety
//
// Parsing is purely synchronous and single-threaded. A Context must never
// be shared across concurrent parses; create one per invocation.
package parser
