// Package format renders fumi syntax trees to output formats.
package format

import (
	"encoding"

	"github.com/dhamidi/fumi/ast"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(nodes []ast.Node) error
}
