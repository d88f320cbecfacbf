package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies the processing of one input. Records logged with a
// context carrying a span get a logs.span attribute.
type Span string

type spanKey struct{}

var SpanKey spanKey
