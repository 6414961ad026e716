package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one unit of work, e.g. a single parse run. It travels in
// the context and is attached to every record logged under it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
