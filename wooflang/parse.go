package wooflang

type Options struct {
	// Sink, when set, receives each completed top-level form as soon as it
	// is parsed, including forms completed before a later error aborts the
	// parse.
	Sink func(Node)
}

// Parse tags the source, runs the top-level grammar rule over the full token
// sequence, and demands full consumption. The returned error, if any, is a
// *Diagnostic. A recoverable failure cannot reach here: program matches zero
// forms at minimum and ends in success or error.
func Parse(source *Source, options *Options) ([]Node, error) {
	var sink func(Node)
	if options != nil {
		sink = options.Sink
	}
	o := program(sink)(NewCursor(Tag(source)))
	if o.IsError() {
		return nil, o.Diag
	}
	return o.Value, nil
}

func ParseString(name string, text string) ([]Node, error) {
	return Parse(NewSource(name, text), nil)
}
