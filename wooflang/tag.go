package wooflang

// Tag annotates every rune of the source with its line and column, both
// 1-indexed. A newline is tagged at its own position; the line counter
// advances for the rune after it.
func Tag(source *Source) []Token {
	tokens := make([]Token, 0, len(source.Content))
	line, column := 1, 1
	for _, r := range source.Content {
		tokens = append(tokens, Token{
			Sym: r,
			Pos: Pos{
				Source: source,
				Line:   line,
				Column: column,
			},
		})
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return tokens
}
