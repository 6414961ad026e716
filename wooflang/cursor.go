package wooflang

// Cursor is the remaining unconsumed token sequence. It is a value: parsers
// return a new cursor instead of mutating a shared one, so backtracking is
// just reusing a cursor saved before an alternative was tried.
type Cursor struct {
	tokens []Token
}

func NewCursor(tokens []Token) Cursor {
	return Cursor{
		tokens: tokens,
	}
}

func (c Cursor) Len() int {
	return len(c.tokens)
}

func (c Cursor) Empty() bool {
	return len(c.tokens) == 0
}

func (c Cursor) First() (Token, bool) {
	if len(c.tokens) == 0 {
		return Token{}, false
	}
	return c.tokens[0], true
}

func (c Cursor) next() (Token, Cursor) {
	return c.tokens[0], Cursor{tokens: c.tokens[1:]}
}
