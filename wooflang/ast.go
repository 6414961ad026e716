package wooflang

// Node is a Woof syntax tree node. Every node carries the token at which it
// starts. Nodes are built bottom-up during a successful parse and never
// mutated afterwards.
type Node interface {
	Pos() Pos
	String() string
	node()
}

type Number struct {
	Tok   Token
	Value int
}

type Symbol struct {
	Tok  Token
	Name string
}

type Str struct {
	Tok   Token
	Value string
}

type Lambda struct {
	Tok    Token
	Params []string
	Body   []Node
}

type Define struct {
	Tok   Token
	Doc   *string
	Name  string
	Value Node
}

type Application struct {
	Tok      Token
	Operator Node
	Operands []Node
}

func (n *Number) Pos() Pos      { return n.Tok.Pos }
func (s *Symbol) Pos() Pos      { return s.Tok.Pos }
func (s *Str) Pos() Pos         { return s.Tok.Pos }
func (l *Lambda) Pos() Pos      { return l.Tok.Pos }
func (d *Define) Pos() Pos      { return d.Tok.Pos }
func (a *Application) Pos() Pos { return a.Tok.Pos }

func (*Number) node()      {}
func (*Symbol) node()      {}
func (*Str) node()         {}
func (*Lambda) node()      {}
func (*Define) node()      {}
func (*Application) node() {}
