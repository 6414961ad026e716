package wooflang

type Token struct {
	Sym rune
	Pos Pos
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}
