package debugs

import (
	"go.starlark.net/starlark"

	"github.com/reusee/woof/wooflang"
)

// nodeValue renders a syntax tree node as a starlark dict so the tap REPL
// can take it apart: every node carries kind, text, line and column, plus
// its variant-specific fields.
func nodeValue(node wooflang.Node) starlark.Value {
	d := starlark.NewDict(8)
	pos := node.Pos()
	d.SetKey(starlark.String("text"), starlark.String(wooflang.Print(node)))
	d.SetKey(starlark.String("line"), starlark.MakeInt(pos.Line))
	d.SetKey(starlark.String("column"), starlark.MakeInt(pos.Column))

	switch n := node.(type) {

	case *wooflang.Number:
		d.SetKey(starlark.String("kind"), starlark.String("number"))
		d.SetKey(starlark.String("value"), starlark.MakeInt(n.Value))

	case *wooflang.Symbol:
		d.SetKey(starlark.String("kind"), starlark.String("symbol"))
		d.SetKey(starlark.String("name"), starlark.String(n.Name))

	case *wooflang.Str:
		d.SetKey(starlark.String("kind"), starlark.String("string"))
		d.SetKey(starlark.String("value"), starlark.String(n.Value))

	case *wooflang.Lambda:
		d.SetKey(starlark.String("kind"), starlark.String("lambda"))
		params := make([]starlark.Value, len(n.Params))
		for i, param := range n.Params {
			params[i] = starlark.String(param)
		}
		d.SetKey(starlark.String("params"), starlark.NewList(params))
		d.SetKey(starlark.String("body"), nodeList(n.Body))

	case *wooflang.Define:
		d.SetKey(starlark.String("kind"), starlark.String("define"))
		d.SetKey(starlark.String("name"), starlark.String(n.Name))
		if n.Doc != nil {
			d.SetKey(starlark.String("doc"), starlark.String(*n.Doc))
		} else {
			d.SetKey(starlark.String("doc"), starlark.None)
		}
		d.SetKey(starlark.String("value"), nodeValue(n.Value))

	case *wooflang.Application:
		d.SetKey(starlark.String("kind"), starlark.String("application"))
		d.SetKey(starlark.String("operator"), nodeValue(n.Operator))
		d.SetKey(starlark.String("operands"), nodeList(n.Operands))

	}

	return d
}

func nodeList(nodes []wooflang.Node) starlark.Value {
	values := make([]starlark.Value, len(nodes))
	for i, node := range nodes {
		values[i] = nodeValue(node)
	}
	return starlark.NewList(values)
}
