package debugs

import (
	"testing"

	"go.starlark.net/starlark"

	"github.com/reusee/woof/wooflang"
)

func TestNodeValue(t *testing.T) {
	nodes, err := wooflang.ParseString("test", `{define "doc" inc {lambda {n} (+ n 1)}}`)
	if err != nil {
		t.Fatal(err)
	}

	value := toStarlarkValue(nodes[0])
	d, ok := value.(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", value)
	}

	get := func(key string) starlark.Value {
		v, found, err := d.Get(starlark.String(key))
		if err != nil || !found {
			t.Fatalf("no %q", key)
		}
		return v
	}

	if kind := get("kind"); kind != starlark.String("define") {
		t.Fatalf("got %v", kind)
	}
	if name := get("name"); name != starlark.String("inc") {
		t.Fatalf("got %v", name)
	}
	if doc := get("doc"); doc != starlark.String("doc") {
		t.Fatalf("got %v", doc)
	}
	if line := get("line"); line != starlark.MakeInt(1) {
		t.Fatalf("got %v", line)
	}

	lambda, ok := get("value").(*starlark.Dict)
	if !ok {
		t.Fatal("value not a dict")
	}
	kind, _, err := lambda.Get(starlark.String("kind"))
	if err != nil || kind != starlark.String("lambda") {
		t.Fatalf("got %v", kind)
	}
	params, _, err := lambda.Get(starlark.String("params"))
	if err != nil {
		t.Fatal(err)
	}
	if params.(*starlark.List).Len() != 1 {
		t.Fatalf("got %v", params)
	}
}
