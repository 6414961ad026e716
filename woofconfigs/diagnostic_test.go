package woofconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/woof/configs"
)

func TestDiagnosticSourceDefault(t *testing.T) {
	dscope.New(new(Module)).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		diagnosticSource DiagnosticSource,
	) {
		if !diagnosticSource {
			t.Fatal("expected source context by default")
		}
	})
}
