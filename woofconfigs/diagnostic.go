package woofconfigs

import (
	"errors"

	"github.com/reusee/woof/cmds"
	"github.com/reusee/woof/configs"
)

// DiagnosticSource controls whether diagnostics include the offending source
// line and a caret, or just the one-line summary.
type DiagnosticSource bool

var _ configs.Configurable = DiagnosticSource(false)

func (d DiagnosticSource) ConfigExpr() string {
	return "DiagnosticSource"
}

var noSourceFlag = cmds.Switch("-no-source")

func (Module) DiagnosticSource(
	loader configs.Loader,
) DiagnosticSource {
	if *noSourceFlag {
		return false
	}

	value := true
	err := loader.AssignFirst("diagnostic_source", &value)
	if err != nil && !errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}
	return DiagnosticSource(value)
}
