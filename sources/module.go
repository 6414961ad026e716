package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/woof/logs"
	"github.com/reusee/woof/nets"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}
