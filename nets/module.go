package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/woof/logs"
	"github.com/reusee/woof/woofconfigs"
)

type Module struct {
	dscope.Module
	Configs woofconfigs.Module
	Logs    logs.Module
}
