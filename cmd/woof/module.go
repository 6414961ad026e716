package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/woof/debugs"
	"github.com/reusee/woof/sources"
)

type Module struct {
	dscope.Module
	Sources sources.Module
	Debugs  debugs.Module
}
